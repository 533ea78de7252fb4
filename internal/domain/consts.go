package domain

// Canonical 3-letter weekday tokens used in vote payloads and game
// generation. Saturday and Sunday are accepted but outside the default
// voting window.
const (
	DayMon = "MON"
	DayTue = "TUE"
	DayWed = "WED"
	DayThu = "THU"
	DayFri = "FRI"
	DaySat = "SAT"
	DaySun = "SUN"
)

// WeekdayOrder lists the canonical tokens in calendar order, Monday first.
var WeekdayOrder = []string{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun}

// WeekdayOffsets maps a canonical token to its day offset from Monday.
var WeekdayOffsets = map[string]int{
	DayMon: 0,
	DayTue: 1,
	DayWed: 2,
	DayThu: 3,
	DayFri: 4,
	DaySat: 5,
	DaySun: 6,
}

// localizedMarkers maps the weekday markers embedded in localized date
// strings (e.g. "8/25 (월)") to canonical tokens.
var localizedMarkers = map[rune]string{
	'월': DayMon,
	'화': DayTue,
	'수': DayWed,
	'목': DayThu,
	'금': DayFri,
	'토': DaySat,
	'일': DaySun,
}

// NormalizeDayToken maps an incoming vote token to its canonical form.
// Canonical tokens are returned as-is; localized date strings are matched by
// their embedded weekday marker. Anything else passes through unchanged.
func NormalizeDayToken(token string) string {
	if _, ok := WeekdayOffsets[token]; ok {
		return token
	}
	for _, r := range token {
		if day, ok := localizedMarkers[r]; ok {
			return day
		}
	}
	return token
}

// Member status values.
const (
	StatusActive    = "ACTIVE"
	StatusInactive  = "INACTIVE"
	StatusSuspended = "SUSPENDED"
	StatusDeleted   = "DELETED"
)

// Attendance status values.
const (
	AttendanceYes = "YES"
	AttendanceNo  = "NO"
)

// Member status rule thresholds.
const (
	ParticipationWindowDays = 90
	MaxConsecutiveMissed    = 4
	MaxTotalMissed          = 6
	LoginStaleDays          = 60
)

// Undetermined is the placeholder for the time, location and event type of
// an auto-generated game until an admin confirms it.
const Undetermined = "undetermined"
