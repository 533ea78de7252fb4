package entity

import "time"

// Member is a club member. Status is mutated only by the status engine or
// by an admin action outside this core; rows are never deleted here.
type Member struct {
	ID                 int64
	Name               string
	Status             string
	StatusChangedAt    *time.Time
	StatusChangeReason string
	LastLoginAt        *time.Time
	CreatedAt          time.Time
}

// VoteSession is one weekly voting window. WeekStartDate is the Monday the
// window targets; at most one session is active at any instant.
type VoteSession struct {
	ID            int64
	WeekStartDate time.Time
	StartTime     time.Time
	EndTime       time.Time
	IsActive      bool
	IsCompleted   bool
	CreatedAt     time.Time
}

// Vote is one member's day selection within a session. SelectedDays is kept
// raw (the serialized JSON array) so a malformed payload degrades to a
// per-record skip during aggregation instead of failing the whole query.
type Vote struct {
	ID            int64
	UserID        int64
	VoteSessionID int64
	SelectedDays  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Game is a scheduled game. Auto-generated rows for a week are collectively
// owned by the weekly scheduler and replaced wholesale on every run.
type Game struct {
	ID              int64
	Date            time.Time
	StartTime       string
	Location        string
	EventType       string
	AutoGenerated   bool
	Confirmed       bool
	SelectedMembers []string
	MercenaryCount  int
	CreatedByID     int64
	CreatedAt       time.Time
}

// Attendance records a member's presence at a game. Written by a
// collaborator outside this core; read-only input to the status engine.
type Attendance struct {
	ID      int64
	UserID  int64
	GameID  int64
	Status  string
	GameDay time.Time
}
