package service

import (
	"go.uber.org/zap"

	"github.com/jungshell/fccg-core/internal/domain"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

// VoteTally is the aggregation of one session's votes.
type VoteTally struct {
	// Counts holds the vote count per day token. Days nobody picked are
	// simply absent, which reads as zero.
	Counts map[string]int

	// ParticipantsByDay holds distinct participant display names per day,
	// in insertion order.
	ParticipantsByDay map[string][]string

	// TopDays is every day whose count equals the maximum. All ties are
	// kept; there is no single-winner tie-break. Empty when the maximum
	// is zero.
	TopDays []string
}

// AggregateVotes tallies the votes of one session. A vote whose raw day
// list fails to parse is skipped with a warning and contributes nothing;
// a bad record never fails the whole aggregation.
func AggregateVotes(votes []*entity.Vote, nameByUser map[int64]string, logger *zap.Logger) VoteTally {
	tally := VoteTally{
		Counts:            make(map[string]int),
		ParticipantsByDay: make(map[string][]string),
	}

	var dayOrder []string
	seenDay := make(map[string]bool)
	seenParticipant := make(map[string]map[string]bool)

	for _, vote := range votes {
		days, err := entity.ParseDayList(vote.SelectedDays)
		if err != nil {
			logger.Warn("skipping vote with malformed day list",
				zap.Int64("voteID", vote.ID),
				zap.Int64("userID", vote.UserID),
				zap.Error(err))
			continue
		}

		name := nameByUser[vote.UserID]
		for _, day := range days {
			tally.Counts[day]++
			if !seenDay[day] {
				seenDay[day] = true
				dayOrder = append(dayOrder, day)
			}

			if name == "" {
				continue
			}
			if seenParticipant[day] == nil {
				seenParticipant[day] = make(map[string]bool)
			}
			if !seenParticipant[day][name] {
				seenParticipant[day][name] = true
				tally.ParticipantsByDay[day] = append(tally.ParticipantsByDay[day], name)
			}
		}
	}

	max := 0
	for _, count := range tally.Counts {
		if count > max {
			max = count
		}
	}
	if max == 0 {
		return tally
	}

	// Canonical days first in calendar order, then anything else in the
	// order it appeared, so the result is deterministic.
	for _, day := range domain.WeekdayOrder {
		if tally.Counts[day] == max {
			tally.TopDays = append(tally.TopDays, day)
		}
	}
	for _, day := range dayOrder {
		if _, canonical := domain.WeekdayOffsets[day]; canonical {
			continue
		}
		if tally.Counts[day] == max {
			tally.TopDays = append(tally.TopDays, day)
		}
	}

	return tally
}
