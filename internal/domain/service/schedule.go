package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jungshell/fccg-core/internal/domain"
	"github.com/jungshell/fccg-core/internal/domain/contract"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

// weeklyScheduler is the periodic orchestrator: it opens next week's vote
// session and rolls last week's results into auto-generated games. The
// trigger is at-least-once, so both steps are idempotent under refiring.
type weeklyScheduler struct {
	dm       contract.DataManager
	notifier contract.Notifier
	loc      *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

func newWeeklyScheduler(dm contract.DataManager, notifier contract.Notifier, loc *time.Location, logger *zap.Logger) *weeklyScheduler {
	return &weeklyScheduler{
		dm:       dm,
		notifier: notifier,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// Run executes both weekly steps. They are independent: a failure in one is
// logged and does not block or roll back the other, and the whole run never
// escalates past this method.
func (s *weeklyScheduler) Run(ctx context.Context) {
	now := s.now().In(s.loc)

	if err := s.createNextWeekSession(now); err != nil {
		s.logger.Error("weekly session creation failed", zap.Error(err))
	}

	if err := s.rolloverLastWeekResults(ctx, now); err != nil {
		s.logger.Error("weekly result rollover failed", zap.Error(err))
	}
}

// createNextWeekSession opens the voting window for the upcoming week. The
// date-only lookup is the sole defense against duplicate firings: a second
// fire on the same day finds the session and skips.
func (s *weeklyScheduler) createNextWeekSession(now time.Time) error {
	target := nextWeekMonday(now)

	existing, err := s.dm.Session().GetByWeekDate(target)
	if err != nil {
		return fmt.Errorf("failed to check existing session: %w", err)
	}
	if existing != nil {
		s.logger.Info("vote session already exists for target week, skipping",
			zap.Int64("sessionID", existing.ID),
			zap.Time("weekStart", target))
		return nil
	}

	session := &entity.VoteSession{
		WeekStartDate: target,
		StartTime:     weekMonday(now).Add(time.Minute),
		EndTime:       votingDeadline(target),
		IsActive:      true,
		IsCompleted:   false,
	}

	if err := s.dm.Session().Create(session); err != nil {
		return fmt.Errorf("failed to create vote session: %w", err)
	}

	s.logger.Info("created vote session",
		zap.Int64("sessionID", session.ID),
		zap.Time("weekStart", session.WeekStartDate),
		zap.Time("deadline", session.EndTime))
	return nil
}

// rolloverLastWeekResults regenerates the auto-generated games for the week
// decided by last week's voting. Every auto-generated game in the target
// week is deleted and recreated from the tally, so re-running after a
// partial failure converges to the same end state.
func (s *weeklyScheduler) rolloverLastWeekResults(ctx context.Context, now time.Time) error {
	lastMonday := weekMonday(now).AddDate(0, 0, -7)
	lastFridayEnd := endOfDay(lastMonday.AddDate(0, 0, 4))

	session, err := s.dm.Session().GetLatestCompletedInRange(lastMonday, lastFridayEnd)
	if err != nil {
		return fmt.Errorf("failed to find completed session: %w", err)
	}
	if session == nil {
		s.logger.Info("no completed vote session with votes for last week, nothing to roll over")
		return nil
	}

	votes, err := s.dm.Vote().GetBySession(session.ID)
	if err != nil {
		return fmt.Errorf("failed to get session votes: %w", err)
	}
	if len(votes) == 0 {
		// The session lookup requires votes, but they are read in a separate
		// statement and may have been deleted in between.
		s.logger.Info("session has no votes anymore, nothing to roll over",
			zap.Int64("sessionID", session.ID))
		return nil
	}

	names, err := s.voterNames(votes)
	if err != nil {
		return err
	}
	tally := AggregateVotes(votes, names, s.logger)

	targetMonday := weekMonday(session.WeekStartDate.In(s.loc))
	weekEnd := endOfDay(targetMonday.AddDate(0, 0, 6))

	deleted, err := s.dm.Game().DeleteAutoGeneratedInRange(targetMonday, weekEnd)
	if err != nil {
		return fmt.Errorf("failed to delete auto-generated games: %w", err)
	}
	if deleted > 0 {
		s.logger.Info("replaced previous auto-generated games", zap.Int64("count", deleted))
	}

	if len(tally.TopDays) == 0 {
		s.logger.Info("no winning days in session, no games generated",
			zap.Int64("sessionID", session.ID))
		return nil
	}

	// Attribution only: the session's first vote decides created_by.
	createdBy := votes[0].UserID

	var games []*entity.Game
	for _, day := range tally.TopDays {
		offset, ok := domain.WeekdayOffsets[day]
		if !ok {
			s.logger.Warn("winning day is not a canonical weekday, skipping",
				zap.String("day", day),
				zap.Int64("sessionID", session.ID))
			continue
		}

		game := &entity.Game{
			Date:            targetMonday.AddDate(0, 0, offset).Add(time.Minute),
			StartTime:       domain.Undetermined,
			Location:        domain.Undetermined,
			EventType:       domain.Undetermined,
			AutoGenerated:   true,
			Confirmed:       false,
			SelectedMembers: tally.ParticipantsByDay[day],
			CreatedByID:     createdBy,
		}

		if err := s.dm.Game().Create(game); err != nil {
			return fmt.Errorf("failed to create game for %s: %w", day, err)
		}
		games = append(games, game)
	}

	s.logger.Info("generated games from vote results",
		zap.Int64("sessionID", session.ID),
		zap.Strings("topDays", tally.TopDays),
		zap.Int("games", len(games)))

	// Fire-and-forget: a failed digest never fails the rollover.
	if err := s.notifier.NotifyWeeklyDigest(ctx, targetMonday.Format("2006-01-02"), games); err != nil {
		s.logger.Warn("failed to send weekly digest", zap.Error(err))
	}

	return nil
}

func (s *weeklyScheduler) voterNames(votes []*entity.Vote) (map[int64]string, error) {
	names := make(map[int64]string, len(votes))
	for _, vote := range votes {
		if _, ok := names[vote.UserID]; ok {
			continue
		}
		member, err := s.dm.Member().GetByID(vote.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to get member %d: %w", vote.UserID, err)
		}
		if member != nil {
			names[vote.UserID] = member.Name
		}
	}
	return names, nil
}

// weekMonday returns the Monday 00:00 of t's week, in t's location.
func weekMonday(t time.Time) time.Time {
	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	monday := t.AddDate(0, 0, -offset)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, t.Location())
}

// nextWeekMonday returns the first Monday at least 7 days after now,
// normalized to 00:01. This is the week the new voting window targets.
func nextWeekMonday(now time.Time) time.Time {
	candidate := now.AddDate(0, 0, 7)
	for candidate.Weekday() != time.Monday {
		candidate = candidate.AddDate(0, 0, 1)
	}
	return time.Date(candidate.Year(), candidate.Month(), candidate.Day(), 0, 1, 0, 0, now.Location())
}

// votingDeadline is the Friday 17:00 of the target week.
func votingDeadline(weekStart time.Time) time.Time {
	friday := weekStart.AddDate(0, 0, 4)
	return time.Date(friday.Year(), friday.Month(), friday.Day(), 17, 0, 0, 0, weekStart.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
