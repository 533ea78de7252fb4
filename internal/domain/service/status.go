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

// memberStatusEngine runs the participation rules over every non-deleted,
// non-suspended member. Transitions are forward-only; going back to ACTIVE
// takes an admin action outside this core.
type memberStatusEngine struct {
	dm       contract.DataManager
	notifier contract.Notifier
	loc      *time.Location
	logger   *zap.Logger
	now      func() time.Time
}

func newMemberStatusEngine(dm contract.DataManager, notifier contract.Notifier, loc *time.Location, logger *zap.Logger) *memberStatusEngine {
	return &memberStatusEngine{
		dm:       dm,
		notifier: notifier,
		loc:      loc,
		logger:   logger,
		now:      time.Now,
	}
}

// Run evaluates every eligible member. A failure on one member is logged
// and the pass continues; the run itself never escalates.
func (e *memberStatusEngine) Run(ctx context.Context) {
	members, err := e.dm.Member().GetByStatuses([]string{domain.StatusActive, domain.StatusInactive})
	if err != nil {
		e.logger.Error("status pass failed to load members", zap.Error(err))
		return
	}

	now := e.now().In(e.loc)
	transitions := 0

	for _, member := range members {
		changed, err := e.evaluateMember(ctx, member, now)
		if err != nil {
			e.logger.Error("status evaluation failed",
				zap.Int64("memberID", member.ID),
				zap.Error(err))
			continue
		}
		if changed {
			transitions++
		}
	}

	e.logger.Info("member status pass finished",
		zap.Int("members", len(members)),
		zap.Int("transitions", transitions))
}

// evaluateMember applies the rules in precedence order and commits at most
// one transition. Each rule checks the current status first, so re-running
// on unchanged data is a no-op.
func (e *memberStatusEngine) evaluateMember(ctx context.Context, member *entity.Member, now time.Time) (bool, error) {
	windowStart := now.AddDate(0, 0, -domain.ParticipationWindowDays)

	newStatus := ""
	reason := ""

	if member.Status == domain.StatusActive {
		// Rule V: vote non-participation over synthetic weekly slots.
		votes, err := e.dm.Vote().GetByUserSince(member.ID, windowStart)
		if err != nil {
			return false, fmt.Errorf("failed to get member votes: %w", err)
		}

		slots := weeklySlotThursdays(windowStart, now)
		maxConsecutive, total := missedSlotStats(slots, votes)

		switch {
		case maxConsecutive >= domain.MaxConsecutiveMissed:
			newStatus = domain.StatusInactive
			reason = fmt.Sprintf("no vote participation: %d consecutive weekly votes missed", maxConsecutive)
		case total >= domain.MaxTotalMissed:
			newStatus = domain.StatusInactive
			reason = fmt.Sprintf("no vote participation: %d weekly votes missed in the last %d days", total, domain.ParticipationWindowDays)
		}

		// Rule G: game non-participation. Independent of Rule V; either
		// firing is sufficient.
		if newStatus == "" {
			attended, err := e.dm.Attendance().CountByUserSince(member.ID, windowStart)
			if err != nil {
				return false, fmt.Errorf("failed to count attendances: %w", err)
			}
			if attended == 0 {
				newStatus = domain.StatusInactive
				reason = fmt.Sprintf("no game attendance in the last %d days", domain.ParticipationWindowDays)
			}
		}
	}

	// Rule L: login recency. Highest precedence; overrides an INACTIVE
	// decision made above in the same pass.
	loginCutoff := now.AddDate(0, 0, -domain.LoginStaleDays)
	if member.LastLoginAt == nil {
		newStatus = domain.StatusSuspended
		reason = "never logged in"
	} else if member.LastLoginAt.Before(loginCutoff) {
		newStatus = domain.StatusSuspended
		reason = fmt.Sprintf("no login in the last %d days", domain.LoginStaleDays)
	}

	if newStatus == "" || newStatus == member.Status {
		return false, nil
	}

	if err := e.dm.Member().UpdateStatus(member.ID, newStatus, reason, now); err != nil {
		return false, fmt.Errorf("failed to update member status: %w", err)
	}

	e.logger.Info("member status transition",
		zap.Int64("memberID", member.ID),
		zap.String("from", member.Status),
		zap.String("to", newStatus),
		zap.String("reason", reason))

	// Fire-and-forget notification; delivery failures are logged only.
	if err := e.notifier.NotifyStatusChange(ctx, member, newStatus, reason); err != nil {
		e.logger.Warn("failed to send status notification",
			zap.Int64("memberID", member.ID),
			zap.Error(err))
	}

	return true, nil
}

// weeklySlotThursdays derives the synthetic voting slots: one per Thursday
// in [from, to]. This deliberately recomputes the weekly cadence instead of
// joining against stored sessions.
func weeklySlotThursdays(from, to time.Time) []time.Time {
	thursday := weekMonday(from).AddDate(0, 0, 3)
	if thursday.Before(from) {
		thursday = thursday.AddDate(0, 0, 7)
	}

	var slots []time.Time
	for !thursday.After(to) {
		slots = append(slots, thursday)
		thursday = thursday.AddDate(0, 0, 7)
	}
	return slots
}

// missedSlotStats counts how many slots have no vote in their Monday–Sunday
// week, returning the longest consecutive run and the total.
func missedSlotStats(slots []time.Time, votes []*entity.Vote) (maxConsecutive, total int) {
	consecutive := 0
	for _, slot := range slots {
		weekStart := weekMonday(slot)
		weekEnd := weekStart.AddDate(0, 0, 7)

		voted := false
		for _, vote := range votes {
			if !vote.CreatedAt.Before(weekStart) && vote.CreatedAt.Before(weekEnd) {
				voted = true
				break
			}
		}

		if voted {
			consecutive = 0
			continue
		}

		total++
		consecutive++
		if consecutive > maxConsecutive {
			maxConsecutive = consecutive
		}
	}
	return maxConsecutive, total
}
