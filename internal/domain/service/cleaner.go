package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jungshell/fccg-core/internal/domain/contract"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

// duplicateSessionCleaner is the startup maintenance pass: it merges
// sessions that share a calendar week and renumbers the survivors into a
// dense chronological id sequence, which the presentation layer relies on
// for "session #N" labels. It must not run concurrently with vote writes.
type duplicateSessionCleaner struct {
	dm     contract.DataManager
	loc    *time.Location
	logger *zap.Logger
}

func newDuplicateSessionCleaner(dm contract.DataManager, loc *time.Location, logger *zap.Logger) *duplicateSessionCleaner {
	return &duplicateSessionCleaner{
		dm:     dm,
		loc:    loc,
		logger: logger,
	}
}

// Run removes duplicate sessions and, if anything was removed, renumbers
// all surviving sessions from 1 in week order.
func (c *duplicateSessionCleaner) Run() error {
	sessions, err := c.dm.Session().GetAllOrdered()
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	removed, err := c.removeDuplicates(sessions)
	if err != nil {
		return err
	}
	if removed == 0 {
		c.logger.Info("no duplicate vote sessions found")
		return nil
	}

	c.logger.Info("removed duplicate vote sessions", zap.Int("count", removed))
	return c.renumberSessions()
}

// removeDuplicates keeps, per calendar week date, the row with the highest
// id and deletes the rest along with their votes.
func (c *duplicateSessionCleaner) removeDuplicates(sessions []*entity.VoteSession) (int, error) {
	keepByDate := make(map[string]*entity.VoteSession)
	for _, session := range sessions {
		date := session.WeekStartDate.In(c.loc).Format("2006-01-02")
		if kept, ok := keepByDate[date]; !ok || session.ID > kept.ID {
			keepByDate[date] = session
		}
	}

	removed := 0
	for _, session := range sessions {
		date := session.WeekStartDate.In(c.loc).Format("2006-01-02")
		if keepByDate[date].ID == session.ID {
			continue
		}

		c.logger.Warn("deleting duplicate vote session",
			zap.Int64("sessionID", session.ID),
			zap.String("weekDate", date),
			zap.Int64("keptID", keepByDate[date].ID))

		if err := c.dm.Vote().DeleteBySession(session.ID); err != nil {
			return removed, fmt.Errorf("failed to delete votes of session %d: %w", session.ID, err)
		}
		if err := c.dm.Session().Delete(session.ID); err != nil {
			return removed, fmt.Errorf("failed to delete session %d: %w", session.ID, err)
		}
		removed++
	}

	return removed, nil
}

// renumberSessions exports every surviving session with its votes, empties
// both tables, resets the id sequences and reinserts oldest-first, so ids
// form a contiguous sequence starting at 1.
func (c *duplicateSessionCleaner) renumberSessions() error {
	survivors, err := c.dm.Session().GetAllOrdered()
	if err != nil {
		return fmt.Errorf("failed to load surviving sessions: %w", err)
	}

	votesBySession := make(map[int64][]*entity.Vote, len(survivors))
	for _, session := range survivors {
		votes, err := c.dm.Vote().GetBySession(session.ID)
		if err != nil {
			return fmt.Errorf("failed to load votes of session %d: %w", session.ID, err)
		}
		votesBySession[session.ID] = votes
	}

	if err := c.dm.Vote().DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear votes: %w", err)
	}
	if err := c.dm.Session().DeleteAll(); err != nil {
		return fmt.Errorf("failed to clear sessions: %w", err)
	}
	if err := c.dm.Session().ResetSequence(); err != nil {
		return err
	}
	if err := c.dm.Vote().ResetSequence(); err != nil {
		return err
	}

	for _, session := range survivors {
		oldID := session.ID
		if err := c.dm.Session().Restore(session); err != nil {
			return fmt.Errorf("failed to reinsert session: %w", err)
		}

		for _, vote := range votesBySession[oldID] {
			vote.VoteSessionID = session.ID
			if err := c.dm.Vote().Restore(vote); err != nil {
				return fmt.Errorf("failed to reinsert vote %d: %w", vote.ID, err)
			}
		}
	}

	c.logger.Info("renumbered vote sessions", zap.Int("count", len(survivors)))
	return nil
}
