package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/jungshell/fccg-core/internal/domain"
	"github.com/jungshell/fccg-core/internal/domain/contract"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

// sessionManager keeps the vote-session lifecycle honest: a single active
// session, expired sessions closed, and a self-healing validate pass that
// runs before every vote-accepting write.
type sessionManager struct {
	dm     contract.DataManager
	loc    *time.Location
	logger *zap.Logger
	now    func() time.Time
}

func newSessionManager(dm contract.DataManager, loc *time.Location, logger *zap.Logger) *sessionManager {
	return &sessionManager{
		dm:     dm,
		loc:    loc,
		logger: logger,
		now:    time.Now,
	}
}

// DeactivateExpiredSessions closes every active session whose end time has
// passed. Side-effect only; nothing is deleted.
func (s *sessionManager) DeactivateExpiredSessions() (int64, error) {
	closed, err := s.dm.Session().DeactivateExpired(s.now().In(s.loc))
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired sessions: %w", err)
	}

	if closed > 0 {
		s.logger.Info("closed expired vote sessions", zap.Int64("count", closed))
	}
	return closed, nil
}

// EnsureSingleActiveSession repairs the should-never-happen state of more
// than one active session by keeping the most recently created one.
func (s *sessionManager) EnsureSingleActiveSession() error {
	active, err := s.dm.Session().GetActive()
	if err != nil {
		return fmt.Errorf("failed to get active sessions: %w", err)
	}

	if len(active) <= 1 {
		return nil
	}

	s.logger.Warn("found multiple active vote sessions, keeping newest",
		zap.Int("count", len(active)),
		zap.Int64("keptID", active[0].ID))

	for _, session := range active[1:] {
		if err := s.dm.Session().Deactivate(session.ID); err != nil {
			return fmt.Errorf("failed to deactivate session %d: %w", session.ID, err)
		}
	}

	return nil
}

// GetActiveSession returns the unique active session, or nil if none. With
// strict set, more than one remaining active session is a contract
// violation and surfaces as an error instead of a best-effort pick.
func (s *sessionManager) GetActiveSession(strict bool) (*entity.VoteSession, error) {
	active, err := s.dm.Session().GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to get active sessions: %w", err)
	}

	switch {
	case len(active) == 0:
		return nil, nil
	case len(active) == 1:
		return active[0], nil
	case strict:
		return nil, fmt.Errorf("%w: found %d", domain.ErrMultipleActiveSessions, len(active))
	default:
		return active[0], nil
	}
}

// ValidateAndFixSessionState runs the two corrective passes. Called before
// every vote-accepting write, not only periodically; this is what stands in
// for a database-level single-active invariant.
func (s *sessionManager) ValidateAndFixSessionState() error {
	if _, err := s.DeactivateExpiredSessions(); err != nil {
		return err
	}
	return s.EnsureSingleActiveSession()
}

// ResumeSession reopens a closed session so it accepts votes again. The
// validate pass runs first so the resumed session cannot become a second
// active one.
func (s *sessionManager) ResumeSession(id int64) error {
	if err := s.ValidateAndFixSessionState(); err != nil {
		return err
	}

	session, err := s.dm.Session().GetByID(id)
	if err != nil {
		return fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return fmt.Errorf("session %d not found", id)
	}

	active, err := s.GetActiveSession(false)
	if err != nil {
		return err
	}
	if active != nil && active.ID != id {
		if err := s.dm.Session().Deactivate(active.ID); err != nil {
			return fmt.Errorf("failed to deactivate session %d: %w", active.ID, err)
		}
	}

	if err := s.dm.Session().Resume(id); err != nil {
		return fmt.Errorf("failed to resume session: %w", err)
	}

	s.logger.Info("resumed vote session", zap.Int64("sessionID", id))
	return nil
}
