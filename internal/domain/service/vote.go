package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/jungshell/fccg-core/internal/domain"
	"github.com/jungshell/fccg-core/internal/domain/contract"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

type voteService struct {
	dm       contract.DataManager
	sessions *sessionManager
	logger   *zap.Logger
}

func newVote(dm contract.DataManager, sessions *sessionManager, logger *zap.Logger) *voteService {
	return &voteService{
		dm:       dm,
		sessions: sessions,
		logger:   logger,
	}
}

// SessionResults is the read projection of one session's votes.
type SessionResults struct {
	Session    *entity.VoteSession
	Tally      VoteTally
	TotalVotes int
}

// SubmitVote records the member's day selection for the current active
// session, replacing any previous vote they cast in it. The delete and the
// insert run in one transaction so no reader ever sees zero or two votes
// for the same (user, session) pair.
func (s *voteService) SubmitVote(ctx context.Context, userID int64, dayTokens []string) (*entity.Vote, error) {
	days := normalizeDayTokens(dayTokens)

	// Self-heal before accepting a write.
	if err := s.sessions.ValidateAndFixSessionState(); err != nil {
		return nil, err
	}

	active, err := s.sessions.GetActiveSession(true)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, domain.ErrNoActiveSession
	}

	vote := &entity.Vote{
		UserID:        userID,
		VoteSessionID: active.ID,
		SelectedDays:  days.Encode(),
	}

	err = s.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.Vote().DeleteByUserAndSession(userID, active.ID); err != nil {
			return fmt.Errorf("failed to delete previous vote: %w", err)
		}
		if err := tx.Vote().Create(vote); err != nil {
			return fmt.Errorf("failed to create vote: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("vote recorded",
		zap.Int64("userID", userID),
		zap.Int64("sessionID", active.ID),
		zap.Strings("days", days))

	return vote, nil
}

// GetCurrentSession returns the active session after the corrective pass,
// or nil when no session is open.
func (s *voteService) GetCurrentSession() (*entity.VoteSession, error) {
	if err := s.sessions.ValidateAndFixSessionState(); err != nil {
		return nil, err
	}
	return s.sessions.GetActiveSession(false)
}

// GetSessionResults aggregates a session's votes for the presentation
// layer. Pure projection; no write-side decisions happen here.
func (s *voteService) GetSessionResults(sessionID int64) (*SessionResults, error) {
	session, err := s.dm.Session().GetByID(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, nil
	}

	votes, err := s.dm.Vote().GetBySession(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get votes: %w", err)
	}

	names, err := s.memberNames(votes)
	if err != nil {
		return nil, err
	}

	return &SessionResults{
		Session:    session,
		Tally:      AggregateVotes(votes, names, s.logger),
		TotalVotes: len(votes),
	}, nil
}

func (s *voteService) memberNames(votes []*entity.Vote) (map[int64]string, error) {
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

// normalizeDayTokens maps incoming tokens to canonical form and drops
// duplicates, preserving order. Tokens matching neither accepted form pass
// through unchanged.
func normalizeDayTokens(tokens []string) entity.DayList {
	seen := make(map[string]bool, len(tokens))
	days := make(entity.DayList, 0, len(tokens))
	for _, token := range tokens {
		day := domain.NormalizeDayToken(token)
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	return days
}
