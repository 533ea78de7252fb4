package database

import (
	"database/sql"
	"time"

	"github.com/jungshell/fccg-core/internal/domain/contract"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

type voteRepository struct {
	db dbConn
}

func newVoteRepository(db dbConn) contract.VoteRepo {
	return &voteRepository{db: db}
}

const voteColumns = `id, user_id, vote_session_id, selected_days, created_at, updated_at`

func (r *voteRepository) Create(vote *entity.Vote) error {
	query := `
		INSERT INTO votes (user_id, vote_session_id, selected_days, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	// Timestamps are set here rather than by a column default so every
	// stored value shares the driver's format and offset handling.
	now := time.Now()

	result, err := r.db.Exec(query,
		vote.UserID,
		vote.VoteSessionID,
		vote.SelectedDays,
		now,
		now,
	)
	if err != nil {
		return classifyError(err, "failed to create vote")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return classifyError(err, "failed to get last insert id")
	}

	vote.ID = id
	vote.CreatedAt = now
	vote.UpdatedAt = now
	return nil
}

// Restore reinserts a vote preserving its original timestamps. Used by the
// session renumbering pass, where votes are moved under new session ids.
func (r *voteRepository) Restore(vote *entity.Vote) error {
	query := `
		INSERT INTO votes (user_id, vote_session_id, selected_days, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		vote.UserID,
		vote.VoteSessionID,
		vote.SelectedDays,
		vote.CreatedAt,
		vote.UpdatedAt,
	)
	if err != nil {
		return classifyError(err, "failed to restore vote")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return classifyError(err, "failed to get last insert id")
	}

	vote.ID = id
	return nil
}

func (r *voteRepository) GetBySession(sessionID int64) ([]*entity.Vote, error) {
	query := `
		SELECT ` + voteColumns + `
		FROM votes
		WHERE vote_session_id = ?
		ORDER BY id ASC
	`

	return r.queryVotes(query, sessionID)
}

func (r *voteRepository) GetByUserAndSession(userID, sessionID int64) (*entity.Vote, error) {
	query := `
		SELECT ` + voteColumns + `
		FROM votes
		WHERE user_id = ? AND vote_session_id = ?
	`

	vote, err := scanVote(r.db.QueryRow(query, userID, sessionID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classifyError(err, "failed to get vote")
	}

	return vote, nil
}

// GetByUserSince filters on creation time. Stored timestamps and the since
// parameter may carry different UTC offsets, so both go through datetime().
func (r *voteRepository) GetByUserSince(userID int64, since time.Time) ([]*entity.Vote, error) {
	query := `
		SELECT ` + voteColumns + `
		FROM votes
		WHERE user_id = ? AND datetime(created_at) >= datetime(?)
		ORDER BY created_at ASC
	`

	return r.queryVotes(query, userID, since)
}

func (r *voteRepository) CountBySession(sessionID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM votes WHERE vote_session_id = ?`

	var count int64
	if err := r.db.QueryRow(query, sessionID).Scan(&count); err != nil {
		return 0, classifyError(err, "failed to count votes")
	}

	return count, nil
}

func (r *voteRepository) DeleteByUserAndSession(userID, sessionID int64) error {
	query := `DELETE FROM votes WHERE user_id = ? AND vote_session_id = ?`

	if _, err := r.db.Exec(query, userID, sessionID); err != nil {
		return classifyError(err, "failed to delete vote")
	}

	return nil
}

func (r *voteRepository) DeleteBySession(sessionID int64) error {
	query := `DELETE FROM votes WHERE vote_session_id = ?`

	if _, err := r.db.Exec(query, sessionID); err != nil {
		return classifyError(err, "failed to delete session votes")
	}

	return nil
}

func (r *voteRepository) DeleteAll() error {
	if _, err := r.db.Exec(`DELETE FROM votes`); err != nil {
		return classifyError(err, "failed to delete all votes")
	}

	return nil
}

// ResetSequence restarts AUTOINCREMENT ids at 1 for the votes table.
func (r *voteRepository) ResetSequence() error {
	if _, err := r.db.Exec(`DELETE FROM sqlite_sequence WHERE name = 'votes'`); err != nil {
		return classifyError(err, "failed to reset vote sequence")
	}

	return nil
}

func (r *voteRepository) queryVotes(query string, args ...interface{}) ([]*entity.Vote, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, classifyError(err, "failed to get votes")
	}
	defer rows.Close()

	var votes []*entity.Vote
	for rows.Next() {
		vote, err := scanVote(rows)
		if err != nil {
			return nil, classifyError(err, "failed to scan vote")
		}
		votes = append(votes, vote)
	}

	return votes, nil
}

func scanVote(row scanTarget) (*entity.Vote, error) {
	vote := &entity.Vote{}
	err := row.Scan(
		&vote.ID,
		&vote.UserID,
		&vote.VoteSessionID,
		&vote.SelectedDays,
		&vote.CreatedAt,
		&vote.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return vote, nil
}
