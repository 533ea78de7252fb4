package database

import (
	"database/sql"
	"time"

	"github.com/jungshell/fccg-core/internal/domain/contract"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

type sessionRepository struct {
	db dbConn
}

func newSessionRepository(db dbConn) contract.SessionRepo {
	return &sessionRepository{db: db}
}

const sessionColumns = `id, week_start_date, start_time, end_time, is_active, is_completed, created_at`

func (r *sessionRepository) Create(session *entity.VoteSession) error {
	query := `
		INSERT INTO vote_sessions (week_start_date, start_time, end_time, is_active, is_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	// Set here rather than by a column default so created_at shares the
	// driver's format with the values Restore writes.
	now := time.Now()

	result, err := r.db.Exec(query,
		session.WeekStartDate,
		session.StartTime,
		session.EndTime,
		session.IsActive,
		session.IsCompleted,
		now,
	)
	if err != nil {
		return classifyError(err, "failed to create vote session")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return classifyError(err, "failed to get last insert id")
	}

	session.ID = id
	session.CreatedAt = now
	return nil
}

// Restore reinserts a session preserving its original creation timestamp.
// Used by the renumbering pass, where sessions get fresh sequential ids.
func (r *sessionRepository) Restore(session *entity.VoteSession) error {
	query := `
		INSERT INTO vote_sessions (week_start_date, start_time, end_time, is_active, is_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		session.WeekStartDate,
		session.StartTime,
		session.EndTime,
		session.IsActive,
		session.IsCompleted,
		session.CreatedAt,
	)
	if err != nil {
		return classifyError(err, "failed to restore vote session")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return classifyError(err, "failed to get last insert id")
	}

	session.ID = id
	return nil
}

func (r *sessionRepository) GetByID(id int64) (*entity.VoteSession, error) {
	query := `SELECT ` + sessionColumns + ` FROM vote_sessions WHERE id = ?`

	session, err := scanSession(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classifyError(err, "failed to get vote session")
	}

	return session, nil
}

// GetByWeekDate matches on the calendar date only, so multiple intraday
// lookups for the same Monday resolve to the same session regardless of the
// stored time-of-day.
func (r *sessionRepository) GetByWeekDate(weekStart time.Time) (*entity.VoteSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM vote_sessions
		WHERE date(week_start_date) = date(?)
		ORDER BY id DESC
		LIMIT 1
	`

	session, err := scanSession(r.db.QueryRow(query, weekStart))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classifyError(err, "failed to get vote session by week date")
	}

	return session, nil
}

func (r *sessionRepository) GetActive() ([]*entity.VoteSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM vote_sessions
		WHERE is_active = 1
		ORDER BY created_at DESC, id DESC
	`

	return r.querySessions(query)
}

func (r *sessionRepository) GetAllOrdered() ([]*entity.VoteSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM vote_sessions
		ORDER BY week_start_date ASC, id ASC
	`

	return r.querySessions(query)
}

func (r *sessionRepository) GetLatestCompletedInRange(from, to time.Time) (*entity.VoteSession, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM vote_sessions
		WHERE is_completed = 1
			AND week_start_date >= ? AND week_start_date <= ?
			AND EXISTS (SELECT 1 FROM votes WHERE votes.vote_session_id = vote_sessions.id)
		ORDER BY week_start_date DESC, id DESC
		LIMIT 1
	`

	session, err := scanSession(r.db.QueryRow(query, from, to))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classifyError(err, "failed to get completed vote session")
	}

	return session, nil
}

// DeactivateExpired closes every active session whose end time has passed.
// Stored values and the now parameter may carry different UTC offsets, so
// both sides go through datetime() instead of comparing raw strings.
func (r *sessionRepository) DeactivateExpired(now time.Time) (int64, error) {
	query := `
		UPDATE vote_sessions SET is_active = 0, is_completed = 1
		WHERE is_active = 1 AND datetime(end_time) < datetime(?)
	`

	result, err := r.db.Exec(query, now)
	if err != nil {
		return 0, classifyError(err, "failed to deactivate expired sessions")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, classifyError(err, "failed to get affected rows")
	}

	return affected, nil
}

func (r *sessionRepository) Deactivate(id int64) error {
	query := `UPDATE vote_sessions SET is_active = 0, is_completed = 1 WHERE id = ?`

	if _, err := r.db.Exec(query, id); err != nil {
		return classifyError(err, "failed to deactivate session")
	}

	return nil
}

// Resume reopens a closed session. A session accepting votes again is no
// longer completed, so is_completed is cleared as well.
func (r *sessionRepository) Resume(id int64) error {
	query := `UPDATE vote_sessions SET is_active = 1, is_completed = 0 WHERE id = ?`

	if _, err := r.db.Exec(query, id); err != nil {
		return classifyError(err, "failed to resume session")
	}

	return nil
}

func (r *sessionRepository) Delete(id int64) error {
	query := `DELETE FROM vote_sessions WHERE id = ?`

	if _, err := r.db.Exec(query, id); err != nil {
		return classifyError(err, "failed to delete session")
	}

	return nil
}

func (r *sessionRepository) DeleteAll() error {
	if _, err := r.db.Exec(`DELETE FROM vote_sessions`); err != nil {
		return classifyError(err, "failed to delete all sessions")
	}

	return nil
}

// ResetSequence restarts AUTOINCREMENT ids at 1 for the sessions table.
func (r *sessionRepository) ResetSequence() error {
	if _, err := r.db.Exec(`DELETE FROM sqlite_sequence WHERE name = 'vote_sessions'`); err != nil {
		return classifyError(err, "failed to reset session sequence")
	}

	return nil
}

func (r *sessionRepository) querySessions(query string, args ...interface{}) ([]*entity.VoteSession, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, classifyError(err, "failed to get sessions")
	}
	defer rows.Close()

	var sessions []*entity.VoteSession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, classifyError(err, "failed to scan session")
		}
		sessions = append(sessions, session)
	}

	return sessions, nil
}

func scanSession(row scanTarget) (*entity.VoteSession, error) {
	session := &entity.VoteSession{}
	err := row.Scan(
		&session.ID,
		&session.WeekStartDate,
		&session.StartTime,
		&session.EndTime,
		&session.IsActive,
		&session.IsCompleted,
		&session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return session, nil
}
