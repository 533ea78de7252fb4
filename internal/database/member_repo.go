package database

import (
	"database/sql"
	"strings"
	"time"

	"github.com/jungshell/fccg-core/internal/domain/contract"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

type memberRepository struct {
	db dbConn
}

func newMemberRepository(db dbConn) contract.MemberRepo {
	return &memberRepository{db: db}
}

func (r *memberRepository) Create(member *entity.Member) error {
	query := `
		INSERT INTO members (name, status, status_change_reason, last_login_at)
		VALUES (?, ?, ?, ?)
	`

	var lastLogin interface{}
	if member.LastLoginAt != nil {
		lastLogin = *member.LastLoginAt
	}

	result, err := r.db.Exec(query,
		member.Name,
		member.Status,
		member.StatusChangeReason,
		lastLogin,
	)
	if err != nil {
		return classifyError(err, "failed to create member")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return classifyError(err, "failed to get last insert id")
	}

	member.ID = id
	return nil
}

func (r *memberRepository) GetByID(id int64) (*entity.Member, error) {
	query := `
		SELECT id, name, status, status_changed_at, status_change_reason,
			last_login_at, created_at
		FROM members
		WHERE id = ?
	`

	member, err := scanMember(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classifyError(err, "failed to get member")
	}

	return member, nil
}

func (r *memberRepository) GetByStatuses(statuses []string) ([]*entity.Member, error) {
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(statuses)), ",")
	query := `
		SELECT id, name, status, status_changed_at, status_change_reason,
			last_login_at, created_at
		FROM members
		WHERE status IN (` + placeholders + `)
		ORDER BY id ASC
	`

	args := make([]interface{}, 0, len(statuses))
	for _, s := range statuses {
		args = append(args, s)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, classifyError(err, "failed to get members")
	}
	defer rows.Close()

	var members []*entity.Member
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, classifyError(err, "failed to scan member")
		}
		members = append(members, member)
	}

	return members, nil
}

func (r *memberRepository) UpdateStatus(id int64, status, reason string, changedAt time.Time) error {
	query := `
		UPDATE members SET
			status = ?,
			status_change_reason = ?,
			status_changed_at = ?
		WHERE id = ?
	`

	if _, err := r.db.Exec(query, status, reason, changedAt, id); err != nil {
		return classifyError(err, "failed to update member status")
	}

	return nil
}

func (r *memberRepository) TouchLastLogin(id int64, at time.Time) error {
	query := `UPDATE members SET last_login_at = ? WHERE id = ?`

	if _, err := r.db.Exec(query, at, id); err != nil {
		return classifyError(err, "failed to update last login")
	}

	return nil
}

// scanTarget covers both *sql.Row and *sql.Rows
type scanTarget interface {
	Scan(dest ...interface{}) error
}

func scanMember(row scanTarget) (*entity.Member, error) {
	member := &entity.Member{}
	var statusChangedAt, lastLoginAt sql.NullTime

	err := row.Scan(
		&member.ID,
		&member.Name,
		&member.Status,
		&statusChangedAt,
		&member.StatusChangeReason,
		&lastLoginAt,
		&member.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if statusChangedAt.Valid {
		member.StatusChangedAt = &statusChangedAt.Time
	}
	if lastLoginAt.Valid {
		member.LastLoginAt = &lastLoginAt.Time
	}

	return member, nil
}
