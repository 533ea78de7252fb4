package database

import (
	"time"

	"github.com/jungshell/fccg-core/internal/domain/contract"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

type attendanceRepository struct {
	db dbConn
}

func newAttendanceRepository(db dbConn) contract.AttendanceRepo {
	return &attendanceRepository{db: db}
}

func (r *attendanceRepository) Create(attendance *entity.Attendance) error {
	query := `
		INSERT INTO attendances (user_id, game_id, status, game_day)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		attendance.UserID,
		attendance.GameID,
		attendance.Status,
		attendance.GameDay,
	)
	if err != nil {
		return classifyError(err, "failed to create attendance")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return classifyError(err, "failed to get last insert id")
	}

	attendance.ID = id
	return nil
}

func (r *attendanceRepository) CountByUserSince(userID int64, since time.Time) (int64, error) {
	query := `SELECT COUNT(*) FROM attendances WHERE user_id = ? AND game_day >= ?`

	var count int64
	if err := r.db.QueryRow(query, userID, since).Scan(&count); err != nil {
		return 0, classifyError(err, "failed to count attendances")
	}

	return count, nil
}
