package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jungshell/fccg-core/internal/domain/contract"
	"github.com/jungshell/fccg-core/internal/domain/entity"
)

type gameRepository struct {
	db dbConn
}

func newGameRepository(db dbConn) contract.GameRepo {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(game *entity.Game) error {
	query := `
		INSERT INTO games (date, start_time, location, event_type, auto_generated,
			confirmed, selected_members, mercenary_count, created_by_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	// Convert SelectedMembers to JSON for storage
	membersJSON, err := json.Marshal(game.SelectedMembers)
	if err != nil {
		return fmt.Errorf("failed to marshal selected members: %w", err)
	}

	result, err := r.db.Exec(query,
		game.Date,
		game.StartTime,
		game.Location,
		game.EventType,
		game.AutoGenerated,
		game.Confirmed,
		string(membersJSON),
		game.MercenaryCount,
		game.CreatedByID,
	)
	if err != nil {
		return classifyError(err, "failed to create game")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return classifyError(err, "failed to get last insert id")
	}

	game.ID = id
	return nil
}

func (r *gameRepository) GetByDateRange(from, to time.Time) ([]*entity.Game, error) {
	query := `
		SELECT id, date, start_time, location, event_type, auto_generated,
			confirmed, selected_members, mercenary_count, created_by_id, created_at
		FROM games
		WHERE date >= ? AND date <= ?
		ORDER BY date ASC, id ASC
	`

	rows, err := r.db.Query(query, from, to)
	if err != nil {
		return nil, classifyError(err, "failed to get games")
	}
	defer rows.Close()

	var games []*entity.Game
	for rows.Next() {
		game := &entity.Game{}
		var membersJSON string
		err := rows.Scan(
			&game.ID,
			&game.Date,
			&game.StartTime,
			&game.Location,
			&game.EventType,
			&game.AutoGenerated,
			&game.Confirmed,
			&membersJSON,
			&game.MercenaryCount,
			&game.CreatedByID,
			&game.CreatedAt,
		)
		if err != nil {
			return nil, classifyError(err, "failed to scan game")
		}

		// Convert JSON to SelectedMembers slice
		if err := json.Unmarshal([]byte(membersJSON), &game.SelectedMembers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal selected members: %w", err)
		}
		games = append(games, game)
	}

	return games, nil
}

func (r *gameRepository) DeleteAutoGeneratedInRange(from, to time.Time) (int64, error) {
	query := `DELETE FROM games WHERE auto_generated = 1 AND date >= ? AND date <= ?`

	result, err := r.db.Exec(query, from, to)
	if err != nil {
		return 0, classifyError(err, "failed to delete auto-generated games")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, classifyError(err, "failed to get affected rows")
	}

	return affected, nil
}
