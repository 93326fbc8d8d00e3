// Copyright (c) 2026 Folio. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/taibuivan/folio/internal/platform/database/schema"
	"github.com/taibuivan/folio/internal/platform/postgres"
)

// PostgresRepository implements [Repository] on library.readingactivity.
type PostgresRepository struct {
	db postgres.DB
}

// NewRepository creates a new Postgres implementation for the reading log.
func NewRepository(db postgres.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Record upserts the (user, day) row, summing minutes.
func (repository *PostgresRepository) Record(context context.Context, userID, bookID string, minutes int, at time.Time) error {
	table := schema.LibraryReadingActivity
	query := fmt.Sprintf(`
		INSERT INTO %[1]s (%[2]s, %[3]s, %[4]s, %[5]s, %[6]s)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (%[2]s, %[3]s) DO UPDATE
		SET %[4]s = %[1]s.%[4]s + EXCLUDED.%[4]s,
			%[5]s = EXCLUDED.%[5]s,
			%[6]s = NOW()`,
		table.Table, table.UserID, table.Day, table.Minutes, table.LastBookID, table.UpdatedAt)

	year, month, day := at.UTC().Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	if _, err := repository.db.Exec(context, query, userID, date, minutes, bookID); err != nil {
		return fmt.Errorf("postgres_activity_repo_record_failed: %w", err)
	}
	return nil
}

// Days lists the user's reading days in ascending order.
func (repository *PostgresRepository) Days(context context.Context, userID string) ([]time.Time, error) {
	table := schema.LibraryReadingActivity
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s`,
		table.Day, table.Table, table.UserID, table.Day)

	rows, err := repository.db.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_activity_repo_days_failed: %w", err)
	}
	defer rows.Close()

	var days []time.Time
	for rows.Next() {
		var day time.Time
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("postgres_activity_repo_days_scan_failed: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_activity_repo_days_failed: %w", err)
	}

	return days, nil
}
