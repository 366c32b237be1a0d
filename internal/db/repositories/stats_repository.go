package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// StatsRepository serves the dashboard counts from the read-side sqlx
// handle; these queries never join the ORM transaction path.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a new sqlx-based stats repository
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

type statusCount struct {
	Status string `db:"status"`
	Count  int64  `db:"count"`
}

// CountByStatus returns per-status row counts for a content table.
func (r *StatsRepository) CountByStatus(ctx context.Context, table string) (map[string]int64, error) {
	switch table {
	case "stories", "bulletins", "shows":
	default:
		return nil, fmt.Errorf("unsupported stats table: %s", table)
	}

	var rows []statusCount
	query := fmt.Sprintf("SELECT status, COUNT(*) AS count FROM %s GROUP BY status", table)
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to count %s: %w", table, err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// CountOpenTasks returns the number of tasks not yet completed or cancelled.
func (r *StatsRepository) CountOpenTasks(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM tasks WHERE status NOT IN ('COMPLETED', 'CANCELLED')")
	if err != nil {
		return 0, fmt.Errorf("failed to count open tasks: %w", err)
	}
	return count, nil
}
