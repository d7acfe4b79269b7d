package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// SkillRecords retrieves a learner's historical skill records for velocity
// calculation. An empty result is a valid, expected state.
func (db *DB) SkillRecords(ctx context.Context, userID uuid.UUID) ([]types.SkillRecord, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT skill_name, status, progress, time_spent_hours, estimated_hours_to_target
		 FROM skill_history WHERE user_id = $1 ORDER BY updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query skill history: %w", err)
	}
	defer rows.Close()

	var records []types.SkillRecord
	for rows.Next() {
		var r types.SkillRecord
		if err := rows.Scan(&r.SkillName, &r.Status, &r.Progress, &r.TimeSpentHours, &r.EstimatedHoursToTarget); err != nil {
			return nil, fmt.Errorf("failed to scan skill record: %w", err)
		}
		records = append(records, r)
	}
	return records, nil
}
