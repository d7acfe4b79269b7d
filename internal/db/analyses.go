package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// SaveAnalysis stores a completed gap analysis as a JSON artifact and returns
// its ID.
func (db *DB) SaveAnalysis(ctx context.Context, analysis *types.Analysis) (uuid.UUID, error) {
	content, err := json.Marshal(analysis)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (user_id, role_id, content)
		 VALUES ($1, $2, $3)
		 RETURNING id`,
		analysis.UserID, analysis.RoleID, content,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis retrieves a stored analysis by ID. Returns nil when no analysis
// exists with that ID.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*types.Analysis, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM analyses WHERE id = $1`,
		id,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}

	var analysis types.Analysis
	if err := json.Unmarshal(content, &analysis); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", id, err)
	}
	analysis.ID = id
	return &analysis, nil
}

// ListAnalyses retrieves recent analyses for a user, newest first.
func (db *DB) ListAnalyses(ctx context.Context, userID uuid.UUID, limit int) ([]types.Analysis, error) {
	if limit == 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, content FROM analyses
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var analyses []types.Analysis
	for rows.Next() {
		var id uuid.UUID
		var content []byte
		if err := rows.Scan(&id, &content); err != nil {
			return nil, fmt.Errorf("failed to scan analysis: %w", err)
		}
		var analysis types.Analysis
		if err := json.Unmarshal(content, &analysis); err != nil {
			return nil, fmt.Errorf("failed to unmarshal analysis %s: %w", id, err)
		}
		analysis.ID = id
		analyses = append(analyses, analysis)
	}
	return analyses, nil
}
