package db

import (
	"context"
	"fmt"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// InsertClickEvent stores a stamped affiliate click event.
func (db *DB) InsertClickEvent(ctx context.Context, event types.ClickEvent) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO click_events
		   (id, user_id, analysis_id, skill_name, provider, course_title, affiliate_url, clicked_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		event.ID, event.UserID, event.AnalysisID, event.SkillName,
		event.Provider, event.CourseTitle, event.AffiliateURL, event.ClickedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert click event: %w", err)
	}
	return nil
}
