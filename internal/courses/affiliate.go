package courses

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// trackingTagPrefix identifies CareerOS in outbound affiliate links.
const trackingTagPrefix = "careerosapp"

// Disclosure returns the FTC affiliate disclosure shown alongside course
// recommendations. Downstream consumers assert on the "commission" and
// "no additional cost" wording; do not paraphrase.
func Disclosure() string {
	return "Some links above are affiliate links. If you enroll through them, " +
		"CareerOS may earn a commission at no additional cost to you. " +
		"We only recommend courses that match your skill development plan."
}

// TrackingTag builds the deterministic tracking tag for an outbound click.
func TrackingTag(userID, analysisID, skillName string) string {
	return fmt.Sprintf("%s-%s-%s-%s", trackingTagPrefix, userID, analysisID, skillName)
}

// GenerateAffiliateLink returns a copy of the course with AffiliateURL set to
// the course URL plus provider-specific tracking parameters. The original URL
// field is never modified. No external call is made; this is pure string
// construction.
func GenerateAffiliateLink(course types.Course, userID, analysisID, skillName string) (types.Course, error) {
	parsed, err := url.Parse(course.URL)
	if err != nil {
		return course, &InvalidInputError{Field: "url", Reason: fmt.Sprintf("unparseable course URL: %v", err)}
	}

	tag := TrackingTag(userID, analysisID, skillName)
	query := parsed.Query()

	switch {
	case strings.Contains(strings.ToLower(course.Provider), "coursera"):
		query.Set("irclickid", tag)
		query.Set("utm_medium", "partners")
	case strings.Contains(strings.ToLower(course.Provider), "udemy"):
		query.Set("referralCode", tag)
		query.Set("utm_medium", "affiliate")
	default:
		query.Set("utm_source", tag)
		query.Set("utm_campaign", "careeros")
	}

	parsed.RawQuery = query.Encode()
	course.AffiliateURL = parsed.String()
	return course, nil
}

// TrackClick stamps a click event with an ID and timestamp. Persistence is an
// analytics sink's responsibility; this only constructs the event.
func TrackClick(event types.ClickEvent) types.ClickEvent {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.ClickedAt.IsZero() {
		event.ClickedAt = time.Now().UTC()
	}
	return event
}
