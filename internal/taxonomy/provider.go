// Package taxonomy provides access to occupational-taxonomy data: the skills
// a target role requires, with importance and complexity ratings.
package taxonomy

import (
	"context"
	"fmt"

	"github.com/jonsiu/career-os-sub001/internal/types"
)

// Provider resolves a role identifier to its required skills.
//
// Implementations signal an unknown role with *NotFoundError. An empty skill
// list is a valid result meaning "no requirements known" and must not be
// reported as an error.
type Provider interface {
	RoleSkills(ctx context.Context, roleID string) ([]types.RoleSkill, error)
}

// NotFoundError indicates the taxonomy has no entry for a role.
type NotFoundError struct {
	RoleID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("role not found in taxonomy: %s", e.RoleID)
}
