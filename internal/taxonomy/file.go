package taxonomy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonsiu/career-os-sub001/internal/schemas"
	"github.com/jonsiu/career-os-sub001/internal/types"
)

// FileProvider serves role skills from an O*NET-style JSON snapshot loaded at
// construction. The snapshot maps role identifiers to their skill lists.
type FileProvider struct {
	roles map[string][]types.RoleSkill
}

// NewFileProvider loads a taxonomy snapshot from path. When a schema file is
// resolvable, the snapshot is validated against it before loading.
func NewFileProvider(path string) (*FileProvider, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy snapshot %s: %w", path, err)
	}

	if schemaPath := schemas.ResolveSchemaPath("schemas/role_skills.schema.json"); schemaPath != "" {
		schemaContent, err := os.ReadFile(schemaPath)
		if err == nil {
			if err := schemas.ValidateJSONString(string(schemaContent), string(data)); err != nil {
				return nil, fmt.Errorf("taxonomy snapshot failed schema validation: %w", err)
			}
		}
	}

	var roles map[string][]types.RoleSkill
	if err := json.Unmarshal(data, &roles); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy snapshot: %w", err)
	}

	return &FileProvider{roles: roles}, nil
}

// RoleSkills returns the skill requirements for a role, or *NotFoundError if
// the snapshot has no entry for it.
func (p *FileProvider) RoleSkills(_ context.Context, roleID string) ([]types.RoleSkill, error) {
	skills, ok := p.roles[roleID]
	if !ok {
		return nil, &NotFoundError{RoleID: roleID}
	}
	return skills, nil
}
