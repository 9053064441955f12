package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is the access rule of a single route pattern. Roles lists the
// roles allowed through; an empty list admits any authenticated caller.
type Permission struct {
	Roles  []string `json:"permissions"`
	Path   string   `json:"path"`
	Method string   `json:"method"`
	Skip   bool     `json:"skip"`
}

// Allows reports whether role may call the route.
func (p Permission) Allows(role string) bool {
	return len(p.Roles) == 0 || slices.Contains(p.Roles, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func routeKey(method, path string) string {
	return method + " " + path
}

// Parse decodes a permissions document and indexes it by method and path.
func Parse(data []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(data, &permissions); err != nil {
		return nil, fmt.Errorf("failed to decode permissions: %w", err)
	}

	permissions.index = make(map[string]Permission, len(permissions.Endpoints))

	for _, endpoint := range permissions.Endpoints {
		if endpoint.Method == "" {
			endpoint.Method = http.MethodGet
		}

		key := routeKey(endpoint.Method, endpoint.Path)
		if _, duplicate := permissions.index[key]; duplicate {
			return nil, fmt.Errorf("duplicate permission for %s", key)
		}

		permissions.index[key] = endpoint
	}

	return &permissions, nil
}

// FindPermissions returns the rule for a route pattern, or the zero Permission.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	return r.index[routeKey(method, path)]
}

func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("embedded permissions loaded")

	return permissions
}
