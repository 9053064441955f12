package permissions_test

import (
	"lodging/permissions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	doc := `{"endpoints":[
		{"path":"/v1/auth/login","method":"POST","skip":true},
		{"path":"/v1/guests/{id}","method":"GET","permissions":["admin"]},
		{"path":"/v1/guests/{id}","method":"DELETE","permissions":["admin"]},
		{"path":"/v1/open"}
	]}`

	data, err := permissions.Parse([]byte(doc))
	require.NoError(t, err)

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{name: "skipped login", path: "/v1/auth/login", method: http.MethodPost, wantSkip: true},
		{name: "admin read", path: "/v1/guests/{id}", method: http.MethodGet, wantRoles: []string{"admin"}},
		{name: "admin delete", path: "/v1/guests/{id}", method: http.MethodDelete, wantRoles: []string{"admin"}},
		{name: "method defaults to get", path: "/v1/open", method: http.MethodGet},
		{name: "unknown route", path: "/v1/unknown", method: http.MethodGet},
		{name: "method mismatch", path: "/v1/auth/login", method: http.MethodGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			assert.Equal(t, tt.wantSkip, permission.Skip)
			assert.Equal(t, tt.wantRoles, permission.Roles)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := permissions.Parse([]byte(`{"endpoints":`))
	assert.Error(t, err)

	_, err = permissions.Parse([]byte(`{"endpoints":[{"path":"/a","method":"GET"},{"path":"/a","method":"GET"}]}`))
	assert.ErrorContains(t, err, "duplicate permission for GET /a")
}

func TestPermission_Allows(t *testing.T) {
	assert.True(t, permissions.Permission{}.Allows("clerk"))
	assert.True(t, permissions.Permission{Roles: []string{"admin"}}.Allows("admin"))
	assert.False(t, permissions.Permission{Roles: []string{"admin"}}.Allows("clerk"))
	assert.False(t, permissions.Permission{Roles: []string{"admin"}}.Allows(""))
}

func TestGet(t *testing.T) {
	data := permissions.Get()
	require.NotNil(t, data)

	assert.True(t, data.FindPermissions("/v1/auth/login", http.MethodPost).Skip)
	assert.Equal(t, []string{"admin"}, data.FindPermissions("/v1/checkins", http.MethodPost).Roles)
}
