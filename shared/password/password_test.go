package password_test

import (
	"lodging/shared/password"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "valid password", password: "admin123"},
		{name: "special characters", password: "P@ssw0rd!#$%^&*()"},
		{name: "unicode", password: "धर्मशाला123"},
		{name: "longest accepted", password: strings.Repeat("a", password.MaxLength)},
		{name: "empty", password: "", wantErr: password.ErrEmptyPassword},
		{name: "too long", password: strings.Repeat("a", password.MaxLength+1), wantErr: password.ErrHashingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := password.Hash(tt.password)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, hash)

				return
			}

			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(hash, "$2a$"))
			assert.NoError(t, password.Verify(tt.password, hash))
		})
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := password.Hash("admin123")
	require.NoError(t, err)

	second, err := password.Hash("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerify(t *testing.T) {
	hash, err := password.Hash("admin123")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantErr  error
	}{
		{name: "match", password: "admin123", hash: hash},
		{name: "wrong password", password: "admin124", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty password", password: "", hash: hash, wantErr: password.ErrInvalidPassword},
		{name: "empty hash", password: "admin123", hash: "", wantErr: password.ErrInvalidPassword},
		{name: "malformed hash", password: "admin123", hash: "not-a-hash", wantErr: password.ErrVerifyingPassword},
		{name: "truncated hash", password: "admin123", hash: hash[:10], wantErr: password.ErrVerifyingPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := password.Verify(tt.password, tt.hash)

			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
