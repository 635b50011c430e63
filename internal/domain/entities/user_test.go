package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_NormalizesEmail(t *testing.T) {
	user := NewUser("Ann", "  ANN@X.com ", 30, "secret1")
	assert.Equal(t, "ann@x.com", user.Email)
	assert.False(t, user.IsAdmin)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestNewOAuthUser_DefaultsAgeAndHasNoPassword(t *testing.T) {
	user := NewOAuthUser("ann", "Ann@x.com")
	assert.Equal(t, DefaultAge, user.Age)
	assert.Empty(t, user.Password)
	assert.Equal(t, "ann@x.com", user.Email)
}

func TestNewValidatedUser(t *testing.T) {
	tests := []struct {
		name    string
		user    *User
		wantErr bool
	}{
		{"valid credential user", NewUser("Ann", "ann@x.com", 30, "secret1"), false},
		{"valid oauth user without password", NewOAuthUser("ann", "ann@x.com"), false},
		{"username too short", NewUser("an", "ann@x.com", 30, "secret1"), true},
		{"empty email", NewUser("Ann", "", 30, "secret1"), true},
		{"email without at sign", NewUser("Ann", "annx.com", 30, "secret1"), true},
		{"negative age", NewUser("Ann", "ann@x.com", -1, "secret1"), true},
		{"password too short", NewUser("Ann", "ann@x.com", 30, "short"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validated, err := NewValidatedUser(tt.user)
			if tt.wantErr {
				require.Error(t, err)
				var validationErr *ValidationError
				assert.ErrorAs(t, err, &validationErr)
				assert.Nil(t, validated)
				return
			}
			require.NoError(t, err)
			assert.Same(t, tt.user, validated.GetUser())
		})
	}
}

func TestHashPassword(t *testing.T) {
	user := NewUser("Ann", "ann@x.com", 30, "secret1")
	require.NoError(t, user.HashPassword())

	// The stored value is never the submitted plaintext.
	assert.NotEqual(t, "secret1", user.Password)

	// The same plaintext verifies against the stored hash.
	assert.NoError(t, user.CheckPassword("secret1"))
	assert.Error(t, user.CheckPassword("wrong"))
}

func TestValidate_AcceptsStoredHash(t *testing.T) {
	// Hashed passwords are longer than the plaintext minimum, but a record
	// loaded from the store must pass validation regardless of hash shape.
	user := NewUser("Ann", "ann@x.com", 30, "secret1")
	require.NoError(t, user.HashPassword())

	_, err := NewValidatedUser(user)
	assert.NoError(t, err)
}

func TestHashPasswordValue(t *testing.T) {
	hash, err := HashPasswordValue("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	user := &User{Password: hash}
	assert.NoError(t, user.CheckPassword("secret1"))
}
