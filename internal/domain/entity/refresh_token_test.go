package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRefreshToken_IsActive(t *testing.T) {
	now := time.Now()
	revoked := now.Add(-time.Minute)

	tests := []struct {
		name   string
		token  RefreshToken
		active bool
	}{
		{
			name:   "fresh token is active",
			token:  RefreshToken{ExpiresAt: now.Add(time.Hour)},
			active: true,
		},
		{
			name:   "revoked token is not active",
			token:  RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked},
			active: false,
		},
		{
			name:   "expired token is not active",
			token:  RefreshToken{ExpiresAt: now.Add(-time.Second)},
			active: false,
		},
		{
			name:   "token expiring exactly now is not active",
			token:  RefreshToken{ExpiresAt: now},
			active: false,
		},
		{
			name:   "revoked and expired token is not active",
			token:  RefreshToken{ExpiresAt: now.Add(-time.Hour), RevokedAt: &revoked},
			active: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.active, tt.token.IsActive(now))
		})
	}
}

func TestUser_MainPhotoURL(t *testing.T) {
	userID := uuid.New()

	user := &User{
		ID: userID,
		Photos: []Photo{
			{ID: "a", UserID: userID, URL: "https://img.example/a.jpg"},
			{ID: "b", UserID: userID, URL: "https://img.example/b.jpg", IsMain: true},
		},
	}
	assert.Equal(t, "https://img.example/b.jpg", user.MainPhotoURL())

	empty := &User{ID: userID}
	assert.Empty(t, empty.MainPhotoURL())
}
