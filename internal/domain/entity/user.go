// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. It owns the photo collection and the
// set of refresh tokens; a refresh token never outlives its user.
type User struct {
	ID            uuid.UUID      // The unique identifier for the user account.
	UserName      string         // The login name, unique across the system.
	DisplayName   string         // The name shown to other users.
	Email         string         // The user's primary contact email, unique across the system.
	Bio           string         // Free-form profile text.
	Photos        []Photo        // Profile photos; at most one is marked as main.
	RefreshTokens []RefreshToken // Long-lived session records owned by this user.
	CreatedAt     time.Time      // Timestamp of when this user account was created.
	UpdatedAt     time.Time      // Timestamp of the last modification to this user's data.
}

// MainPhotoURL returns the URL of the photo marked as main, or an empty string
// when the user has no main photo.
func (u *User) MainPhotoURL() string {
	for _, photo := range u.Photos {
		if photo.IsMain {
			return photo.URL
		}
	}

	return ""
}

// Photo is a profile image stored in external blob storage. The ID is the
// storage key used for deletion.
type Photo struct {
	ID        string    // The blob storage key for this photo.
	UserID    uuid.UUID // Links this photo to the User it belongs to.
	URL       string    // The publicly reachable URL of the stored image.
	IsMain    bool      // Whether this photo is the user's main profile image.
	CreatedAt time.Time
}
