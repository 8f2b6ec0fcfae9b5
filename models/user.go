package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Email is the unique address the account was registered with.
	// It doubles as the login identifier for local authentication.
	Email string `json:"email"`

	// Username is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Username string `json:"username"`

	// Salt is the per-user random value mixed into the password KDF.
	// Empty for social accounts, which carry no local credential.
	Salt string `json:"-"`

	// Hash stores the PBKDF2 derivation of the user's password.
	// This value MUST be a KDF output, never plaintext.
	Hash string `json:"-"`

	// Activated reports whether the user has visited the activation link
	// sent at registration time. Unactivated accounts cannot log in.
	Activated bool `json:"-"`

	// Provider names the OAuth provider for social accounts
	// (e.g. "google", "twitter"). Empty for local accounts.
	Provider string `json:"provider,omitempty"`

	// Bio is the free-form profile text shown on the user's public page.
	Bio string `json:"bio,omitempty"`

	// Image is the URL of the user's avatar.
	Image string `json:"image,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Profile is the public subset of a user attached to articles and
// bookmarks. It never carries credential material.
type Profile struct {
	Username string `json:"username"`
	Bio      string `json:"bio,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Profile returns the public projection of the user.
func (u User) Profile() Profile {
	return Profile{
		Username: u.Username,
		Bio:      u.Bio,
		Image:    u.Image,
	}
}

// SocialProfile is the shape handed over by the OAuth provider after the
// external handshake. The application only consumes this structure; the
// handshake itself happens outside the service.
type SocialProfile struct {
	ID          string   `json:"id"`
	DisplayName string   `json:"displayName"`
	Emails      []string `json:"emails"`
	Provider    string   `json:"provider"`
}
