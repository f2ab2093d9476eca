package domain

import "time"

// Identity is the resolved caller of a request. The zero value is the anonymous caller.
type Identity struct {
	userID string
}

// UserIdentity returns the identity of an authenticated user. An empty id yields the anonymous identity.
func UserIdentity(userID string) Identity {
	return Identity{userID: userID}
}

// Anonymous returns the identity used when no caller could be resolved.
func Anonymous() Identity {
	return Identity{}
}

// UserID returns the caller's user id and whether an identity is present.
func (i Identity) UserID() (string, bool) {
	return i.userID, i.userID != ""
}

// Present reports whether the caller was resolved to a user.
func (i Identity) Present() bool {
	return i.userID != ""
}

// OwnerID is the value stored as creator_id. Anonymous owners are stored as the empty string.
func (i Identity) OwnerID() string {
	return i.userID
}

// TokenIssuer issues tokens (e.g. JWT) for a user id.
type TokenIssuer interface {
	Issue(userID string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated user ID.
type TokenVerifier interface {
	Verify(token string) (userID string, err error)
}
