package entity

import "strings"

// CurrentUserID is the fixed owner identity of the demo dataset. Every
// project created through the gateway is attributed to it.
const CurrentUserID UserID = "Luna"

// UserID identifies a logical user boundary in gateway services.
type UserID string

func NormalizeUserID(raw string) UserID {
	return UserID(strings.TrimSpace(raw))
}

func (id UserID) String() string {
	return strings.TrimSpace(string(id))
}

func (id UserID) IsZero() bool {
	return id.String() == ""
}
