// Package auth handles shared-secret authentication and the role tiers.
package auth

import "fmt"

// Role is the authorization tier attached to a session.
type Role string

const (
	// RoleUser may upload and read media.
	RoleUser Role = "USER"
	// RoleAdmin may additionally delete media.
	RoleAdmin Role = "ADMIN"
)

// ParseRole validates a stored role string at the session-read boundary.
// Unrecognized values are rejected rather than treated as authenticated.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
