package auth

import "crypto/subtle"

// Service checks submitted passwords against the two configured secrets.
type Service struct {
	adminPassword []byte
	userPassword  []byte
}

// NewService creates a new auth Service with the configured shared secrets.
func NewService(adminPassword, userPassword string) *Service {
	return &Service{
		adminPassword: []byte(adminPassword),
		userPassword:  []byte(userPassword),
	}
}

// Authenticate compares the password against both secrets in constant time and
// returns the matching role. Both comparisons always run so response timing
// does not reveal which secret (if either) matched.
func (s *Service) Authenticate(password string) (Role, bool) {
	p := []byte(password)
	isAdmin := subtle.ConstantTimeCompare(p, s.adminPassword) == 1
	isUser := subtle.ConstantTimeCompare(p, s.userPassword) == 1

	switch {
	case isAdmin:
		return RoleAdmin, true
	case isUser:
		return RoleUser, true
	}
	return "", false
}
