package access

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrUnauthorized is returned when a password does not unlock any role
var ErrUnauthorized = errors.New("incorrect password")

// Gate checks passwords against bcrypt hashes
type Gate struct {
	teamHash  []byte
	adminHash []byte
}

// NewGate creates a Gate from bcrypt hashes. An empty team hash leaves the
// gate open; an empty admin hash disables admin access.
func NewGate(teamHash, adminHash string) (*Gate, error) {
	if err := ValidateHash(teamHash); err != nil {
		return nil, fmt.Errorf("team password hash: %w", err)
	}
	if err := ValidateHash(adminHash); err != nil {
		return nil, fmt.Errorf("admin password hash: %w", err)
	}
	return &Gate{
		teamHash:  []byte(teamHash),
		adminHash: []byte(adminHash),
	}, nil
}

// ValidateHash checks that a non-empty string is a bcrypt hash
func ValidateHash(hash string) error {
	if hash == "" {
		return nil
	}
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return fmt.Errorf("not a bcrypt hash: %w", err)
	}
	return nil
}

// Open reports whether no team password is configured
func (g *Gate) Open() bool {
	return len(g.teamHash) == 0
}

// AdminEnabled reports whether an admin password is configured
func (g *Gate) AdminEnabled() bool {
	return len(g.adminHash) > 0
}

// Authenticate returns the role unlocked by password. The admin password
// also passes the team gate.
func (g *Gate) Authenticate(password string) (Role, error) {
	if g.matches(g.adminHash, password) {
		return RoleAdmin, nil
	}
	if g.Open() || g.matches(g.teamHash, password) {
		return RoleStaff, nil
	}
	return RoleNone, ErrUnauthorized
}

// Elevate upgrades a staff role to admin when adminPassword is correct.
// A wrong password leaves the role unchanged and returns ErrUnauthorized.
func (g *Gate) Elevate(role Role, adminPassword string) (Role, error) {
	if role < RoleStaff {
		return role, ErrUnauthorized
	}
	if !g.matches(g.adminHash, adminPassword) {
		return role, ErrUnauthorized
	}
	return RoleAdmin, nil
}

func (g *Gate) matches(hash []byte, password string) bool {
	if len(hash) == 0 || password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil
}

// HashPassword returns a bcrypt hash for storing in the config file
func HashPassword(password string, cost int) (string, error) {
	if password == "" {
		return "", errors.New("password must not be empty")
	}
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
