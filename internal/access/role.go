// Package access decides what a caller may see. A Role is passed
// explicitly into presentation code; nothing here is global or per-session.
package access

import (
	"fmt"
	"strings"
)

// Role is the privilege level of a caller
type Role int

const (
	// RoleNone has not passed the team password gate
	RoleNone Role = iota
	// RoleStaff may search and see sell prices
	RoleStaff
	// RoleAdmin may additionally see buy prices
	RoleAdmin
)

// Capability is a single permission checked by the presentation layer
type Capability int

const (
	// CapSearch allows running matches
	CapSearch Capability = iota
	// CapViewBuyPrice allows seeing wholesale buy prices
	CapViewBuyPrice
)

// String returns the name of the role
func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "admin"
	case RoleStaff:
		return "staff"
	case RoleNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseRole parses a role name
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin, nil
	case "staff":
		return RoleStaff, nil
	case "none", "":
		return RoleNone, nil
	default:
		return RoleNone, fmt.Errorf("unknown role: %s", s)
	}
}

// Can reports whether the role holds a capability
func (r Role) Can(c Capability) bool {
	switch c {
	case CapSearch:
		return r >= RoleStaff
	case CapViewBuyPrice:
		return r == RoleAdmin
	default:
		return false
	}
}
