package entity

import "slices"

// Role is an account role carried in access tokens.
type Role string

const (
	// RoleUser buys and sells.
	RoleUser Role = "user"
	// RoleAdmin may run operator actions such as a manual expiry sweep.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Roles is the role set of one principal.
type Roles []Role

// Contains reports whether role is in the set.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Strings returns the roles as token claim values.
func (rs Roles) Strings() []string {
	out := make([]string, 0, len(rs))
	for _, r := range rs {
		out = append(out, string(r))
	}

	return out
}

// RolesFromStrings parses claim values, dropping unknown roles.
func RolesFromStrings(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() {
			out = append(out, role)
		}
	}

	return out
}
