package entity

import "slices"

// Role is an access level carried in a bearer token.
type Role string

const (
	// RoleUser manages their own devices, settings and history.
	RoleUser Role = "user"
	// RoleService is held by backend producers calling the internal API.
	RoleService Role = "service"
	// RoleAdmin may inspect and repair the queue, and passes every other check.
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleService || r == RoleAdmin
}

// Roles is the role set of one caller.
type Roles []Role

// Grants reports whether the set satisfies a route that requires role.
func (rs Roles) Grants(role Role) bool {
	return slices.Contains(rs, role) || slices.Contains(rs, RoleAdmin)
}

// ToStrings converts Roles to the claim representation.
func (rs Roles) ToStrings() []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}

	return out
}

// RolesFromStrings keeps the known roles of a claim, in order and without duplicates.
func RolesFromStrings(ss []string) Roles {
	out := make(Roles, 0, len(ss))
	for _, s := range ss {
		if role := Role(s); role.IsValid() && !slices.Contains(out, role) {
			out = append(out, role)
		}
	}

	return out
}
