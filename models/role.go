package models

// Role is the access level assigned to an account. Roles form a closed,
// ordered set: ANONYMOUS < AUTHENTICATED < MANAGER < ADMIN.
type Role string

const (
	// RoleAnonymous is the implicit role of unauthenticated callers.
	// It is never persisted on an account.
	RoleAnonymous Role = "ANONYMOUS"

	// RoleAuthenticated is the default role of a registered account.
	RoleAuthenticated Role = "AUTHENTICATED"

	// RoleManager may list, create, read, update and verify any account.
	RoleManager Role = "MANAGER"

	// RoleAdmin has full control, including deleting other accounts and
	// changing roles.
	RoleAdmin Role = "ADMIN"
)

// roleHierarchy orders the closed role set for IsAtLeast comparisons.
var roleHierarchy = map[Role]int{
	RoleAnonymous:     0,
	RoleAuthenticated: 1,
	RoleManager:       2,
	RoleAdmin:         3,
}

// AllRoles returns every member of the closed role set in ascending order.
func AllRoles() []Role {
	return []Role{RoleAnonymous, RoleAuthenticated, RoleManager, RoleAdmin}
}

// IsValid reports whether r belongs to the closed role set.
// Comparison is case-sensitive.
func (r Role) IsValid() bool {
	_, ok := roleHierarchy[r]
	return ok
}

// IsAtLeast reports whether r ranks at or above other in the role hierarchy.
// Unknown roles never satisfy any requirement.
func (r Role) IsAtLeast(other Role) bool {
	rank, ok := roleHierarchy[r]
	if !ok {
		return false
	}

	otherRank, ok := roleHierarchy[other]
	if !ok {
		return false
	}

	return rank >= otherRank
}

// In reports whether r is one of the given roles.
func (r Role) In(roles ...Role) bool {
	for _, role := range roles {
		if r == role {
			return true
		}
	}
	return false
}

// ParseRole converts a raw string into a Role, reporting whether it belongs
// to the closed role set.
func ParseRole(raw string) (Role, bool) {
	role := Role(raw)
	return role, role.IsValid()
}
