// Package entity holds the marketplace's business objects.
package entity

// Role is the authorization level stored on a user and carried in access tokens.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

// IsValid rejects roles no account can hold, such as a tampered token claim.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

// Satisfies reports whether a caller holding r may use an endpoint that requires
// the given role. Admins satisfy every requirement.
func (r Role) Satisfies(required Role) bool {
	if !r.IsValid() {
		return false
	}

	return r == required || r.IsAdmin()
}
