package contextkeys

// Keys under which the auth middleware stores the caller's identity in the
// request context. Handlers read them back through these constants instead
// of scattering magic strings.
const (
	UserIDKey = "userID"
	RoleKey   = "role"
)
