package sdk

import "time"

// Role is a user role as reported by the Gestory backend. Role names are
// backend-defined and arrive in Spanish.
type Role string

const (
	// RoleAdministrator is the only role allowed to use the admin surface.
	RoleAdministrator Role = "administrador"
	// RoleStudent is the default role for regular accounts.
	RoleStudent Role = "estudiante"
)

// DefaultSessionTimeout applies when the profile carries no explicit
// tiempo_sesion setting.
const DefaultSessionTimeout = 30 * time.Minute

// User is the profile snapshot returned by the auth endpoints and persisted
// alongside the bearer token.
type User struct {
	ID        int            `json:"id"`
	Email     string         `json:"email"`
	Role      Role           `json:"role"`
	Avatar    string         `json:"avatar,omitempty"`
	CreatedAt time.Time      `json:"createdAt,omitempty"`
	Settings  map[string]any `json:"configuracion,omitempty"`
}

// IsAdmin reports whether the user holds the administrator role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdministrator
}

// SessionTimeout returns the configured session timeout, falling back to
// DefaultSessionTimeout when the setting is absent or not numeric.
func (u *User) SessionTimeout() time.Duration {
	v, ok := u.Settings["tiempo_sesion"]
	if !ok {
		return DefaultSessionTimeout
	}
	switch n := v.(type) {
	case float64: // JSON numbers decode as float64
		if n > 0 {
			return time.Duration(n) * time.Minute
		}
	case int:
		if n > 0 {
			return time.Duration(n) * time.Minute
		}
	}
	return DefaultSessionTimeout
}
