package sdk

// SessionState is the guard's verdict lifecycle: a check starts at
// SessionChecking and ends at SessionAuthorized or SessionUnauthorized.
type SessionState int

const (
	SessionChecking SessionState = iota
	SessionAuthorized
	SessionUnauthorized
)

func (s SessionState) String() string {
	switch s {
	case SessionChecking:
		return "checking"
	case SessionAuthorized:
		return "authorized"
	case SessionUnauthorized:
		return "unauthorized"
	}
	return "unknown"
}

// SessionVerdict is the outcome of a guard check. Reason is set only for
// unauthorized verdicts; User is set only for authorized ones.
type SessionVerdict struct {
	State  SessionState
	Reason string
	User   *User
}

// SessionGuard gates access to protected operations. It is evaluated at each
// command start (the CLI's navigation point); it does not watch the store for
// live changes — a token revoked mid-session is caught by the gateway's
// authorization-failure handler, not here.
type SessionGuard struct {
	store    CredentialStore
	required Role
}

// NewSessionGuard creates a guard requiring the given role. The guard only
// reads the store.
func NewSessionGuard(store CredentialStore, required Role) *SessionGuard {
	return &SessionGuard{store: store, required: required}
}

// Check re-validates the session: a token must exist, a profile snapshot must
// exist, and the profile must carry the required role, in that order. The
// token and user entries are persisted independently, so a half-written
// session simply comes back unauthorized.
func (g *SessionGuard) Check() SessionVerdict {
	if _, ok := g.store.Token(); !ok {
		return SessionVerdict{State: SessionUnauthorized, Reason: "no session token"}
	}

	user, ok := g.store.User()
	if !ok {
		return SessionVerdict{State: SessionUnauthorized, Reason: "no stored user profile"}
	}

	if user.Role != g.required {
		return SessionVerdict{State: SessionUnauthorized, Reason: "insufficient role: " + string(user.Role)}
	}

	return SessionVerdict{State: SessionAuthorized, User: user}
}
