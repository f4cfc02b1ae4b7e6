// Package auth gates timer control operations behind user capabilities.
package auth

// Action is a controllable capability.
type Action string

const (
	// TimerControl covers the ordinary control operations: start, pause,
	// stop, next section, previous section, end session.
	TimerControl Action = "timer_control"

	// TimerOverride covers operations that discard live timing data.
	TimerOverride Action = "timer_override"
)

// Permission is one granted or revoked capability entry.
type Permission struct {
	Action  Action `json:"action" mapstructure:"action"`
	Granted bool   `json:"granted" mapstructure:"granted"`
}

// User identifies an operator and the capabilities assigned to them.
type User struct {
	Username    string       `json:"username" mapstructure:"username"`
	DisplayName string       `json:"display_name" mapstructure:"display_name"`
	Role        string       `json:"role" mapstructure:"role"`
	Permissions []Permission `json:"permissions" mapstructure:"permissions"`
}

// Can reports whether the user holds a granted entry for action.
func (u *User) Can(action Action) bool {
	for _, p := range u.Permissions {
		if p.Action == action && p.Granted {
			return true
		}
	}

	return false
}

// Gate authorizes control actions before they reach the timer engine.
type Gate interface {
	Authorize(action Action) bool
}

// UserGate authorizes actions against a single user's permission entries.
type UserGate struct {
	User *User
}

func (g UserGate) Authorize(action Action) bool {
	if g.User == nil {
		return false
	}

	return g.User.Can(action)
}

// AllowAll is the single-user gate: every action is authorized. It is the
// default when no users are configured.
type AllowAll struct{}

func (AllowAll) Authorize(Action) bool { return true }
