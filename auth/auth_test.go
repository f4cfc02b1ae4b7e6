package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/franciscoj/podium/auth"
)

func TestUserGate(t *testing.T) {
	operator := &auth.User{
		Username: "maria",
		Role:     "operator",
		Permissions: []auth.Permission{
			{Action: auth.TimerControl, Granted: true},
			{Action: auth.TimerOverride, Granted: false},
		},
	}

	gate := auth.UserGate{User: operator}

	assert.True(t, gate.Authorize(auth.TimerControl))
	assert.False(t, gate.Authorize(auth.TimerOverride))
	assert.False(t, gate.Authorize(auth.Action("meeting_config")))
}

func TestUserGateNilUser(t *testing.T) {
	gate := auth.UserGate{}

	assert.False(t, gate.Authorize(auth.TimerControl))
}

func TestAllowAll(t *testing.T) {
	gate := auth.AllowAll{}

	assert.True(t, gate.Authorize(auth.TimerControl))
	assert.True(t, gate.Authorize(auth.TimerOverride))
}
