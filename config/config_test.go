package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franciscoj/podium/auth"
	"github.com/franciscoj/podium/config"
)

func defaultDisplayConfig(id string, sectionList bool) config.DisplayConfig {
	return config.DisplayConfig{
		DisplayID:          id,
		ShowCurrentTime:    true,
		ShowMeetingEndTime: true,
		ShowTimeVariance:   true,
		ShowSectionList:    sectionList,
		AlertThresholds: config.Thresholds{
			Warning:  60,
			Critical: 30,
		},
		Colors: config.AlertColors{
			Normal:   "#228be6",
			Warning:  "#fd7e14",
			Critical: "#fa5252",
			Overtime: "#e03131",
		},
	}
}

func defaultConfig() *config.Config {
	return &config.Config{
		Operator: defaultDisplayConfig("operator", true),
		Speaker:  defaultDisplayConfig("speaker", false),
		Notifications: config.NotificationConfig{
			Enabled: true,
			Chime:   true,
		},
		Settings: config.SettingsConfig{
			TwentyFourHour:  false,
			DarkTheme:       true,
			SectionCmd:      "",
			DefaultTemplate: "",
		},
	}
}

func TestViperWriteConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig(), cfg)

	// the defaults must be written back on first run
	_, err = os.Stat(configPath)
	assert.NoError(t, err)
}

func TestViperReadExistingConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yml")

	content := []byte(`
settings:
  24hr_clock: true
  default_template: "Weekend Meeting (Standard)"
speaker:
  show_variance: false
`)
	require.NoError(t, os.WriteFile(configPath, content, 0o644))

	cfg, err := config.New(
		config.WithViperConfig(configPath),
	)
	require.NoError(t, err)

	assert.True(t, cfg.Settings.TwentyFourHour)
	assert.Equal(t, "Weekend Meeting (Standard)", cfg.Settings.DefaultTemplate)
	assert.False(t, cfg.Speaker.ShowTimeVariance)

	// unset keys keep their defaults
	assert.True(t, cfg.Operator.ShowTimeVariance)
	assert.Equal(t, 60, cfg.Speaker.AlertThresholds.Warning)
}

func TestValidateThresholds(t *testing.T) {
	cases := []struct {
		name     string
		warning  int
		critical int
		wantErr  bool
	}{
		{"valid", 60, 30, false},
		{"warning below critical", 30, 60, true},
		{"equal", 30, 30, true},
		{"zero critical", 60, 0, true},
		{"negative warning", -1, -5, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			cfg.Operator.AlertThresholds = config.Thresholds{
				Warning:  tc.warning,
				Critical: tc.critical,
			}

			err := cfg.Validate()

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateColors(t *testing.T) {
	cfg := defaultConfig()
	cfg.Speaker.Colors.Overtime = "red"

	assert.Error(t, cfg.Validate())

	cfg.Speaker.Colors.Overtime = "#E03131"
	assert.NoError(t, cfg.Validate())
}

func TestValidateUsers(t *testing.T) {
	cfg := defaultConfig()
	cfg.Users = []auth.User{
		{
			Username: "ana",
			Permissions: []auth.Permission{
				{Action: auth.TimerControl, Granted: true},
				{Action: "launch_missiles", Granted: true},
			},
		},
	}

	assert.Error(t, cfg.Validate())

	cfg.Users[0].Permissions = cfg.Users[0].Permissions[:1]
	assert.NoError(t, cfg.Validate())
}

func TestGate(t *testing.T) {
	cfg := defaultConfig()

	// single-user mode allows everything
	gate := cfg.Gate("")
	assert.True(t, gate.Authorize(auth.TimerControl))
	assert.True(t, gate.Authorize(auth.TimerOverride))

	cfg.Users = []auth.User{
		{
			Username: "ana",
			Permissions: []auth.Permission{
				{Action: auth.TimerControl, Granted: true},
			},
		},
	}

	gate = cfg.Gate("ana")
	assert.True(t, gate.Authorize(auth.TimerControl))
	assert.False(t, gate.Authorize(auth.TimerOverride))

	// unknown users are denied everything
	gate = cfg.Gate("bob")
	assert.False(t, gate.Authorize(auth.TimerControl))
}
