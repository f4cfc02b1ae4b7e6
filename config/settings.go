package config

import (
	"github.com/franciscoj/podium/auth"
)

type (
	// Config holds all program settings.
	Config struct {
		Operator      DisplayConfig      `mapstructure:"operator"`
		Speaker       DisplayConfig      `mapstructure:"speaker"`
		Notifications NotificationConfig `mapstructure:"notifications"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Users         []auth.User        `mapstructure:"users"`
	}

	// Thresholds are the seconds-remaining marks at which a section's
	// alert level escalates.
	Thresholds struct {
		Warning  int `mapstructure:"warning"`
		Critical int `mapstructure:"critical"`
	}

	// AlertColors maps each alert level to a hex color.
	AlertColors struct {
		Normal   string `mapstructure:"normal"`
		Warning  string `mapstructure:"warning"`
		Critical string `mapstructure:"critical"`
		Overtime string `mapstructure:"overtime"`
	}

	// DisplayConfig configures what a single display surface is allowed to
	// show.
	DisplayConfig struct {
		DisplayID          string      `mapstructure:"-"`
		ShowCurrentTime    bool        `mapstructure:"show_current_time"`
		ShowMeetingEndTime bool        `mapstructure:"show_end_time"`
		ShowTimeVariance   bool        `mapstructure:"show_variance"`
		ShowSectionList    bool        `mapstructure:"show_section_list"`
		AlertThresholds    Thresholds  `mapstructure:"alert_thresholds"`
		Colors             AlertColors `mapstructure:"colors"`
	}

	// NotificationConfig holds notification settings.
	NotificationConfig struct {
		Enabled bool `mapstructure:"enabled"`
		Chime   bool `mapstructure:"chime"`
	}

	// SettingsConfig holds general program settings.
	SettingsConfig struct {
		TwentyFourHour  bool   `mapstructure:"24hr_clock"`
		DarkTheme       bool   `mapstructure:"dark_theme"`
		SectionCmd      string `mapstructure:"section_cmd"`
		DefaultTemplate string `mapstructure:"default_template"`
	}

	// Option is a function that modifies a Config.
	Option func(*Config) error
)

// New creates a Config by applying the given options and validating the
// result.
func New(opts ...Option) (*Config, error) {
	c := &Config{}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.Operator.DisplayID = "operator"
	c.Speaker.DisplayID = "speaker"

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// UserNamed returns the configured user with the given username, or nil.
func (c *Config) UserNamed(username string) *auth.User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}

	return nil
}

// Gate builds the authorization gate for the acting user. With no users
// configured, Podium runs in single-user mode and every action is allowed.
func (c *Config) Gate(username string) auth.Gate {
	if len(c.Users) == 0 {
		return auth.AllowAll{}
	}

	return auth.UserGate{User: c.UserNamed(username)}
}
