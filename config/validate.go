package config

import (
	"regexp"
	"slices"

	"github.com/franciscoj/podium/auth"
)

var hexColorRegex = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

var knownActions = []auth.Action{
	auth.TimerControl,
	auth.TimerOverride,
}

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := validateDisplay(&c.Operator); err != nil {
		return err
	}

	if err := validateDisplay(&c.Speaker); err != nil {
		return err
	}

	return c.validateUsers()
}

func validateDisplay(dc *DisplayConfig) error {
	t := dc.AlertThresholds
	if t.Warning <= 0 || t.Critical <= 0 || t.Warning <= t.Critical {
		return errInvalidThreshold.Fmt(dc.DisplayID, t.Warning, t.Critical)
	}

	colors := map[string]string{
		"normal":   dc.Colors.Normal,
		"warning":  dc.Colors.Warning,
		"critical": dc.Colors.Critical,
		"overtime": dc.Colors.Overtime,
	}

	for level, color := range colors {
		if !hexColorRegex.MatchString(color) {
			return errInvalidColor.Fmt(level, dc.DisplayID, color)
		}
	}

	return nil
}

func (c *Config) validateUsers() error {
	for i := range c.Users {
		u := &c.Users[i]

		for _, p := range u.Permissions {
			if !slices.Contains(knownActions, p.Action) {
				return errUnknownAction.Fmt(u.Username, p.Action)
			}
		}
	}

	return nil
}
