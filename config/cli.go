package config

import (
	"github.com/urfave/cli/v2"
)

// CLIOptions represents command-line configuration overrides.
type CLIOptions struct {
	SectionCmd      string
	DefaultTemplate string
	TwentyFourHour  bool
	DisableNotify   bool
	DisableChime    bool
}

// WithCLIConfig returns an Option that overrides file settings from CLI
// flags.
func WithCLIConfig(ctx *cli.Context) Option {
	return func(c *Config) error {
		opts := CLIOptions{
			SectionCmd:      ctx.String("section-cmd"),
			DefaultTemplate: ctx.String("template"),
			TwentyFourHour:  ctx.Bool("24hr"),
			DisableNotify:   ctx.Bool("disable-notification"),
			DisableChime:    ctx.Bool("disable-chime"),
		}

		applyCLIOptions(c, opts)

		return nil
	}
}

func applyCLIOptions(c *Config, opts CLIOptions) {
	if opts.SectionCmd != "" {
		c.Settings.SectionCmd = opts.SectionCmd
	}

	if opts.DefaultTemplate != "" {
		c.Settings.DefaultTemplate = opts.DefaultTemplate
	}

	if opts.TwentyFourHour {
		c.Settings.TwentyFourHour = true
	}

	if opts.DisableNotify {
		c.Notifications.Enabled = false
	}

	if opts.DisableChime {
		c.Notifications.Chime = false
	}
}
