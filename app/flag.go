package app

import "github.com/urfave/cli/v2"

var (
	userFlag = &cli.StringFlag{
		Name:    "user",
		Aliases: []string{"u"},
		Usage:   "Act as the named user from the config file. Required when users are configured",
	}

	templateFlag = &cli.StringFlag{
		Name:    "template",
		Aliases: []string{"t"},
		Usage:   "Name or ID of the meeting template to run",
	}

	sectionCmdFlag = &cli.StringFlag{
		Name:    "section-cmd",
		Aliases: []string{"cmd"},
		Usage:   "Execute an arbitrary command whenever a new section begins",
	}

	twentyFourHourFlag = &cli.BoolFlag{
		Name:  "24hr",
		Usage: "Show clock times in the 24-hour format",
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the system notification that appears when a section nears its end",
	}

	disableChimeFlag = &cli.BoolFlag{
		Name:  "disable-chime",
		Usage: "Disable the audible chime that accompanies section alerts",
	}

	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   "Filter sessions by time period. Accepts: all-time, today, yesterday, 7days, 14days, 30days, 90days, 180days, 365days",
	}

	startFlag = &cli.StringFlag{
		Name:    "start",
		Aliases: []string{"s"},
		Usage:   "Filter sessions from the specified start date (natural language is supported, e.g. '3 weeks ago')",
	}

	endFlag = &cli.StringFlag{
		Name:    "end",
		Aliases: []string{"e"},
		Usage:   "Filter sessions up to the specified end date",
	}

	breakdownFlag = &cli.BoolFlag{
		Name:    "breakdown",
		Aliases: []string{"b"},
		Usage:   "Include a per-section breakdown for each session",
	}
)
