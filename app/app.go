// Package app defines the podium command-line application.
package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/franciscoj/podium/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the podium app instance.
func Get() *cli.App {
	podiumApp := &cli.App{
		Name: "podium",
		Usage: `
		Podium is a meeting countdown timer for the command-line. It walks a
		meeting through the timed sections of a template, alerts the
		conductor as each section nears its end, and records how the actual
		timings compared to the plan.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "speaker",
				Usage:  "Open the read-only speaker display that follows a running timer",
				Action: speakerAction,
			},
			{
				Name:   "templates",
				Usage:  "List the saved meeting templates",
				Action: templatesAction,
			},
			{
				Name:   "new-template",
				Usage:  "Create a meeting template interactively",
				Action: newTemplateAction,
			},
			{
				Name:      "delete-template",
				Usage:     "Delete a saved meeting template",
				ArgsUsage: "<name or ID>",
				Action:    deleteTemplateAction,
			},
			{
				Name: "history",
				Usage: `
				Review past meetings and how their actual timings compared to
				the plan. Defaults to a reporting period of 7 days`,
				Action: historyAction,
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
					breakdownFlag,
				},
			},
			{
				Name:   "delete",
				Usage:  "Permanently delete recorded sessions",
				Action: deleteAction,
				Flags: []cli.Flag{
					periodFlag,
					startFlag,
					endFlag,
				},
			},
			{
				Name:   "status",
				Usage:  "Print the status of the timer",
				Action: statusAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags: []cli.Flag{
			userFlag,
			templateFlag,
			sectionCmdFlag,
			twentyFourHourFlag,
			disableNotificationFlag,
			disableChimeFlag,
			noColorFlag,
		},
		Action: defaultAction,
		Before: beforeAction,
	}

	return podiumApp
}
