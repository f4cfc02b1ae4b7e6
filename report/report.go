// Package report renders saved meeting sessions and templates as tables
// for the command line.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"

	"github.com/franciscoj/podium/config"
	"github.com/franciscoj/podium/internal/models"
	"github.com/franciscoj/podium/internal/timeutil"
	"github.com/franciscoj/podium/internal/ui"
	"github.com/franciscoj/podium/store"
)

const noSessionsMsg = "no sessions found in the specified time range"

const dateFormat = "January 02, 2006 03:04 PM"

// Report retrieves saved sessions in a time range and presents them.
type Report struct {
	DB     store.DB
	Opts   config.FilterConfig
	Stdout io.Writer
}

// formatDelay renders accrued delay seconds as a signed clock value,
// colored by whether the meeting ran behind or ahead.
func formatDelay(seconds int) string {
	mins, secs := timeutil.SecsToMinsAndSecs(seconds)
	text := fmt.Sprintf("%02d:%02d", mins, secs)

	switch {
	case seconds > 0:
		return ui.Red("+" + text)
	case seconds < 0:
		return ui.Green("-" + text)
	default:
		return text
	}
}

func formatVariance(mins int) string {
	switch {
	case mins > 0:
		return ui.Red(fmt.Sprintf("+%dm", mins))
	case mins < 0:
		return ui.Green(fmt.Sprintf("%dm", mins))
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

func sessionDuration(sess *models.Session) string {
	if sess.EndTime.IsZero() {
		return ""
	}

	mins := timeutil.Round(sess.EndTime.Sub(sess.StartTime).Minutes())

	return timeutil.FormatMinutes(mins)
}

func printSessionsTable(w io.Writer, sessions []*models.Session) {
	data := [][]string{
		{"#", "DATE", "TEMPLATE", "SECTIONS", "DURATION", "DELAY"},
	}

	for i, sess := range sessions {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			sess.StartTime.Format(dateFormat),
			sess.TemplateName,
			fmt.Sprintf("%d", len(sess.SectionReports)),
			sessionDuration(sess),
			formatDelay(sess.TotalDelay),
		})
	}

	ui.PrintTable(data, w)
}

func printBreakdownTable(w io.Writer, sess *models.Session) {
	fmt.Fprintln(w, pterm.Sprintf(
		"%s (%s)",
		ui.Highlight(sess.TemplateName),
		sess.StartTime.Format(dateFormat),
	))

	data := [][]string{
		{"SECTION", "STARTED", "PLANNED", "ACTUAL", "VARIANCE"},
	}

	for i := range sess.SectionReports {
		r := sess.SectionReports[i]

		data = append(data, []string{
			r.SectionName,
			r.ActualStartTime.Format("03:04 PM"),
			timeutil.FormatMinutes(r.PlannedDuration),
			timeutil.FormatMinutes(r.ActualDuration),
			formatVariance(r.Variance),
		})
	}

	ui.PrintTable(data, w)
}

// List prints a table of the sessions recorded within the configured time
// range. With breakdown enabled, a per-section table follows for each
// session.
func (r *Report) List(breakdown bool) error {
	sessions, err := r.DB.GetSessions(r.Opts.StartTime, r.Opts.EndTime)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(r.Stdout, sessions)

	if !breakdown {
		return nil
	}

	for _, sess := range sessions {
		if len(sess.SectionReports) == 0 {
			continue
		}

		printBreakdownTable(r.Stdout, sess)
	}

	return nil
}

// Delete removes every session in the configured time range. It asks for
// confirmation before the permanent removal.
func (r *Report) Delete() error {
	sessions, err := r.DB.GetSessions(r.Opts.StartTime, r.Opts.EndTime)
	if err != nil {
		return err
	}

	if len(sessions) == 0 {
		pterm.Info.Println(noSessionsMsg)
		return nil
	}

	printSessionsTable(r.Stdout, sessions)

	warning := pterm.Warning.Sprint(
		"The above sessions will be deleted permanently. Press ENTER to proceed",
	)

	fmt.Fprint(r.Stdout, warning)

	reader := bufio.NewReader(os.Stdin)

	_, _ = reader.ReadString('\n')

	return r.DB.DeleteSessions(sessions)
}

// PrintTemplates prints a table of saved meeting templates.
func PrintTemplates(w io.Writer, templates []*models.Template) {
	data := [][]string{
		{"NAME", "TYPE", "SECTIONS", "TOTAL", "UPDATED"},
	}

	for _, t := range templates {
		name := t.Name
		if t.IsDefault {
			name += " " + ui.Cyan("(built-in)")
		}

		updated := ""
		if !t.LastModified.IsZero() {
			updated = t.LastModified.Format(dateFormat)
		}

		data = append(data, []string{
			name,
			string(t.Type),
			fmt.Sprintf("%d", len(t.Sections)),
			timeutil.FormatMinutes(t.TotalDuration),
			updated,
		})
	}

	ui.PrintTable(data, w)
}

// PrintStatus prints a one-shot summary of a running timer from its
// published status.
func PrintStatus(w io.Writer, templateName string, sectionName string, remaining int, total int, index int, updatedAt time.Time) {
	mins, secs := timeutil.SecsToMinsAndSecs(remaining)

	text := fmt.Sprintf("%02d:%02d remaining", mins, secs)
	if remaining < 0 {
		text = fmt.Sprintf("%02d:%02d over time", mins, secs)
	}

	fmt.Fprintln(w, pterm.Sprintf(
		"%s: %s (%d/%d) [%s]",
		ui.Highlight(templateName),
		sectionName,
		index+1,
		total,
		text,
	))

	fmt.Fprintln(w, pterm.Sprintf(
		"last update %s",
		updatedAt.Format("03:04:05 PM"),
	))
}
