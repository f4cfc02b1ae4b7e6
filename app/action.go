package app

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	bolt "go.etcd.io/bbolt"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/franciscoj/podium/config"
	"github.com/franciscoj/podium/internal/ui"
	"github.com/franciscoj/podium/meeting"
	"github.com/franciscoj/podium/report"
	"github.com/franciscoj/podium/store"
	"github.com/franciscoj/podium/timer"
)

const (
	envNoColor       = "NO_COLOR"
	envPodiumNoColor = "PODIUM_NO_COLOR"
)

var errTemplateNameRequired = errors.New(
	"the name or ID of a template is required",
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

// initLogger routes the default slog logger to a rotated JSON log file so
// the TUI never shares the terminal with log output.
func initLogger() {
	logger := slog.New(slog.NewJSONHandler(&lumberjack.Logger{
		Filename:   config.LogFilePath(),
		MaxSize:    5,
		MaxBackups: 3,
		Compress:   true,
	}, nil))

	slog.SetDefault(logger)
}

// appConfig loads the program configuration from the config file and the
// command-line flags.
func appConfig(ctx *cli.Context) (*config.Config, error) {
	cfg, err := config.New(
		config.WithViperConfig(config.FilePath()),
		config.WithCLIConfig(ctx),
	)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Settings.DarkTheme

	return cfg, nil
}

// catalogHelper opens the database and returns a seeded template catalog.
func catalogHelper() (*meeting.Catalog, store.DB, error) {
	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	catalog := meeting.NewCatalog(db)

	if err := catalog.Seed(); err != nil {
		_ = db.Close()
		return nil, nil, err
	}

	return catalog, db, nil
}

func sessionHelper(ctx *cli.Context) (*report.Report, store.DB, error) {
	filter, err := config.Filter(ctx)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	r := &report.Report{
		DB:     db,
		Opts:   *filter,
		Stdout: os.Stdout,
	}

	return r, db, nil
}

// defaultAction runs the operator console with the selected meeting
// template.
func defaultAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	catalog, db, err := catalogHelper()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	tmpl, err := catalog.Find(firstNonEmptyString(
		ctx.String("template"),
		cfg.Settings.DefaultTemplate,
	))
	if err != nil {
		return err
	}

	engine := timer.New(
		cfg.Gate(ctx.String("user")),
		timer.NewRecorder(db),
		timer.WithTwentyFourHour(cfg.Settings.TwentyFourHour),
	)

	if err := engine.SelectTemplate(tmpl); err != nil {
		return err
	}

	slog.Info("starting operator console",
		slog.String("template", tmpl.Name),
		slog.String("version", config.Version),
	)

	return timer.NewConsole(engine, cfg).Run()
}

// speakerAction opens the detached speaker display.
func speakerAction(ctx *cli.Context) error {
	cfg, err := appConfig(ctx)
	if err != nil {
		return err
	}

	monitor, err := timer.NewMonitor(cfg)
	if err != nil {
		return err
	}

	return monitor.Run()
}

// templatesAction prints a table of the saved meeting templates.
func templatesAction(_ *cli.Context) error {
	catalog, db, err := catalogHelper()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	templates, err := catalog.List()
	if err != nil {
		return err
	}

	report.PrintTemplates(os.Stdout, templates)

	return nil
}

// newTemplateAction creates a meeting template through an interactive
// form.
func newTemplateAction(_ *cli.Context) error {
	catalog, db, err := catalogHelper()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	tmpl, err := catalog.Prompt()
	if err != nil {
		return err
	}

	pterm.Success.Printfln("template %q saved", tmpl.Name)

	return nil
}

// deleteTemplateAction deletes the named template.
func deleteTemplateAction(ctx *cli.Context) error {
	name := ctx.Args().First()
	if name == "" {
		return errTemplateNameRequired
	}

	catalog, db, err := catalogHelper()
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	if err := catalog.Delete(name); err != nil {
		return err
	}

	pterm.Success.Printfln("template %q deleted", name)

	return nil
}

// historyAction prints the sessions recorded within a time period.
func historyAction(ctx *cli.Context) error {
	r, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	return r.List(ctx.Bool("breakdown"))
}

// deleteAction deletes the sessions recorded within a time period.
func deleteAction(ctx *cli.Context) error {
	r, db, err := sessionHelper(ctx)
	if err != nil {
		return err
	}

	defer func() {
		_ = db.Close()
	}()

	return r.Delete()
}

// statusAction prints the status of a running timer. The database can only
// be opened while no other podium process holds it, which doubles as the
// liveness probe.
func statusAction(_ *cli.Context) error {
	db, err := bolt.Open(config.DBFilePath(), 0o600, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	// This means podium is not running, so there is no status to report
	if err == nil {
		_ = db.Close()

		pterm.Info.Println("the podium timer is not running")

		return nil
	}

	status, err := timer.ReadStatusFile()
	if err != nil {
		if os.IsNotExist(err) {
			pterm.Info.Println("the podium timer is not running")
			return nil
		}

		return err
	}

	report.PrintStatus(
		os.Stdout,
		status.TemplateName,
		status.State.CurrentSection.Name,
		status.State.SectionRemaining(),
		len(status.Sections),
		status.State.CurrentSectionIndex,
		status.UpdatedAt,
	)

	return nil
}

// editConfigAction opens the podium config file in the user's default text
// editor.
func editConfigAction(_ *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == "windows" {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	cmd := exec.Command(editor, config.FilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	config.InitializePaths()

	initLogger()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/franciscoj/podium/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if PODIUM_NO_COLOR is set
	if _, exists := os.LookupEnv(envPodiumNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}
