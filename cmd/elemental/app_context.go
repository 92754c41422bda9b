package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/elemental/internal/config"
	"github.com/alexisbeaulieu97/elemental/internal/data"
	"github.com/alexisbeaulieu97/elemental/internal/i18n"
	"github.com/alexisbeaulieu97/elemental/internal/logger"
	"github.com/alexisbeaulieu97/elemental/internal/table"
)

// AppContext bundles long-lived services created before a command runs.
type AppContext struct {
	Log      *logger.Logger
	Settings *config.Settings
	Registry *table.Registry
}

func (app *AppContext) setup(cmd *cobra.Command, flags *rootFlags) error {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return newCommandError("start", "creating logger", err, "Report this as a bug.")
	}
	app.Log = log

	settings, err := config.Load(flags.configPath)
	if err != nil {
		path := flags.configPath
		if path == "" {
			path = config.DefaultPath()
		}
		return newCommandError("start", "loading settings from "+path, err, "Fix the settings file or remove it to use the defaults.")
	}
	app.Settings = settings

	lang := settings.Language
	if flags.lang != "" {
		lang = flags.lang
	}
	loc, err := i18n.Parse(lang)
	if err != nil {
		return newCommandError("start", "selecting the display language", err, "Use a BCP 47 tag such as en or de.")
	}

	records, err := data.Load()
	if err != nil {
		return newCommandError("start", "loading the element table", err, "The embedded table is damaged; rebuild elemental.")
	}

	app.Registry = table.New(records,
		table.WithLocalizer(loc),
		table.WithLogger(log.WithFields(map[string]any{"component": "table"})),
	)
	log.WithFields(map[string]any{
		"command":  cmd.Name(),
		"language": loc.Language().String(),
	}).Debug("application ready")
	return nil
}

// useColor resolves the color setting for w.
func (app *AppContext) useColor(w io.Writer) bool {
	return app.Settings.UseColor(isTerminal(w))
}

func isTerminal(writer any) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
