package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/studyflow/studyflow/internal/cli"
	"github.com/studyflow/studyflow/internal/constants"
	"github.com/studyflow/studyflow/internal/errors"
	"github.com/studyflow/studyflow/internal/logger"
	"github.com/studyflow/studyflow/internal/storage"
	"github.com/studyflow/studyflow/internal/timeutil"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." type:"path" default:"${config_path}"`
	Debug   bool   `help:"Enable debug logging."`

	Init    cli.InitCmd    `cmd:"" help:"Initialize studyflow storage."`
	Tui     cli.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add     cli.AddCmd     `cmd:"" help:"Add a study session."`
	Edit    cli.EditCmd    `cmd:"" help:"Edit an existing session."`
	Delete  cli.DeleteCmd  `cmd:"" help:"Delete a session."`
	Clear   cli.ClearCmd   `cmd:"" help:"Remove all sessions."`
	Day     cli.DayCmd     `cmd:"" help:"Show a day's sessions and stats."`
	Week    cli.WeekCmd    `cmd:"" help:"Show weekly workload stats."`
	Today   cli.TodayCmd   `cmd:"" help:"Show today's sessions."`
	Free    cli.FreeCmd    `cmd:"" help:"Suggest free time slots."`
	Courses cli.CoursesCmd `cmd:"" help:"List course names."`
	Sample  cli.SampleCmd  `cmd:"" help:"Load sample data into an empty store."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Weekly study-session planner"),
		kong.UsageOnError(),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(CLI.Config),
	}); err != nil {
		errors.Fatal(err)
	}

	// JSON or SQLite provider, chosen by config extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
		Clock: timeutil.SystemClock{},
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}
