package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/evanmtb/ticklist/internal/cli"
	"github.com/evanmtb/ticklist/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage file path." type:"path" default:"~/.config/ticklist/ticklist.json"`

	Init    cli.InitCmd   `cmd:"" help:"Initialize ticklist storage."`
	Tui     cli.TuiCmd    `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Add     cli.AddCmd    `cmd:"" help:"Add a new climb."`
	List    cli.ListCmd   `cmd:"" help:"List climbs."`
	Show    cli.ShowCmd   `cmd:"" help:"Show a climb and its attempt history."`
	Edit    cli.EditCmd   `cmd:"" help:"Edit a climb."`
	Delete  cli.DeleteCmd `cmd:"" help:"Delete a climb and all its attempts."`
	Attempt struct {
		Add    cli.AttemptAddCmd    `cmd:"" help:"Log an attempt session."`
		Delete cli.AttemptDeleteCmd `cmd:"" help:"Delete a logged attempt."`
		List   cli.AttemptListCmd   `cmd:"" help:"List a climb's attempts."`
	} `cmd:"" help:"Manage attempts."`
	Backup struct {
		Create  cli.BackupCreateCmd  `cmd:"" help:"Create a backup of the log."`
		List    cli.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore cli.BackupRestoreCmd `cmd:"" help:"Restore the log from a backup."`
	} `cmd:"" help:"Manage backups."`
	Doctor cli.DoctorCmd `cmd:"" help:"Run health checks on the log."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ticklist"),
		kong.Description("Personal climbing log"),
		kong.UsageOnError(),
		kong.Vars{"version": "v0.1.0"},
	)

	// Determine storage type based on extension
	var store storage.Provider
	if strings.HasSuffix(CLI.Config, ".json") {
		store = storage.NewJSONStore(CLI.Config)
	} else {
		store = storage.NewSQLiteStore(CLI.Config)
	}
	defer store.Close()

	appCtx := &cli.Context{
		Store: store,
	}

	err := ctx.Run(appCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
