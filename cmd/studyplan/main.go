package main

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/studyplanhq/studyplan-cli/internal/api"
	"github.com/studyplanhq/studyplan-cli/internal/cli"
	"github.com/studyplanhq/studyplan-cli/internal/constants"
	"github.com/studyplanhq/studyplan-cli/internal/errors"
	"github.com/studyplanhq/studyplan-cli/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Server  string `help:"Base URL of the planning service." env:"STUDYPLAN_SERVER" default:"${server}"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Tui      cli.TuiCmd      `cmd:"" help:"Launch the interactive planner." default:"1"`
	Generate cli.GenerateCmd `cmd:"" help:"Generate a study plan and print it."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Terminal client for the Study Planner service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"server":  constants.DefaultServerURL,
		},
	)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: configDir(),
	}); err != nil {
		errors.Fatal(err)
	}

	appCtx := &cli.Context{
		Client: api.New(CLI.Server, http.DefaultClient),
	}

	if err := ctx.Run(appCtx); err != nil {
		errors.Fatal(err)
	}
}

func configDir() string {
	path := constants.DefaultConfigPath
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}
	return path
}
