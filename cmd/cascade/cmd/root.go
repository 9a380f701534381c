// Package cmd implements the cascade CLI commands.
//
// The root command loads configuration and logging once; subcommands
// register themselves from init and share the loaded state through app.
package cmd

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-drift/cascade/cmd/cascade/internal/config"
	"github.com/go-drift/cascade/pkg/logging"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// app is the state shared by all commands of one invocation.
type app struct {
	verbosity  int
	configPath string

	cfg *config.Config
	log zerolog.Logger
}

// Commands registered with the CLI.
var commands []func(*app) *cobra.Command

// registerCommand adds a command constructor. Constructors run once per
// root command so tests get fresh flag state.
func registerCommand(fn func(*app) *cobra.Command) {
	commands = append(commands, fn)
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:   "cascade",
		Short: "Inspect style sheets with the cascade engine",
		Long: `cascade loads a style sheet, binds it to the widget tree the sheet
describes and reports how properties resolve, which cache flags hold,
how expensive a state change is and how transitions interpolate.

Use "cascade <command> --help" for more information about a command.`,
		Version: fmt.Sprintf("%s (built %s)", Version, BuildTime),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.SetupLoggerTo(cmd.ErrOrStderr(), cfg.Log.Verbosity+a.verbosity)
			a.log = logging.GetLogger("cli")
			a.log.Debug().Str("command", cmd.Name()).Msg("Command started")
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default is ./"+config.DefaultFile+" when present)")

	for _, fn := range commands {
		root.AddCommand(fn(a))
	}
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}
