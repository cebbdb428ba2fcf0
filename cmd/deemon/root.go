package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/digitalec/deemon/internal/appdata"
	"github.com/digitalec/deemon/internal/logging"
	"github.com/digitalec/deemon/internal/messages"
	"github.com/digitalec/deemon/internal/terminal"
	"github.com/digitalec/deemon/internal/update"
)

// Seams replaced in tests.
var (
	newSystem       = func() appdata.System { return appdata.RealSystem{} }
	newUpdateClient = update.NewClient
	isTerminal      = terminal.IsInteractive
)

var debugLogging bool

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolVar(&debugLogging, "debug", false, messages.RootFlagDebug)
	cmd.AddCommand(
		newPathsCmd(),
		newInitCmd(),
		newResetCmd(),
		newCheckCmd(),
		newChangelogCmd(),
	)
	return cmd
}

// session is the per-command view of the data directory and its log file.
type session struct {
	paths appdata.Paths
	zap   *zap.Logger
	close func() error
}

// openSession makes sure the data directory exists and opens today's log file.
func openSession() (*session, error) {
	sys := newSystem()
	paths := appdata.Resolve(sys)
	if err := appdata.Init(sys, paths.Dir); err != nil {
		return nil, err
	}
	level := zapcore.InfoLevel
	if debugLogging {
		level = zapcore.DebugLevel
	}
	logger, closeFn, err := logging.Open(paths.LogFile, level)
	if err != nil {
		return nil, err
	}
	return &session{paths: paths, zap: logger, close: closeFn}, nil
}
