package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/digitalec/deemon/internal/appdata"
	"github.com/digitalec/deemon/internal/config"
	"github.com/digitalec/deemon/internal/logging"
	"github.com/digitalec/deemon/internal/messages"
	"github.com/digitalec/deemon/internal/updatewarn"
)

func newInitCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   messages.InitUse,
		Short: messages.InitShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer func() { _ = s.close() }()

			if err := ensureConfig(s.paths.ConfigFile); err != nil {
				return err
			}
			s.zap.Info("application data directory ready", zap.String("path", s.paths.Dir))
			if !quiet {
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), messages.InitDoneFmt, s.paths.Dir); err != nil {
					return err
				}
			}

			cfg, err := config.Load(s.paths.ConfigFile)
			if err != nil {
				return err
			}
			if !cfg.CheckUpdate {
				return nil
			}
			channel, err := cfg.Channel()
			if err != nil {
				return err
			}
			updatewarn.WarnIfOutdated(cmd.Context(), newUpdateClient(), Version, channel, cmd.ErrOrStderr())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, messages.InitFlagQuiet)
	return cmd
}

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   messages.ResetUse,
		Short: messages.ResetShort,
		Long:  messages.ResetLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys := newSystem()
			dir := appdata.Dir(sys)

			if !yes {
				if !isTerminal() {
					return errors.New(messages.ResetRequiresTerminal)
				}
				ok, err := promptYesNo(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf(messages.ResetPromptFmt, dir), false)
				if err != nil {
					return err
				}
				if !ok {
					_, err := fmt.Fprintln(cmd.OutOrStdout(), messages.ResetAborted)
					return err
				}
			}

			console := logging.Console(cmd.ErrOrStderr(), zapcore.InfoLevel)
			if err := appdata.Reinit(sys, logging.FromZap(console), dir); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), messages.ResetDoneFmt, dir)
			return err
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, messages.ResetFlagYes)
	return cmd
}

// ensureConfig writes a default config.json when none exists.
func ensureConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return config.Save(path, config.Default())
}

// promptYesNo asks a yes/no question and returns the user's choice or an error.
// defaultYes controls the result when the user provides an empty response.
func promptYesNo(in io.Reader, out io.Writer, prompt string, defaultYes bool) (bool, error) {
	reader := bufio.NewReader(in)
	for {
		format := messages.PromptNoDefaultFmt
		if defaultYes {
			format = messages.PromptYesDefaultFmt
		}
		if _, err := fmt.Fprintf(out, format, prompt); err != nil {
			return false, err
		}
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		response := strings.TrimSpace(line)
		if response == "" {
			if errors.Is(err, io.EOF) {
				return false, nil
			}
			return defaultYes, nil
		}
		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		if errors.Is(err, io.EOF) {
			return false, fmt.Errorf(messages.PromptInvalidResponse, response)
		}
		if _, err := fmt.Fprintln(out, messages.PromptRetryYesNo); err != nil {
			return false, err
		}
	}
}
