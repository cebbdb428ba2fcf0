package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/digitalec/deemon/internal/config"
	"github.com/digitalec/deemon/internal/messages"
	"github.com/digitalec/deemon/internal/update"
)

func newCheckCmd() *cobra.Command {
	var channelFlag string

	cmd := &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer func() { _ = s.close() }()

			channel, err := resolveChannel(channelFlag, s.paths.ConfigFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			result, err := newUpdateClient().Check(cmd.Context(), Version, channel)
			if errors.Is(err, update.ErrUnreachable) {
				s.zap.Info("update check skipped", zap.Error(err))
				_, err := fmt.Fprintln(out, messages.CheckUnreachable)
				return err
			}
			if err != nil {
				return err
			}
			s.zap.Info("update check",
				zap.String("channel", channel.String()),
				zap.String("latest", result.Latest),
				zap.Bool("outdated", result.Outdated))

			if _, err := fmt.Fprintf(out, messages.CheckLatestFmt, channel, result.Latest); err != nil {
				return err
			}
			switch {
			case result.CurrentIsDev:
				return nil
			case result.Outdated:
				_, err = fmt.Fprintf(out, messages.CheckOutdatedFmt, result.Latest, result.Current)
			default:
				_, err = fmt.Fprintf(out, messages.CheckUpToDateFmt, result.Current)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&channelFlag, "channel", "", messages.CheckFlagChannel)
	return cmd
}

// resolveChannel prefers an explicit flag value over the configured channel.
func resolveChannel(flag string, configPath string) (update.Channel, error) {
	if flag != "" {
		return update.ParseChannel(flag)
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return update.ChannelStable, err
	}
	return cfg.Channel()
}

func newChangelogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.ChangelogUse,
		Short: messages.ChangelogShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession()
			if err != nil {
				return err
			}
			defer func() { _ = s.close() }()

			out := cmd.OutOrStdout()
			ver := args[0]
			body, err := newUpdateClient().Changelog(cmd.Context(), ver)
			switch {
			case errors.Is(err, update.ErrUnreachable):
				s.zap.Info("changelog lookup skipped", zap.Error(err))
				_, err = fmt.Fprintln(out, messages.ChangelogUnreachable)
			case errors.Is(err, update.ErrChangelogNotFound):
				_, err = fmt.Fprintf(out, messages.ChangelogNotFound, ver)
			case err != nil:
				return err
			default:
				_, err = fmt.Fprintln(out, body)
			}
			return err
		},
	}
}
