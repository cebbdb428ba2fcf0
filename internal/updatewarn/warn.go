package updatewarn

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/digitalec/deemon/internal/messages"
	"github.com/digitalec/deemon/internal/update"
)

// EnvNoNetwork disables update checks when set to any non-empty value.
const EnvNoNetwork = "DEEMON_NO_NETWORK"

// Checker compares the running version against the latest release.
type Checker interface {
	Check(ctx context.Context, currentVersion string, channel update.Channel) (update.CheckResult, error)
}

// WarnIfOutdated emits update warnings to stderr when a newer release is available.
// It is a best-effort warning and never returns an error. An unreachable
// package index produces no output.
func WarnIfOutdated(ctx context.Context, checker Checker, currentVersion string, channel update.Channel, stderr io.Writer) {
	if strings.TrimSpace(os.Getenv(EnvNoNetwork)) != "" {
		return
	}
	if checker == nil {
		return
	}
	if stderr == nil {
		stderr = io.Discard
	}

	warnColor := color.New(color.FgYellow)
	result, err := checker.Check(ctx, currentVersion, channel)
	if err != nil {
		if errors.Is(err, update.ErrUnreachable) {
			return
		}
		_, _ = warnColor.Fprintf(stderr, messages.WarnUpdateCheckFailedFmt, err)
		return
	}
	if result.CurrentIsDev {
		_, _ = warnColor.Fprintf(stderr, messages.WarnDevBuildFmt, channel, result.Latest)
		return
	}
	if result.Outdated {
		block := messages.UpdateUpgradeBlock
		if channel == update.ChannelBeta {
			block = messages.UpdateUpgradeBetaBlock
		}
		_, _ = warnColor.Fprintf(stderr, messages.WarnUpdateAvailableFmt, result.Latest, result.Current, block)
	}
}
