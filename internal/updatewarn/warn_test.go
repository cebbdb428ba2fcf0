package updatewarn

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/digitalec/deemon/internal/update"
)

type checkerFunc func(context.Context, string, update.Channel) (update.CheckResult, error)

func (f checkerFunc) Check(ctx context.Context, current string, channel update.Channel) (update.CheckResult, error) {
	return f(ctx, current, channel)
}

func TestWarnIfOutdated_SkipsWhenNoNetworkSet(t *testing.T) {
	t.Setenv(EnvNoNetwork, "1")
	called := 0
	checker := checkerFunc(func(context.Context, string, update.Channel) (update.CheckResult, error) {
		called++
		return update.CheckResult{}, nil
	})

	var stderr bytes.Buffer
	WarnIfOutdated(context.Background(), checker, "1.0.0", update.ChannelStable, &stderr)
	if called != 0 {
		t.Fatalf("expected update check to be skipped, got %d calls", called)
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected no output, got %q", stderr.String())
	}
}

func TestWarnIfOutdated_NilCheckerAndWriter(t *testing.T) {
	t.Setenv(EnvNoNetwork, "")
	WarnIfOutdated(context.Background(), nil, "1.0.0", update.ChannelStable, nil)

	checker := checkerFunc(func(context.Context, string, update.Channel) (update.CheckResult, error) {
		return update.CheckResult{Outdated: true, Latest: "2.0.0", Current: "1.0.0"}, nil
	})
	WarnIfOutdated(context.Background(), checker, "1.0.0", update.ChannelStable, nil)
}

func TestWarnIfOutdated_Outcomes(t *testing.T) {
	t.Setenv(EnvNoNetwork, "")
	cases := []struct {
		name    string
		channel update.Channel
		result  update.CheckResult
		err     error
		want    string
	}{
		{name: "error", err: errors.New("boom"), want: "failed to check for updates"},
		{name: "dev", result: update.CheckResult{CurrentIsDev: true, Latest: "2.0.0"}, want: "running dev build; latest stable release is 2.0.0"},
		{name: "outdated", result: update.CheckResult{Outdated: true, Latest: "2.0.0", Current: "1.0.0"}, want: "pip install --upgrade deemon"},
		{name: "outdated beta", channel: update.ChannelBeta, result: update.CheckResult{Outdated: true, Latest: "2.1.0b1", Current: "2.0.0"}, want: "--pre deemon"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checker := checkerFunc(func(_ context.Context, _ string, channel update.Channel) (update.CheckResult, error) {
				if channel != tc.channel {
					t.Fatalf("expected channel %s, got %s", tc.channel, channel)
				}
				return tc.result, tc.err
			})

			var stderr bytes.Buffer
			WarnIfOutdated(context.Background(), checker, "1.0.0", tc.channel, &stderr)
			if !strings.Contains(stderr.String(), tc.want) {
				t.Fatalf("expected %q in output, got %q", tc.want, stderr.String())
			}
		})
	}
}

func TestWarnIfOutdated_UnreachableProducesNoOutput(t *testing.T) {
	t.Setenv(EnvNoNetwork, "")
	checker := checkerFunc(func(context.Context, string, update.Channel) (update.CheckResult, error) {
		return update.CheckResult{}, fmt.Errorf("fetch index: %w", update.ErrUnreachable)
	})

	var stderr bytes.Buffer
	WarnIfOutdated(context.Background(), checker, "1.0.0", update.ChannelStable, &stderr)
	if stderr.Len() != 0 {
		t.Fatalf("expected no output when unreachable, got %q", stderr.String())
	}
}

func TestWarnIfOutdated_UpToDateProducesNoOutput(t *testing.T) {
	t.Setenv(EnvNoNetwork, "")
	checker := checkerFunc(func(context.Context, string, update.Channel) (update.CheckResult, error) {
		return update.CheckResult{Latest: "1.0.0", Current: "1.0.0"}, nil
	})

	var stderr bytes.Buffer
	WarnIfOutdated(context.Background(), checker, "1.0.0", update.ChannelStable, &stderr)
	if stderr.Len() != 0 {
		t.Fatalf("expected no output, got %q", stderr.String())
	}
}
