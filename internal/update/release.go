package update

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/digitalec/deemon/internal/messages"
)

// Channel selects which releases are eligible as "latest".
type Channel int

const (
	// ChannelStable considers only the index's stable version.
	ChannelStable Channel = iota
	// ChannelBeta also considers beta and release-candidate versions.
	ChannelBeta
)

func (c Channel) String() string {
	if c == ChannelBeta {
		return "beta"
	}
	return "stable"
}

// ParseChannel converts "stable" or "beta" (case-insensitive) to a Channel.
// An empty string selects the stable channel.
func ParseChannel(raw string) (Channel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "stable":
		return ChannelStable, nil
	case "beta":
		return ChannelBeta, nil
	}
	return ChannelStable, fmt.Errorf(messages.UpdateUnknownChannelFmt, raw)
}

// Kind classifies a release by the pre-release marker in its version.
type Kind int

const (
	// KindStable is any release without a beta or rc marker.
	KindStable Kind = iota
	// KindBeta carries a "b" (or "beta") pre-release marker.
	KindBeta
	// KindReleaseCandidate carries an "rc" (or "c", "pre", "preview") marker.
	KindReleaseCandidate
)

func (k Kind) String() string {
	switch k {
	case KindBeta:
		return "beta"
	case KindReleaseCandidate:
		return "rc"
	default:
		return "stable"
	}
}

// pep440 matches the public and local version forms of PEP 440.
var pep440 = regexp.MustCompile(`(?i)^v?` +
	`(?:(?P<epoch>[0-9]+)!)?` +
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` +
	`(?:[-_.]?(?P<pre_l>alpha|a|beta|b|preview|pre|rc|c)[-_.]?(?P<pre_n>[0-9]+)?)?` +
	`(?:-(?P<post_n1>[0-9]+)|[-_.]?(?P<post_l>post|rev|r)[-_.]?(?P<post_n2>[0-9]+)?)?` +
	`(?:[-_.]?(?P<dev_l>dev)[-_.]?(?P<dev_n>[0-9]+)?)?` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_.][a-z0-9]+)*))?$`)

// Pre-release stages in ascending order.
const (
	stageAlpha = iota
	stageBeta
	stageRC
)

// absent marks a missing pre, post, or dev segment.
const absent = -1

// Release is a parsed version together with its channel classification.
type Release struct {
	// Version holds the numeric release segment, "2.4.0" for "2.4.0b1".
	Version *version.Version
	Kind    Kind

	raw   string
	epoch int
	stage int
	pre   int
	post  int
	dev   int
	local string
}

// ParseRelease parses raw as a PEP 440 version and classifies it. Versions
// such as "2.4.0b1" or "2.4.0-beta.1" are beta releases; "2.4.0rc1" is a
// release candidate. Post ("2.3.0.post1") and development ("2.4.0.dev1")
// releases are stable.
func ParseRelease(raw string) (Release, error) {
	trimmed := strings.TrimSpace(raw)
	m := pep440.FindStringSubmatch(trimmed)
	if m == nil {
		return Release{}, fmt.Errorf(messages.UpdateInvalidVersionFmt, raw, errMalformed)
	}
	group := func(name string) string { return m[pep440.SubexpIndex(name)] }

	base, err := version.NewVersion(group("release"))
	if err != nil {
		return Release{}, fmt.Errorf(messages.UpdateInvalidVersionFmt, raw, err)
	}
	r := Release{
		Version: base,
		raw:     trimmed,
		epoch:   number(group("epoch"), 0),
		stage:   absent,
		pre:     absent,
		post:    absent,
		dev:     absent,
		local:   strings.ToLower(group("local")),
	}
	if label := strings.ToLower(group("pre_l")); label != "" {
		r.stage = stageOf(label)
		r.pre = number(group("pre_n"), 0)
	}
	switch {
	case group("post_n1") != "":
		r.post = number(group("post_n1"), 0)
	case group("post_l") != "":
		r.post = number(group("post_n2"), 0)
	}
	if group("dev_l") != "" {
		r.dev = number(group("dev_n"), 0)
	}
	r.Kind = classify(r.stage)
	return r, nil
}

var errMalformed = errors.New(messages.UpdateMalformedVersion)

func number(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func stageOf(label string) int {
	switch label {
	case "a", "alpha":
		return stageAlpha
	case "b", "beta":
		return stageBeta
	default:
		return stageRC
	}
}

func classify(stage int) Kind {
	switch stage {
	case stageRC:
		return KindReleaseCandidate
	case stageBeta:
		return KindBeta
	default:
		return KindStable
	}
}

// IsPrerelease reports whether r is a beta or release candidate.
func (r Release) IsPrerelease() bool {
	return r.Kind != KindStable
}

// Compare returns -1, 0, or 1 as r is older than, equal to, or newer than
// other. Release segments compare numerically with missing trailing segments
// read as zero; then a development release of a version precedes its
// pre-releases (alpha, beta, rc, each ordered by number), which precede the
// final release, which precedes its post releases.
func (r Release) Compare(other Release) int {
	if c := cmpInt(r.epoch, other.epoch); c != 0 {
		return c
	}
	if c := r.Version.Compare(other.Version); c != 0 {
		return c
	}
	stage, pre := r.preKey()
	otherStage, otherPre := other.preKey()
	if c := cmpInt(stage, otherStage); c != 0 {
		return c
	}
	if c := cmpInt(pre, otherPre); c != 0 {
		return c
	}
	if c := cmpInt(r.postKey(), other.postKey()); c != 0 {
		return c
	}
	if c := cmpInt(r.devKey(), other.devKey()); c != 0 {
		return c
	}
	return strings.Compare(r.local, other.local)
}

func (r Release) preKey() (int, int) {
	switch {
	case r.stage == absent && r.post == absent && r.dev != absent:
		return math.MinInt, 0
	case r.stage == absent:
		return math.MaxInt, 0
	}
	return r.stage, r.pre
}

func (r Release) postKey() int {
	if r.post == absent {
		return math.MinInt
	}
	return r.post
}

func (r Release) devKey() int {
	if r.dev == absent {
		return math.MaxInt
	}
	return r.dev
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// GreaterThan reports whether r is a strictly newer version than other.
func (r Release) GreaterThan(other Release) bool {
	return r.Compare(other) > 0
}

// String returns the version as it appeared in the source document.
func (r Release) String() string {
	return r.raw
}
