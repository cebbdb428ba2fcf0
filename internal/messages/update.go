package messages

// Update and changelog messages.
const (
	// UpdateUnreachable is the text of update.ErrUnreachable.
	UpdateUnreachable          = "remote endpoint unreachable"
	UpdateChangelogNotFound    = "changelog not found"
	UpdateCreateRequestErrFmt  = "create request for %s: %w"
	UpdateUnreachableFmt       = "fetch %s: %w: %w"
	UpdateFetchStatusFmt       = "fetch %s: unexpected status %s"
	UpdateDecodeIndexErrFmt    = "decode package index: %w"
	UpdateDecodeReleasesErrFmt = "decode release list: %w"
	UpdateIndexMissingVersion  = "package index missing info.version"
	UpdateInvalidStableFmt     = "invalid stable version %q: %w"
	UpdateInvalidVersionFmt    = "invalid version %q: %w"
	UpdateInvalidCurrentFmt    = "invalid current version %q: %w"
	UpdateMalformedVersion     = "not a PEP 440 version"
	UpdateUnknownChannelFmt    = "unknown release channel %q (expected stable or beta)"
)
