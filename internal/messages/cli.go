package messages

// CLI messages for user-facing commands and prompts.
const (
	// RootUse is the CLI command name.
	RootUse = "deemon"
	// RootShort is the short description for the root command.
	RootShort     = "Manage deemon application data and check for updates"
	RootFlagDebug = "Write debug entries to the log file"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// PathsUse is the paths command name.
	PathsUse       = "paths"
	PathsShort     = "Show where deemon keeps its data"
	PathsLineFmt   = "%-9s %s\n"
	PathsRootLabel = "root:"
	PathsDirLabel  = "data:"
	PathsConfig    = "config:"
	PathsDatabase  = "database:"
	PathsLogFile   = "log:"
	PathsBackups   = "backups:"

	// InitUse is the init command name.
	InitUse        = "init"
	InitShort      = "Create the application data directory if it is missing"
	InitDoneFmt    = "Application data directory ready at %s\n"
	InitFlagQuiet  = "Suppress output on success"
	ResetUse       = "reset"
	ResetShort     = "Delete and recreate the application data directory"
	ResetLong      = "Delete the application data directory (config, database, logs, backups) and create an empty one."
	ResetFlagYes   = "Reset without prompting"
	ResetPromptFmt = "Delete everything under %s?"
	ResetAborted   = "Reset aborted."
	ResetDoneFmt   = "Application data directory reset at %s\n"

	ResetRequiresTerminal = "reset prompts require an interactive terminal; re-run with --yes to reset without prompts"

	// CheckUse is the check command name.
	CheckUse             = "check"
	CheckShort           = "Show the latest available deemon version"
	CheckFlagChannel     = "Release channel to check (stable or beta)"
	CheckLatestFmt       = "Latest %s version: %s\n"
	CheckOutdatedFmt     = "Update available: %s (current %s)\n"
	CheckUpToDateFmt     = "deemon %s is up to date\n"
	CheckUnreachable     = "Unable to reach the package index; skipping update check."
	ChangelogUse         = "changelog <version>"
	ChangelogShort       = "Show the release notes for a version"
	ChangelogNotFound    = "Changelog for v%s was not found.\n"
	ChangelogUnreachable = "Unable to reach GitHub API"

	// PromptYesDefaultFmt formats yes/no prompts with yes as default.
	PromptYesDefaultFmt   = "%s [Y/n]: "
	PromptNoDefaultFmt    = "%s [y/N]: "
	PromptInvalidResponse = "invalid response %q"
	PromptRetryYesNo      = "Please enter y or n."

	// WarnUpdateCheckFailedFmt is printed when the update check fails for a reason other than connectivity.
	WarnUpdateCheckFailedFmt = "Warning: failed to check for updates: %v\n"
	WarnDevBuildFmt          = "Warning: running dev build; latest %s release is %s\n"
	UpdateUpgradeBlock       = "Upgrade:\n  pip install --upgrade deemon"
	UpdateUpgradeBetaBlock   = "Upgrade:\n  pip install --upgrade --pre deemon"
	WarnUpdateAvailableFmt   = "Warning: update available: %s (current %s)\n\n%s\n"
)
