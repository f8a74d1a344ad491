package binlink

// Short messages (one-liners)
const (
	MsgRootUse   = "binlink"
	MsgRootShort = "Link the executables of installed dependencies into node_modules/.bin"
	MsgUsage     = "Usage: binlink [options]"
	MsgBanner    = "%s@%s\n\n"

	// Flag descriptions
	MsgFlagOverwrite = "Replace entries that already exist in the bin directory"
	MsgFlagDryRun    = "Show what would be linked without touching the filesystem"
	MsgFlagDir       = "Project directory to link (default is the current directory)"
	MsgFlagNoColor   = "Disable colored output"
	MsgFlagVerbose   = "Increase log verbosity (--verbose INFO, twice DEBUG, three times TRACE)"
	MsgFlagHelp      = "Show this help"
	MsgFlagVersion   = "Print the version"

	// Help table
	MsgHelpOption      = "OPTION"
	MsgHelpDescription = "DESCRIPTION"

	// Error messages
	MsgErrWorkingDir   = "failed to determine working directory: %w"
	MsgErrProjectDir   = "failed to resolve project directory: %w"
	MsgErrUnknownShell = "unknown shell %q (supported: %s)"
)

// MsgVersionTemplate prints the bare version, plus build details under --verbose
const MsgVersionTemplate = "{{.Version}}\n{{buildInfo .}}"

// MsgBuildInfo formats the commit and build date
const MsgBuildInfo = "commit: %s\nbuilt:  %s\n"
