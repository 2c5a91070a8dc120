package agentkit

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort        = "Install AI agents, commands and skills into your editors"
	MsgInstallShort     = "Install the kit into an editor"
	MsgUninstallShort   = "Remove installed kit files"
	MsgListShort        = "List installed items and their state"
	MsgStatusShort      = "Show install state per editor"
	MsgEnableShort      = "Enable disabled items"
	MsgDisableShort     = "Disable items without uninstalling them"
	MsgPostinstallShort = "Print getting-started help"
	MsgGenConfigShort   = "Print or write the default settings file"
	MsgVersionShort     = "Print version information"
	MsgCompletionShort  = "Generate shell completion script"
	MsgManShort         = "Generate man pages"

	MsgGenConfigLong = "Print the default settings as TOML, every value commented out.\n\nWith --write, save them to the user settings file unless it already exists."

	// Flag descriptions
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat    = "Output format: auto, term, text or json"
	MsgFlagSource    = "Directory holding the kit (defaults to the bundled kit)"
	MsgFlagGlobal    = "Use the global scope (~/.claude)"
	MsgFlagProject   = "Use the project scope (./.claude)"
	MsgFlagAll       = "Use both the global and the project scope"
	MsgFlagTarget    = "Editor to act on (claude, cursor, windsurf, codex, gemini); repeatable"
	MsgFlagNoSymlink = "Copy files into the global scope instead of linking them"
	MsgFlagDryRun    = "Show what would change without touching anything"
	MsgFlagYes       = "Do not ask for confirmation"
	MsgFlagType      = "Item type: agent, command or skill"
	MsgFlagToggleAll = "Act on every item in the scope"
	MsgFlagWrite     = "Write the settings file instead of printing it"
	MsgFlagManDir    = "Directory to write man pages to"

	// Status messages
	MsgNothingInstalled = "Nothing is installed in the %s scope."
	MsgNothingToToggle  = "Nothing to %s in the %s scope."
	MsgConfirmUninstall = "Remove agentkit files for %s from the %s scope?"
	MsgCancelled        = "Cancelled, nothing changed."
	MsgManWritten       = "Man pages written to %s"

	// Error messages
	MsgErrNameAndAll = "give item names or --all, not both"
	MsgErrScopeFlags = "--global, --project and --all are mutually exclusive"
)

// topicsFS holds the pages served by `agentkit help <topic>`
//
//go:embed msgs/topics
var topicsFS embed.FS

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/install-long.txt
	msgInstallLongRaw string
	MsgInstallLong    = strings.TrimSpace(msgInstallLongRaw)

	//go:embed msgs/install-example.txt
	msgInstallExampleRaw string
	MsgInstallExample    = strings.TrimRight(msgInstallExampleRaw, "\n")

	//go:embed msgs/uninstall-long.txt
	msgUninstallLongRaw string
	MsgUninstallLong    = strings.TrimSpace(msgUninstallLongRaw)

	//go:embed msgs/toggle-long.txt
	msgToggleLongRaw string
	MsgToggleLong    = strings.TrimSpace(msgToggleLongRaw)

	//go:embed msgs/toggle-example.txt
	msgToggleExampleRaw string
	MsgToggleExample    = strings.TrimRight(msgToggleExampleRaw, "\n")

	//go:embed msgs/status-long.txt
	msgStatusLongRaw string
	MsgStatusLong    = strings.TrimSpace(msgStatusLongRaw)

	//go:embed msgs/postinstall.md
	MsgPostinstall string

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)
)
