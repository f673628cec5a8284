// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Interactive Prompt - these keys configure the mini read-eval-print loop.
const (
	MiniPrompt  = "mini.prompt"
	MiniShowLen = "mini.show_len"
)

// Inline Mode - these keys define defaults for non-interactive script execution.
const (
	InlineJson = "inline.json"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern the command-line presentation.
const (
	CliColored = "cli.colored"
)
