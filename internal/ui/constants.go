package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
)

// Text fragments
const (
	StatusErrorSeparator = ": "
	ExtensionPlaceholder = "—"
)

// Entry table columns
const (
	ColumnFilename = iota
	ColumnExtension
	ColumnStatus
	ColumnCount
)

// Layout sizing
const (
	ColumnFilenameWidth  float32 = 320
	ColumnExtensionWidth float32 = 90
	ColumnStatusWidth    float32 = 260

	LogoSize float32 = 32

	WindowWidth  float32 = 760
	WindowHeight float32 = 520

	SettingsDialogWidth  float32 = 460
	SettingsDialogHeight float32 = 520
)

// ProgressMax is the progress bar scale
const ProgressMax = 100

// Toast notification behavior
const (
	ToastAutoHide = 4 * time.Second
)
