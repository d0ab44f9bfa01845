package ui

// Package ui contains the Fyne-based desktop user interface for the converter.
// It wires user interactions to the conversion session and renders the entry
// table, progress, conflict prompts and settings. All UI strings are
// localized via Localization.
