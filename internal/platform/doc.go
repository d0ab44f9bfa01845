package platform

// Package platform contains OS integration helpers: filesystem checks,
// image folder scanning and opening or revealing files with the desktop.
