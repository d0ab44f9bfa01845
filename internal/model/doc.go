package model

// Package model defines domain data structures used across the app: selected
// file entries, their conversion status, and the supported target formats.
// Structures are designed for direct rendering in the UI and explicit,
// one-way status transitions within a conversion run.
