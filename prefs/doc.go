// Package prefs implements a small key/value preferences store that can be
// bound to live configuration values and persisted to disk in a simple,
// human-editable format. It is used to remember driver settings (the
// cartridge mapping override and the PNG dump scale factor) across runs.
package prefs
