// Package sqlite provides SQLite-backed persistence for conversation
// history, used when the history backend is set to "sqlite".
package sqlite
