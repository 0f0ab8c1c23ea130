// Package file provides a TOML-backed configuration store kept in the
// user's ragchat directory.
package file
