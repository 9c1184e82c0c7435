// Package modulesettings resolves and edits per-store module settings.
//
// A module declares its settings as a Go struct with JSON tags and a function
// returning the defaults. Stores may override any subset of those keys; the
// sparse override is persisted in the installed_modules table and merged over
// the defaults on every read, so keys added to the defaults later reach every
// store automatically. Override keys the struct no longer knows are dropped on
// read and rejected on write.
package modulesettings
