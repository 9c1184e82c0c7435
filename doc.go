// Package main provides the entry point for the default storefront theme service.
// It runs a Fiber web server that lets administrators manage per-store theme
// settings and renders the storefront homepage seeded with the effective settings
// of the requested store. Overrides are persisted with gorm, one row per
// (module, store) pair, and fall back to the theme's static defaults.
package main
