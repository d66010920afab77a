// Package config loads, validates, and normalizes crtracker configuration.
//
// Configuration lives in a TOML file (default ~/.config/crtracker/config.toml)
// with sections for paths, fetching, the wiki source, merge behavior, and
// logging. Load applies defaults for absent values, expands ~ in paths, and
// validates the result so downstream components can trust every field.
package config
