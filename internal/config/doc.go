// Package config loads, normalizes, and validates srtedit configuration.
//
// Settings come from a TOML file (the --config flag, then
// ~/.config/srtedit/config.toml, then ./srtedit.toml) layered over built-in
// defaults. SRTEDIT_ENCODING overrides the input encoding. Command-line flags
// are applied by the caller after Load returns.
package config
