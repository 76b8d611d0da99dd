// Package config loads and validates the TOML configuration for the seqq
// tool.
//
// Configuration resolves from an explicit --config path, then
// ~/.config/seqq/config.toml, then a seqq.toml in the working directory. A
// missing file is not an error; defaults apply. All path fields come back
// expanded and normalized.
package config
