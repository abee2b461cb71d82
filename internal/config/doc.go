// Package config handles configuration loading and merging for pick.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to
// lowest priority):
//
//  1. CLI flags (--winners, --seed, --theme, --no-color, etc.)
//  2. Environment variables (PICK_NO_COLOR, NO_COLOR, PICK_CI, CI)
//  3. YAML config file (.pick.yaml in local directory or
//     ~/.config/pick/.pick.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any
// lower-priority values.
//
// # Key Configuration Options
//
//   - MinMentions: how many other users an entry must tag to be valid
//   - Winners: how many winners a draw selects
//   - HighVolumeThreshold: valid-entry count above which a user is
//     flagged for manual spam review
//   - Seed: fixed random seed for reproducible, auditable draws
//   - Theme: visual theme (default, orca, mono)
//
// # CI Mode Behavior
//
// When CI mode is enabled (via --ci flag, CI=true env var, or ci: true
// in YAML):
//   - Colors are disabled (mono theme)
//   - The interactive winner reveal is disabled
//   - Output is optimized for log file readability
package config
