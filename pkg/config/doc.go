// Package config loads the settings of syndock-migrate itself.
//
// Values are layered with koanf, lowest precedence first:
//
//  1. embedded defaults (embedded/defaults.toml) and the computed backup dir
//  2. an optional config file: --config, or the first existing of
//     $XDG_CONFIG_HOME/syndock/migrate.{toml,yaml,yml}
//  3. SYNDOCK_MIGRATE_* environment variables
//
// Command-line flags are applied on top by the CLI.
package config
