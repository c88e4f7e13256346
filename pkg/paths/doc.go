// Package paths resolves every location the migration touches.
//
// Paths are computed once from the environment and then passed around as
// an explicit *Paths value; nothing else in the codebase reads environment
// variables for locations.
//
// # Environment Variables
//
//   - XDG_CONFIG_HOME: parent of both configuration roots (default: ~/.config)
//   - HOME: user home, used for the config and backup defaults
//   - XDG_STATE_HOME: parent of the migration log (default: ~/.local/state)
//
// # Layout
//
//	$XDG_CONFIG_HOME/latte/lattedockrc
//	$XDG_CONFIG_HOME/latte/layouts/*.layout.latte
//	$XDG_CONFIG_HOME/syndock/syndockrc
//	$XDG_CONFIG_HOME/syndock/layouts/*.layout.syndock
//	~/.local/share/syndock/backups/latte_backup_<timestamp>/
//
// # Usage
//
//	p := paths.FromEnvironment()
//	src := p.LatteRoot()   // /home/user/.config/latte
//	dst := p.SynDockRoot() // /home/user/.config/syndock
package paths
