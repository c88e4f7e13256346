package cli

// Command descriptions
const (
	MsgRootShort = "Migrate Latte Dock configuration to SynDock"
	MsgRootLong  = `syndock-migrate copies your Latte Dock layouts and global settings into
SynDock's configuration directory, rewriting Latte identifiers to their
SynDock equivalents. Your Latte configuration is backed up first and is
never modified.`
	MsgRootExample = `  # Preview what would be migrated
  syndock-migrate --dry-run

  # Migrate, keeping the backup somewhere else
  syndock-migrate --backup-dir ~/dock-backups

  # Migrate without a backup
  syndock-migrate --no-backup`

	MsgVersionShort = "Print version information"
	MsgVersionLong  = "Print detailed version information including commit hash and build date"
)

// Version output
const (
	MsgVersionFormat = "syndock-migrate version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"
)

// Flag descriptions
const (
	MsgFlagVerbose   = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun    = "Show what would be done without making changes"
	MsgFlagBackupDir = "Directory for backups (default: ~/.local/share/syndock/backups)"
	MsgFlagNoBackup  = "Skip backup creation"
	MsgFlagConfig    = "Config file (default: ~/.config/syndock/migrate.toml)"
	MsgFlagNoColor   = "Disable colored output"
)
