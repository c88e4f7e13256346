package types

// BackupStatus describes what happened to the pre-migration backup
type BackupStatus string

const (
	BackupCreated BackupStatus = "created"
	BackupFailed  BackupStatus = "failed"
	BackupSkipped BackupStatus = "skipped" // --no-backup
	BackupDryRun  BackupStatus = "dry-run" // dry runs never write
)

// SettingsOutcome describes the result of the settings migration
type SettingsOutcome string

const (
	SettingsMigrated SettingsOutcome = "migrated"
	SettingsSkipped  SettingsOutcome = "skipped" // no lattedockrc
	SettingsDryRun   SettingsOutcome = "dry-run"
	SettingsFailed   SettingsOutcome = "failed"
)

// OK reports whether the settings stage counts as successful
func (o SettingsOutcome) OK() bool {
	return o != SettingsFailed
}

// FileFailure records a single layout that could not be migrated
type FileFailure struct {
	Name string
	Err  error
}

// LayoutReport is the result of migrating every layout of a run
type LayoutReport struct {
	// Found is the number of *.layout.latte files enumerated
	Found int

	// Migrated is the number of layouts migrated successfully
	Migrated int

	Failures []FileFailure
}

// Summary is the outcome of a complete run
type Summary struct {
	SourceRoot string
	DestRoot   string
	DryRun     bool

	Backup     BackupStatus
	BackupPath string
	BackupErr  error

	Layouts LayoutReport

	Settings    SettingsOutcome
	SettingsErr error
}
