package output

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/syndromatic/syndock-migrate/pkg/errors"
	"github.com/syndromatic/syndock-migrate/pkg/types"
)

// SummaryRows returns the label/value rows of the summary table
func SummaryRows(s *types.Summary) [][]string {
	rows := [][]string{
		{"Layouts migrated", strconv.Itoa(s.Layouts.Migrated)},
	}
	if n := len(s.Layouts.Failures); n > 0 {
		rows = append(rows, []string{"Layouts failed", strconv.Itoa(n)})
	}

	settings := SuccessMarker
	if !s.Settings.OK() {
		settings = FailureMarker
	}
	rows = append(rows, []string{"Settings migrated", fmt.Sprintf("%s %s", settings, s.Settings)})

	switch s.Backup {
	case types.BackupCreated:
		rows = append(rows, []string{"Backup", s.BackupPath})
	case types.BackupFailed:
		rows = append(rows, []string{"Backup", FailureMarker + " failed"})
	default:
		rows = append(rows, []string{"Backup", string(s.Backup)})
	}

	return rows
}

// Summary prints the end-of-run report
func (p *Printer) Summary(s *types.Summary) {
	p.Section("Migration Summary")

	data := pterm.TableData{{"Stage", "Result"}}
	data = append(data, SummaryRows(s)...)

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		// Fall back to plain lines; the summary must always be shown.
		for _, row := range data[1:] {
			p.println(fmt.Sprintf("  %s: %s", row[0], row[1]))
		}
	} else {
		p.println(table)
	}

	for _, failure := range s.Layouts.Failures {
		p.println(p.styles.muted.Render(fmt.Sprintf("  %s %s: %v", FailureMarker, failure.Name, errors.Cause(failure.Err))))
	}

	p.println("")
	if s.DryRun {
		p.DryRun("This was a DRY RUN. No changes were made.")
		p.Info("   Remove --dry-run to perform the actual migration.")
		return
	}
	p.Success("Migration complete!")
	p.Info("   SynDock configs are now in: %s", p.styles.path.Render(s.DestRoot))
}
