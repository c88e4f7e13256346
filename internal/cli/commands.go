package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/syndromatic/syndock-migrate/internal/version"
	"github.com/syndromatic/syndock-migrate/pkg/config"
	"github.com/syndromatic/syndock-migrate/pkg/errors"
	"github.com/syndromatic/syndock-migrate/pkg/filesystem"
	"github.com/syndromatic/syndock-migrate/pkg/logging"
	"github.com/syndromatic/syndock-migrate/pkg/migrate"
	"github.com/syndromatic/syndock-migrate/pkg/output"
	"github.com/syndromatic/syndock-migrate/pkg/paths"
)

type rootOptions struct {
	verbosity  int
	dryRun     bool
	backupDir  string
	noBackup   bool
	noColor    bool
	configPath string

	// resolvedNoColor is the color choice after config, env and flags were
	// merged; nil when the run failed before that point
	resolvedNoColor *bool
}

// errorNoColor decides whether a fatal error is printed without color
func (o *rootOptions) errorNoColor() bool {
	if o.resolvedNoColor != nil {
		return *o.resolvedNoColor
	}
	if o.noColor {
		return true
	}
	v, err := strconv.ParseBool(os.Getenv(config.EnvPrefix + "NO_COLOR"))
	return err == nil && v
}

// Execute runs the command line with args and returns the process exit
// code. Errors are printed to stderr, except a missing Latte configuration,
// which the migration has already reported.
func Execute(args []string, stdout, stderr io.Writer) int {
	opts := &rootOptions{}
	rootCmd := newRootCmd(opts)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}
	if !errors.IsErrorCode(err, errors.ErrSourceNotFound) {
		output.NewPrinter(stderr, opts.errorNoColor()).Error(err)
	}
	return 1
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "syndock-migrate",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.Flags()
	rootCmd.PersistentFlags().CountVarP(&opts.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.BoolVarP(&opts.dryRun, "dry-run", "n", false, MsgFlagDryRun)
	flags.StringVarP(&opts.backupDir, "backup-dir", "b", "", MsgFlagBackupDir)
	flags.BoolVar(&opts.noBackup, "no-backup", false, MsgFlagNoBackup)
	flags.StringVar(&opts.configPath, "config", "", MsgFlagConfig)
	flags.BoolVar(&opts.noColor, "no-color", false, MsgFlagNoColor)

	rootCmd.AddCommand(newVersionCmd())
	initTemplateFormatting(rootCmd)

	return rootCmd
}

func runMigrate(cmd *cobra.Command, opts *rootOptions) error {
	p := paths.FromEnvironment()

	// The log file is the only write outside the migration itself, so a
	// dry run skips it.
	logFile := p.LogFilePath()
	if opts.dryRun {
		logFile = ""
	}
	logging.SetupLogger(opts.verbosity, logFile)
	defer func() { _ = logging.Close() }()
	log.Debug().Str("command", cmd.Name()).Msg("Command started")

	cfg, err := config.Load(p, opts.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("backup-dir") {
		cfg.BackupDir = p.ExpandHome(opts.backupDir)
	}
	if flags.Changed("no-backup") {
		cfg.NoBackup = opts.noBackup
	}
	if flags.Changed("no-color") {
		cfg.NoColor = opts.noColor
	}

	opts.resolvedNoColor = &cfg.NoColor

	printer := output.NewPrinter(cmd.OutOrStdout(), cfg.NoColor)
	printer.Banner()

	summary, err := migrate.Run(migrate.Options{
		Paths:     p,
		BackupDir: cfg.BackupDir,
		DryRun:    opts.dryRun,
		NoBackup:  cfg.NoBackup,
		FS:        filesystem.NewOS(),
		Reporter:  printer,
	})
	if err != nil {
		return err
	}

	printer.Summary(summary)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Long:  MsgVersionLong,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, MsgBuiltFormat, version.Date)
			}
		},
	}
}
