package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/contextfs/pkg/contextfs"
	"github.com/arthur-debert/contextfs/pkg/contextfs/config"
	"github.com/arthur-debert/contextfs/pkg/contextfs/filesystem"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = newRootCommand()

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configFile string
	root       string
	logLevel   string
	logFormat  string
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "contextfs",
		Short: "Read and write context repository entities",
		Long: `contextfs manages the entities of a context repository (governance items,
features, user stories, specs, tasks, services and packages), each stored as a
YAML file under <root>/contexts/<type-directory>/<id>-<slug>.yaml.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configFile, "config", "", "config file (YAML)")
	cmd.PersistentFlags().StringVar(&opts.root, "root", "", "repository root directory (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "", "log format: console or json (overrides config)")

	cmd.AddCommand(newVersionCommand())
	cmd.AddCommand(newReadCommand(opts))
	cmd.AddCommand(newWriteCommand(opts))
	cmd.AddCommand(newCreateCommand(opts))
	cmd.AddCommand(newListCommand(opts))
	cmd.AddCommand(newRelatedCommand(opts))
	cmd.AddCommand(newGapsCommand(opts))
	cmd.AddCommand(newOrderCommand(opts))
	cmd.AddCommand(newSearchCommand(opts))
	cmd.AddCommand(newSpecCommand(opts))
	cmd.AddCommand(newCatCommand(opts))
	cmd.AddCommand(newInfoCommand(opts))

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Long:  `Print the version number of contextfs`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "contextfs version %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

// env bundles what a subcommand needs after config resolution.
type env struct {
	cfg   *config.Config
	store *contextfs.Store
}

func (o *globalOptions) setup(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, err
	}
	if o.root != "" {
		cfg.RootDir = o.root
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logFormat != "" {
		cfg.Log.Format = o.logFormat
	}

	level, err := contextfs.LogLevelFromString(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}
	if level == zerolog.NoLevel {
		level = zerolog.WarnLevel
	}
	format, err := contextfs.ParseLogFormat(cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	logger := contextfs.NewLogger(cmd.ErrOrStderr(), level, format)

	storeOpts := cfg.StoreOptions()
	storeOpts.Logger = &logger

	return &env{
		cfg:   cfg,
		store: contextfs.NewStore(filesystem.NewOSFileSystem(""), storeOpts),
	}, nil
}
