package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/varoOP/tvseriesdb/internal/app"
	"github.com/varoOP/tvseriesdb/internal/config"
	"github.com/varoOP/tvseriesdb/internal/shell"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
	cfgFile string
)

// rootCmd runs the interactive shell when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tvseriesdb",
	Short: "A TV series catalog",
	Long: `tvseriesdb manages a catalog of TV series stored in MongoDB or SQLite.

Without a subcommand it makes sure the collection exists and starts an
interactive shell:
  A         - import series from the import file
  S <title> - search series by title
  L         - list all series
  D <id>    - delete series by ID
  Q         - quit`,
	Version:       version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		application, err := newApp()
		if err != nil {
			return err
		}

		rl, err := shell.NewReadline(application.Config().HistoryFile)
		if err != nil {
			return fmt.Errorf("failed to open terminal: %w", err)
		}

		if err := application.RunShell(cmd.Context(), rl); err != nil {
			return fmt.Errorf("shell failed: %w", err)
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	config.SetDefaults(viper.GetViper())

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml or $HOME/.tvseriesdb.yaml)")
	rootCmd.PersistentFlags().String("driver", config.DefaultDriver, "storage driver: 'mongodb' or 'sqlite'")
	rootCmd.PersistentFlags().String("mongo-uri", config.DefaultMongoURI, "MongoDB connection string")
	rootCmd.PersistentFlags().String("sqlite-path", config.DefaultSQLitePath, "SQLite database file")
	rootCmd.PersistentFlags().String("import-file", config.DefaultImportFile, "file imported by the A command")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level: trace, debug, info, warn or error")
	rootCmd.PersistentFlags().String("history-file", "", "file keeping shell command history (disabled when empty)")

	// Bind flags to viper
	bindFlags(rootCmd.PersistentFlags(), "driver", "mongo-uri", "sqlite-path", "import-file", "log-level", "history-file")
}

// bindFlags binds each named flag to the viper key with dashes replaced by underscores
func bindFlags(flags *pflag.FlagSet, names ...string) {
	for _, name := range names {
		viper.BindPFlag(strings.ReplaceAll(name, "-", "_"), flags.Lookup(name))
	}
}

// initConfig reads in .env, config file and ENV variables if set.
func initConfig() {
	// A missing .env is fine
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory and home directory
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Environment variables
	viper.SetEnvPrefix("TVSERIESDB")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else if cfgFile == "" {
		viper.SetConfigName(".tvseriesdb")
		if err := viper.ReadInConfig(); err == nil {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

// newApp loads the configuration and wires the application
func newApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	application, err := app.NewApp(cfg, os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}

	return application, nil
}
