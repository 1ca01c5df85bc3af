// Package cli implements the survtab command tree: stats, encode and
// simulate, all operating on headered CSV files (or stdin/stdout).
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/survtab/survtab/table"
)

var (
	// Global flags
	cfgFile  string
	logLevel string
	quiet    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "survtab",
	Short: "Survtab - shape right-censored survival data for model training",
	Long: `Survtab prepares time-to-event (survival) datasets: descriptive statistics,
the signed-label transform used by downstream survival models, and a seeded
synthetic-data generator.

Every command consumes and produces headered CSV; pass "-" (or no FILE) to
read from stdin and omit --output to write to stdout.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		initLogging()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.survtab/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "disabled", "log level (debug, info, warn, error) (default: disabled)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress non-essential output")

	// Bind flags to viper
	_ = viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".survtab" (without extension).
		viper.AddConfigPath(home + "/.survtab")
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Environment variables
	viper.SetEnvPrefix("SURVTAB")
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		if !quiet {
			fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
		}
	}
}

// initLogging configures the global logger.
func initLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	switch viper.GetString("log-level") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.Disabled)
	}

	if !viper.GetBool("quiet") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

// readTable loads a CSV table from path; "" or "-" means stdin.
func readTable(cmd *cobra.Command, path string) (*table.Table, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}

	tbl, err := table.ReadCSV(r)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("rows", tbl.Rows()).Int("columns", tbl.Cols()).Str("source", path).Msg("loaded table")

	return tbl, nil
}

// writeTable stores a CSV table at path; "" means the command's stdout.
func writeTable(cmd *cobra.Command, path string, tbl *table.Table) error {
	if path == "" {
		return table.WriteCSV(cmd.OutOrStdout(), tbl)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err = table.WriteCSV(f, tbl); err != nil {
		return err
	}
	log.Debug().Int("rows", tbl.Rows()).Str("target", path).Msg("wrote table")

	return nil
}

// argOrStdin extracts the optional FILE argument.
func argOrStdin(args []string) string {
	if len(args) == 0 {
		return ""
	}

	return args[0]
}
