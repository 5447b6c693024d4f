package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/textindent/internal/config"
	"github.com/zjrosen/textindent/internal/log"
)

// localConfigPath is checked before the user config.
const localConfigPath = ".textindent/config.yaml"

var (
	version    = "dev"
	cfgFile    string
	debugFlag  bool
	cfg        config.Config
	logCleanup func()
)

var rootCmd = &cobra.Command{
	Use:   "textindent",
	Short: "Indent and outdent blocks of lines",
	Long: `Indent or reverse-indent the lines touched by a selection and report the
new text and cursor selection.

The selection is given as rune offsets (--start/--end) or as one-based
line:col positions (--from/--to). Without a selection the whole document is
used.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCleanup != nil {
			logCleanup()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/textindent/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false,
		"write debug log (also TEXTINDENT_DEBUG=1)")
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("indent.style", defaults.Indent.Style)
	viper.SetDefault("indent.width", defaults.Indent.Width)
	viper.SetDefault("output.format", defaults.Output.Format)
	viper.SetDefault("output.diff", defaults.Output.Diff)
	viper.SetDefault("output.color", defaults.Output.Color)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("log_path", defaults.LogPath)

	viper.SetEnvPrefix("textindent")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .textindent/config.yaml (current directory)
		// 2. ~/.config/textindent/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "textindent"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// A missing config file is fine, defaults apply
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "textindent: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	if !debugFlag && !cfg.Debug {
		return nil
	}

	path := cfg.LogPath
	if path == "" {
		path = config.DefaultLogPath
	}
	cleanup, err := log.Init(path)
	if err != nil {
		return fmt.Errorf("opening debug log: %w", err)
	}
	logCleanup = cleanup
	log.Debug(log.CatCLI, "Starting", "command", cmd.Name(), "version", version,
		"config", viper.ConfigFileUsed())
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
