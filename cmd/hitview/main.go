package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Build variables - set by ldflags during build
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

// Config struct for application configuration
type Config struct {
	ConfigFile    string        `mapstructure:"config"`
	Snapshot      string        `mapstructure:"snapshot"`
	Database      string        `mapstructure:"db"`
	Watch         bool          `mapstructure:"watch"`
	GeoIPDatabase string        `mapstructure:"geoip-db"`
	LookupTimeout time.Duration `mapstructure:"lookup-timeout"`
	MaxChoices    int           `mapstructure:"max-choices"`
	Skin          string        `mapstructure:"skin"`
	LogFile       string        `mapstructure:"log-file"`
	TestMode      bool          `mapstructure:"test-mode"`
}

var (
	cfg     Config
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "hitview",
		Short: "Interactive terminal viewer for web log statistics",
		Long: `hitview - An interactive terminal display for aggregated web server log statistics.

Browse unique visitors, requested files, referrers, 404s, operating systems,
browsers, hosts, status codes, referring sites and keyphrases; expand any
module to search and sort every entry, and look up where a host comes from.`,
		Example: `  # Browse a YAML or JSON snapshot
  hitview -f stats.yaml

  # Reload the display whenever the snapshot is rewritten
  hitview -f stats.yaml --watch

  # Read an aggregated SQLite database
  hitview --db stats.db

  # Resolve host countries with a GeoLite2 database
  hitview -f stats.yaml --geoip-db /usr/share/GeoIP/GeoLite2-Country.mmdb

  # Use a custom color skin from ~/.config/hitview/skins/mono.yaml
  hitview -f stats.yaml --skin mono`,
		RunE: runApp,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information about hitview.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("hitview - Web Log Statistics Viewer\n")
			fmt.Printf("  Version:    %s\n", version)
			fmt.Printf("  Commit:     %s\n", commit)
			fmt.Printf("  Built:      %s\n", buildTime)
			fmt.Printf("  Go version: %s\n", goVersion)
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Root command flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/hitview/config.yml)")
	rootCmd.Flags().StringP("snapshot", "f", "", "Aggregated statistics snapshot (YAML or JSON)")
	rootCmd.Flags().String("db", "", "Aggregated statistics SQLite database")
	rootCmd.Flags().BoolP("watch", "w", false, "Reload the display when the snapshot or database changes")
	rootCmd.Flags().String("geoip-db", "", "MaxMind GeoIP2/GeoLite2 country database for host details")
	rootCmd.Flags().Duration("lookup-timeout", 5*time.Second, "Timeout for host detail lookups")
	rootCmd.Flags().Int("max-choices", 100, "Maximum number of items listed when a module is expanded")
	rootCmd.Flags().String("skin", "default", "Color skin name (from $HOME/.config/hitview/skins)")
	rootCmd.Flags().String("log-file", "", "Write diagnostic logs to this file")
	rootCmd.Flags().BoolP("test-mode", "t", false, "Run in test mode (works without TTY)")
	rootCmd.Flags().BoolP("version", "v", false, "Print version information")

	// Bind flags to viper
	for _, name := range []string{
		"snapshot", "db", "watch", "geoip-db", "lookup-timeout",
		"max-choices", "skin", "log-file", "test-mode",
	} {
		viper.BindPFlag(name, rootCmd.Flags().Lookup(name))
	}

	rootCmd.AddCommand(versionCmd)
}

// configDir returns the directory holding config.yml and skins/
func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Printf("Error finding home directory: %v", err)
		return ""
	}
	return filepath.Join(home, ".config", "hitview")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if dir := configDir(); dir != "" {
		viper.AddConfigPath(dir)
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Support environment variables
	viper.SetEnvPrefix("HITVIEW")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Read config file if it exists
	if err := viper.ReadInConfig(); err == nil {
		log.Printf("Using config file: %s", viper.ConfigFileUsed())
	}

	if err := viper.Unmarshal(&cfg); err != nil {
		log.Fatalf("Unable to decode config: %v", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
