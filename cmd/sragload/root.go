package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/sragstats/internal/config"
	"github.com/gyeh/sragstats/internal/logging"
)

var (
	cfg        config.Config
	configFile string
)

var rootCmd = &cobra.Command{
	Use:   "sragload",
	Short: "SRAG surveillance extract → municipality reports",
	Long: "Reads SIVEP-Gripe dBase extracts from zip archives, selects the ICU watch list " +
		"for the 14th regional health coordination and writes case, death and detail reports.",
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&cfg.TempDir, "temp-dir", "", "Parent directory for the extraction workspace (default: system temp)")
	pf.StringVar(&configFile, "config", "", "Optional YAML config file")
}

// setup builds the logger and applies the YAML overlay, if any.
func setup(args []string) (zerolog.Logger, error) {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	cfg.Archives = args
	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			return log, err
		}
		log.Info().Str("config", configFile).Msg("config file loaded")
	}
	return log, nil
}
