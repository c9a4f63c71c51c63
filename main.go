package main

import (
	"flag"
	"os"

	"freelancehunt-scraper/config"
	"freelancehunt-scraper/fetcher"
	"freelancehunt-scraper/logger"
	"freelancehunt-scraper/parser"
	"freelancehunt-scraper/scraper"
	"freelancehunt-scraper/sheets"
)

func main() {
	// Parse command line arguments
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error), overrides the config file")
	flag.Parse()

	logger.Init("info")
	cfg := loadConfig(*configPath)
	applyFlags(cfg, *logLevel)
	logger.Init(cfg.Log.Level)

	log := logger.Get()

	s := scraper.NewScraper(cfg,
		fetcher.NewCollyFetcher(cfg.Site.UserAgent),
		parser.NewParser(cfg.Site.Origin),
		sheets.NewWriter(cfg.Output.Dir),
	)

	if err := s.Run(); err != nil {
		log.Fatal().Err(err).Msg("Scraping failed")
	}
}

// applyFlags overrides config values with the ones given on the command line
func applyFlags(cfg *config.Config, logLevel string) {
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
}

// loadConfig reads the config file when it exists, falling back to defaults
func loadConfig(configPath string) *config.Config {
	log := logger.Get()

	if _, err := os.Stat(configPath); err != nil {
		log.Debug().Str("path", configPath).Msg("Config file not found. Using default configuration.")
		return config.GetDefaultConfig()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to load config file. Using defaults.")
		return config.GetDefaultConfig()
	}
	return cfg
}
