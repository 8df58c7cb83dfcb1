package config

import (
	"flag"
	"os"
	"time"
)

type Config struct {
	RunAddress     string
	RateServiceURL string
	RateTimeout    time.Duration
	LogLevel       string
}

func Parse() *Config {
	cfg := Config{
		// Defaults
		RunAddress:     ":8002",
		RateServiceURL: "http://localhost:8001/find_rate",
		RateTimeout:    5 * time.Second,
		LogLevel:       "debug",
	}
	cfg.updateFromFlags()
	cfg.updateFromEnv()
	return &cfg
}

func (cfg *Config) updateFromFlags() {
	flagRunAddress := flag.String("a", cfg.RunAddress, "Server address.")
	flagRateServiceURL := flag.String("r", cfg.RateServiceURL, "Sales tax rate service URL.")
	flagRateTimeout := flag.Duration("t", cfg.RateTimeout, "Rate service request timeout.")

	flag.Parse()

	cfg.RunAddress = *flagRunAddress
	cfg.RateServiceURL = *flagRateServiceURL
	cfg.RateTimeout = *flagRateTimeout
}

func (cfg *Config) updateFromEnv() {
	if addr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = addr
	}
	if url, ok := os.LookupEnv("SALES_TAX_RATE_SERVICE"); ok {
		cfg.RateServiceURL = url
	}
	if timeout, ok := os.LookupEnv("RATE_REQUEST_TIMEOUT"); ok {
		if d, err := time.ParseDuration(timeout); err == nil {
			cfg.RateTimeout = d
		}
	}
	if lvl, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = lvl
	}
}
