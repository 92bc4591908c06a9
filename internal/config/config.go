package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"movie-rental-billing/internal/domain"
)

// Config represents the application configuration
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Catalog CatalogConfig `yaml:"catalog"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// CatalogConfig describes the movies and the customers to bill
type CatalogConfig struct {
	Movies    []MovieConfig    `yaml:"movies"`
	Customers []CustomerConfig `yaml:"customers"`
}

type MovieConfig struct {
	ID    int     `yaml:"id"`
	Title string  `yaml:"title"`
	Price float64 `yaml:"price"`
	Type  string  `yaml:"type"`
}

type CustomerConfig struct {
	ID      int            `yaml:"id"`
	Name    string         `yaml:"name"`
	Rentals []RentalConfig `yaml:"rentals"`
}

// RentalConfig is one rental, added to the customer Copies times
type RentalConfig struct {
	MovieID int    `yaml:"movie_id"`
	Days    int    `yaml:"days"`
	Mode    string `yaml:"mode"`
	Copies  int    `yaml:"copies"`
}

// Default returns the built-in scenario: one customer renting Titanic for
// three days, with the rental added three times.
func Default() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Catalog: CatalogConfig{
			Movies: []MovieConfig{
				{ID: 1, Title: "Titanic", Price: 14.99, Type: string(domain.MovieTypeNewRelease)},
			},
			Customers: []CustomerConfig{
				{
					ID:   1,
					Name: "Ahmad Atef",
					Rentals: []RentalConfig{
						{MovieID: 1, Days: 3, Mode: string(domain.PricingModeDefault), Copies: 3},
					},
				},
			},
		},
	}
}

// Resolve returns the configuration to run with: the file at configPath, or
// the built-in scenario when configPath is empty. Both get the environment
// overrides and validation.
func Resolve(configPath string) (*Config, error) {
	if configPath != "" {
		return Load(configPath)
	}

	cfg := Default()
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Load reads configuration from a YAML file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// ApplyEnv overrides config values with environment variables
func (c *Config) ApplyEnv() {
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}

	// Set defaults for log if not configured
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	return c.Catalog.Validate()
}

// Validate checks the catalog for unknown movie types, duplicate movie ids,
// dangling movie references and negative copy counts, and sets Copies to 1
// where it is 0. Pricing modes are left alone: unknown modes price as DEFAULT.
func (c *CatalogConfig) Validate() error {
	movieIDs := make(map[int]bool, len(c.Movies))
	for _, m := range c.Movies {
		if movieIDs[m.ID] {
			return fmt.Errorf("duplicate movie id: %d", m.ID)
		}
		movieIDs[m.ID] = true

		if !domain.MovieType(m.Type).Valid() {
			return fmt.Errorf("movie %d has invalid type: %q", m.ID, m.Type)
		}
	}

	for i := range c.Customers {
		cust := &c.Customers[i]
		for j := range cust.Rentals {
			rental := &cust.Rentals[j]
			if !movieIDs[rental.MovieID] {
				return fmt.Errorf("customer %d rents unknown movie %d", cust.ID, rental.MovieID)
			}
			if rental.Copies < 0 {
				return fmt.Errorf("customer %d rental %d has invalid copies: %d", cust.ID, j, rental.Copies)
			}
			if rental.Copies == 0 {
				rental.Copies = 1
			}
		}
	}

	return nil
}
