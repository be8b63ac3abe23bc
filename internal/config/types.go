// Package config loads tabdl settings from defaults, a YAML file, a .env file,
// environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/TadeasHofman/TableauAPI/pkg/tabdl"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/models"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/output"
	"github.com/TadeasHofman/TableauAPI/pkg/tabdl/tableau"
)

// Default configuration values.
const (
	DefaultBatchSize = tabdl.DefaultBatchSize
	DefaultPageSize  = tableau.DefaultPageSize
	DefaultOutput    = "output.csv"
	EnvPrefix        = "TABDL_"
)

// Config holds all CLI configuration options.
type Config struct {
	Server      string           `koanf:"server"`
	TokenName   string           `koanf:"token_name"`
	TokenSecret string           `koanf:"token_secret"`
	Site        string           `koanf:"site"`
	APIVersion  string           `koanf:"api_version"`
	BatchSize   int              `koanf:"batch_size"`
	PageSize    int              `koanf:"page_size"`
	Format      string           `koanf:"format"` // empty infers from Output
	Output      string           `koanf:"output"`
	Timeout     time.Duration    `koanf:"timeout"`
	Verbose     bool             `koanf:"verbose"`
	Filters     map[string][]any `koanf:"filters"`
}

// Validate checks that the settings needed to talk to a server are present.
// Credentials are not checked beyond presence; the server decides.
func (c *Config) Validate() error {
	var errs []error
	if c.Server == "" {
		errs = append(errs, errors.New("server is required"))
	}
	if c.TokenName == "" {
		errs = append(errs, errors.New("token_name is required"))
	}
	if c.TokenSecret == "" {
		errs = append(errs, fmt.Errorf("token_secret is required (set %sTOKEN_SECRET or add it to .env)", EnvPrefix))
	}
	if c.BatchSize <= 0 {
		errs = append(errs, fmt.Errorf("batch_size must be positive, got %d", c.BatchSize))
	}
	if c.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("page_size must be positive, got %d", c.PageSize))
	}
	if c.Format != "" {
		if _, err := output.ParseFormat(c.Format); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// ExportFormat returns the configured format, or the one implied by Output.
func (c *Config) ExportFormat() (output.Format, error) {
	if c.Format == "" {
		return output.FormatFromPath(c.Output), nil
	}
	return output.ParseFormat(c.Format)
}

// FilterSpec returns the configured filters.
func (c *Config) FilterSpec() models.FilterSpec {
	if len(c.Filters) == 0 {
		return nil
	}
	return models.FilterSpec(c.Filters)
}

// Options returns the download options.
func (c *Config) Options() tabdl.Options {
	return tabdl.Options{BatchSize: c.BatchSize, PageSize: c.PageSize}
}

// ClientConfig returns the REST client settings.
func (c *Config) ClientConfig() tableau.Config {
	return tableau.Config{
		ServerURL:   c.Server,
		TokenName:   c.TokenName,
		TokenSecret: c.TokenSecret,
		Site:        c.Site,
		APIVersion:  c.APIVersion,
	}
}
