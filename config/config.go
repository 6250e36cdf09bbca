package config

import (
	"fmt"
	"scanv/scan"
	"scanv/statuspage"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Enforcer kinds accepted by the enforcer setting.
const (
	EnforcerLog    = "log"
	EnforcerIPSet  = "ipset"
	EnforcerNotify = "notify"
)

// Main is the top level configuration.
type Main struct {
	StatusURL      string        `yaml:"status_url" validate:"required,url"`
	Dictionary     string        `yaml:"dictionary"`
	MaxHits        int           `yaml:"max_hits" validate:"gte=0"`
	Timeout        time.Duration `yaml:"timeout" validate:"gt=0"`
	Schedule       string        `yaml:"schedule" validate:"required"`
	ReputationList string        `yaml:"reputation_list"`
	ResultsLog     string        `yaml:"results_log"`
	MetricsAddr    string        `yaml:"metrics_addr" validate:"omitempty,hostname_port"`
	Enforcer       Enforcer      `yaml:"enforcer"`
}

// Enforcer configures the backend that the block action hands addresses to.
type Enforcer struct {
	Kind         string        `yaml:"kind" validate:"oneof=log ipset notify"`
	IPSetName    string        `yaml:"ipset_name" validate:"required_if=Kind ipset"`
	IPSetTimeout time.Duration `yaml:"ipset_timeout" validate:"gte=0"`
	NotifyURL    string        `yaml:"notify_url" validate:"required_if=Kind notify"`
	DedupSize    int           `yaml:"dedup_size" validate:"gte=0"`
	DedupTTL     time.Duration `yaml:"dedup_ttl" validate:"gte=0"`
}

// Default returns the configuration used when no file is given.
func Default() *Main {
	return &Main{
		StatusURL:  statuspage.DefaultURL,
		Dictionary: "scripts.txt",
		MaxHits:    3,
		Timeout:    10 * time.Second,
		Schedule:   "@every 30s",
		Enforcer: Enforcer{
			Kind:         EnforcerLog,
			IPSetName:    "scanv",
			IPSetTimeout: time.Hour,
			DedupSize:    1024,
			DedupTTL:     10 * time.Minute,
		},
	}
}

// Load reads a YAML configuration file. Settings missing from the file keep their default.
func Load(fs scan.FileSystem, fileName string) (c *Main, err error) {
	content, err := fs.ReadFile(fileName)
	if err != nil {
		err = fmt.Errorf("failed to read config file %v: %w", fileName, err)
		return
	}

	c, err = Parse(content)
	if err != nil {
		err = fmt.Errorf("config file %v: %w", fileName, err)
		return
	}

	return
}

// Parse decodes YAML content on top of the defaults and validates the result.
func Parse(content []byte) (c *Main, err error) {
	c = Default()
	if err = yaml.Unmarshal(content, c); err != nil {
		c = nil
		return
	}

	if err = c.Validate(); err != nil {
		c = nil
		return
	}

	return
}

// Validate checks the configuration for values the scanner cannot run with.
func (c *Main) Validate() error {
	return validator.New().Struct(c)
}
