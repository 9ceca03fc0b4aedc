package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Salary  SalaryLayout  `yaml:"salary" envconfig:"SALARY"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" default:"info" validate:"oneof=debug info warn warning error"`
	Output   string `yaml:"output" envconfig:"OUTPUT" default:"console" validate:"oneof=console file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH" default:"logs/combiner.log"`
}

// SalaryLayout names the positional salary columns instead of leaving magic
// indexes scattered through the merge code. Defaults match the .dat layout:
// column 5 is the basic salary, column 6 the allowances.
type SalaryLayout struct {
	BasicSalaryIndex int `yaml:"basic_salary_index" envconfig:"BASIC_SALARY_INDEX" default:"5" validate:"min=0"`
	AllowancesIndex  int `yaml:"allowances_index" envconfig:"ALLOWANCES_INDEX" default:"6" validate:"min=0"`
}

// MinFields returns the minimum field count a row needs to hold both salary
// columns.
func (l SalaryLayout) MinFields() int {
	if l.BasicSalaryIndex > l.AllowancesIndex {
		return l.BasicSalaryIndex + 1
	}
	return l.AllowancesIndex + 1
}

// DefaultSalaryLayout returns the fixed positional layout of the .dat files.
func DefaultSalaryLayout() SalaryLayout {
	return SalaryLayout{
		BasicSalaryIndex: DefaultBasicSalaryIndex,
		AllowancesIndex:  DefaultAllowancesIndex,
	}
}

// Load loads configuration from an optional config.yaml in the working
// directory overlaid with environment variables. Precedence is built-in
// defaults, then the file, then the environment: envconfig only applies a
// default tag to a still-zero field, so file values survive unless an env
// var overrides them.
func Load() (*Config, error) {
	var cfg Config

	// Load from config file if exists
	if _, err := os.Stat(configFileName); err == nil {
		fileCfg, err := loadFromFile(configFileName)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
		cfg = *fileCfg
	}

	if err := envconfig.Process("PAY", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when Load fails at startup.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    "info",
			Output:   "console",
			FilePath: DefaultLogPath,
		},
		Salary: DefaultSalaryLayout(),
	}
}

const configFileName = "config.yaml"

// loadFromFile loads configuration from YAML file
func loadFromFile(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate checks the configuration with go-playground/validator plus the
// structural rule the tags cannot express.
func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if c.Salary.BasicSalaryIndex == c.Salary.AllowancesIndex {
		return fmt.Errorf("salary columns must differ, both set to %d", c.Salary.BasicSalaryIndex)
	}
	return nil
}
