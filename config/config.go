package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/candidatos-info/votingstats/elections"
	"github.com/candidatos-info/votingstats/filestorage"
)

// EnvPrefix prefixes every environment variable read by Load
const EnvPrefix = "VOTINGSTATS"

// Config holds the settings of the votingstats tool
type Config struct {
	DataFile   string        `yaml:"data_file" envconfig:"DATA_FILE" default:"election_data.csv" validate:"required"`
	PartyCodes []string      `yaml:"party_codes" envconfig:"PARTY_CODES" validate:"min=1,dive,required"`
	Report     ReportConfig  `yaml:"report" envconfig:"REPORT"`
	Storage    StorageConfig `yaml:"storage" envconfig:"STORAGE"`
}

// ReportConfig says where and how reports are saved
type ReportConfig struct {
	Dir         string `yaml:"dir" envconfig:"DIR" default:"."` // local path, gs://bucket, s3://bucket or drive://folderID
	FileName    string `yaml:"file_name" envconfig:"FILE_NAME" default:"statistics.txt" validate:"required"`
	MaxAttempts int    `yaml:"max_attempts" envconfig:"MAX_ATTEMPTS" default:"5" validate:"min=1,max=10"`
}

// StorageConfig holds credentials of the remote report destinations
type StorageConfig struct {
	AWSRegion            string `yaml:"aws_region" envconfig:"AWS_REGION" default:"eu-west-2"`
	AWSAccessKeyID       string `yaml:"aws_access_key_id" envconfig:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey   string `yaml:"aws_secret_access_key" envconfig:"AWS_SECRET_ACCESS_KEY"`
	DriveCredentialsFile string `yaml:"drive_credentials" envconfig:"DRIVE_CREDENTIALS"`
	DriveOAuthTokenFile  string `yaml:"drive_token" envconfig:"DRIVE_TOKEN"`
}

// Load reads the configuration from the environment and then from the
// YAML file at path, when path is not empty. Values on the file win over
// the environment. Party codes default to elections.DefaultPartyCodes.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from environment, error %w", err)
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file [%s], error %w", path, err)
		}
		if err := yaml.UnmarshalStrict(b, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file [%s], error %w", path, err)
		}
	}
	if len(cfg.PartyCodes) == 0 {
		cfg.PartyCodes = elections.DefaultPartyCodes()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration, error %w", err)
	}
	return nil
}

// StorageOptions returns the options to build the report file storage
func (c *Config) StorageOptions() filestorage.Options {
	return filestorage.Options{
		AWSRegion:            c.Storage.AWSRegion,
		AWSAccessKeyID:       c.Storage.AWSAccessKeyID,
		AWSSecretAccessKey:   c.Storage.AWSSecretAccessKey,
		DriveCredentialsFile: c.Storage.DriveCredentialsFile,
		DriveOAuthTokenFile:  c.Storage.DriveOAuthTokenFile,
	}
}
