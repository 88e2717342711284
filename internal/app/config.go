package app

import (
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	coreconfig "resumebot/core/config"
	"resumebot/core/database"
)

// ResumeConfig locates the resume PDFs on disk.
type ResumeConfig struct {
	Dir     string `yaml:"dir" envconfig:"RESUME_DIR"`
	UzFile  string `yaml:"uz_file" envconfig:"RESUME_UZ_FILE"`
	EngFile string `yaml:"eng_file" envconfig:"RESUME_ENG_FILE"`
	RusFile string `yaml:"rus_file" envconfig:"RESUME_RUS_FILE"`
}

// ContactConfig holds the outbound links of the contact screen.
type ContactConfig struct {
	TelegramURL string `yaml:"telegram_url" envconfig:"CONTACT_TELEGRAM_URL"`
	LinkedInURL string `yaml:"linkedin_url" envconfig:"CONTACT_LINKEDIN_URL"`
}

// DigestConfig controls the optional daily statistics message.
type DigestConfig struct {
	Enabled bool   `yaml:"enabled" envconfig:"DIGEST_ENABLED"`
	At      string `yaml:"at" envconfig:"DIGEST_AT"`
}

// Config is the application configuration: the core bot settings plus
// the resume bot's own sections.
type Config struct {
	Core     coreconfig.Config `yaml:",inline"`
	Database database.Config   `yaml:"database"`
	Resume   ResumeConfig      `yaml:"resume"`
	Contact  ContactConfig     `yaml:"contact"`
	Digest   DigestConfig      `yaml:"digest"`
}

// LoadConfig reads the YAML file, overlays environment variables, and
// validates the result.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}

	if err := coreconfig.Normalize(&cfg.Core); err != nil {
		return nil, err
	}
	applyDefaults(&cfg)
	if cfg.Digest.Enabled && cfg.Digest.At == "" {
		return nil, fmt.Errorf("digest.at is required when digest is enabled")
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Resume.Dir == "" {
		cfg.Resume.Dir = "resumes"
	}
}
