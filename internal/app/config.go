package app

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	BackendFile   = "file"
	BackendBadger = "badger"
)

type Config struct {
	StorageRoot    string `yaml:"storage_root"`
	StorageBackend string `yaml:"storage_backend"` // file|badger
	LookupBaseURL  string `yaml:"lookup_base_url"` // empty disables the instant-answer path
	SpeakReplies   bool   `yaml:"speak_replies"`
	WakePhrase     string `yaml:"wake_phrase"`
}

func DefaultConfig() Config {
	return Config{
		StorageBackend: BackendFile,
		WakePhrase:     "hey mindmate",
	}
}

func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	switch cfg.StorageBackend {
	case BackendFile, BackendBadger:
	default:
		cfg.StorageBackend = BackendFile
	}
	cfg.LookupBaseURL = strings.TrimRight(strings.TrimSpace(cfg.LookupBaseURL), "/")
	if strings.TrimSpace(cfg.WakePhrase) == "" {
		cfg.WakePhrase = "hey mindmate"
	}
	return cfg, nil
}

func SaveConfig(cfg Config, path string) error {
	if path == "" {
		return errors.New("no path provided for config")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func DefaultConfigPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "mindmate", "config.yml")
}
