package config

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"slacks-cli/internal/interfaces"
)

// Store implements the ConfigStore interface on top of an afero filesystem
type Store struct {
	fs afero.Fs
}

// NewStore creates a store backed by fs
func NewStore(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// NewOSStore creates a store backed by the real filesystem
func NewOSStore() *Store {
	return NewStore(afero.NewOsFs())
}

// Load reads the JSON record at path. JSON nulls stay unset.
func (s *Store) Load(path string) (interfaces.Config, error) {
	v := viper.New()
	v.SetFs(s.fs)
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return interfaces.Config{}, fmt.Errorf("%w %s: %w", ErrConfigLoad, path, err)
	}

	var cfg interfaces.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return interfaces.Config{}, fmt.Errorf("%w %s: %w", ErrConfigLoad, path, err)
	}

	return cfg, nil
}

// Save writes cfg as indented JSON, creating the parent directory if needed.
// debug_mode is never persisted as true.
func (s *Store) Save(cfg interfaces.Config, path string) error {
	cfg.DebugMode = false

	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigSave, path, err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigSave, path, err)
	}
	data = append(data, '\n')

	if err := afero.WriteFile(s.fs, path, data, 0644); err != nil {
		return fmt.Errorf("%w %s: %w", ErrConfigSave, path, err)
	}

	return nil
}
