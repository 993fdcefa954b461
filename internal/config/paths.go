package config

import (
	"fmt"
	"path/filepath"
)

// Path of the persisted configuration, relative to the home directory
var configRelPath = filepath.Join(".config", "slacks.json")

// ResolvePath returns $HOME/.config/slacks.json, failing with ErrHomeUnset
// when HOME is absent so configuration is never written to a relative path
func ResolvePath(e Environment) (string, error) {
	vars, err := parseEnviron(e)
	if err != nil {
		return "", err
	}
	if vars.Home == "" {
		return "", fmt.Errorf("cannot locate configuration file: %w", ErrHomeUnset)
	}
	return filepath.Join(vars.Home, configRelPath), nil
}
