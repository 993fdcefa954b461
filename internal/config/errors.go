package config

import "errors"

var (
	ErrConfigLoad = errors.New("failed to load config file")
	ErrConfigSave = errors.New("failed to save config file")
	ErrHomeUnset  = errors.New("HOME is not set")
)
