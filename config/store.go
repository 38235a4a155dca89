package config

import "strings"

// StoreConfig contains credential store configuration.
type StoreConfig struct {
	// Path is the location of the credential database file.
	Path string `env:"PATH" envDefault:"schoolapp.db"`
}

// Sanitize applies guardrails to store configuration values.
func (s *StoreConfig) Sanitize() {
	s.Path = strings.TrimSpace(s.Path)
	if s.Path == "" {
		s.Path = "schoolapp.db"
	}
}
