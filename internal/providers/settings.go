// Package providers contains the outbound adapters of the service: the user
// settings loader and the HTTP clients for the external exchange-rate and
// stock-quote APIs.
package providers

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/finpulse/finpulse/internal/domain/models"
	"github.com/finpulse/finpulse/internal/logger"
)

// ErrProviderUnavailable marks a failed call to an external rate or quote
// service. The page composer degrades the affected field to null instead of
// failing the whole response.
var ErrProviderUnavailable = errors.New("provider unavailable")

// SettingsFile loads user settings from a JSON file on disk.
type SettingsFile struct {
	path string
}

// NewSettingsFile returns a loader bound to the given path.
func NewSettingsFile(path string) *SettingsFile {
	return &SettingsFile{path: path}
}

// Load reads the user settings file.
//
// A missing or malformed file returns nil, never an error: page enrichment is
// optional and the caller treats nil settings as "no symbols configured".
func (s *SettingsFile) Load() *models.UserSettings {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		logger.L().Warn().Str("path", s.path).Err(err).Msg("user settings not found")
		return nil
	}

	var settings models.UserSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		logger.L().Warn().Str("path", s.path).Err(err).Msg("user settings malformed")
		return nil
	}
	return &settings
}
