package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/buildfight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
	"github.com/rs/zerolog/log"
)

const settingsKey = "settings"

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Sensitivity   float64 `json:"sensitivity,omitempty"`
	ServerAddress string  `json:"serverAddress,omitempty"`
	Fullscreen    bool    `json:"fullscreen"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open settings store: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when persistence
// is unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Warn().Err(err).Msg("could not load settings")
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}
	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil || s == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// RememberServer stores addr as the last server the player connected to.
func RememberServer(addr string) {
	saved, err := LoadSettings()
	if err != nil {
		log.Warn().Err(err).Msg("replacing unreadable settings")
	}
	if saved == nil {
		saved = &SavedSettings{}
	}
	if saved.ServerAddress == addr {
		return
	}
	saved.ServerAddress = addr
	if err := SaveSettings(saved); err != nil {
		log.Warn().Err(err).Msg("could not save settings")
	}
}

// ApplySavedSettings copies stored preferences into the live configuration.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.Sensitivity > 0 {
		cfg.Controls.Sensitivity = saved.Sensitivity
	}
	if saved.ServerAddress != "" {
		cfg.Network.DefaultAddress = saved.ServerAddress
	}
	ebiten.SetFullscreen(saved.Fullscreen)
}
