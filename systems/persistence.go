package systems

import (
	"encoding/json"
	"log"

	"github.com/mpaiva/sortviz/components"
	cfg "github.com/mpaiva/sortviz/config"
	"github.com/mpaiva/sortviz/sorting"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

// SavedSettings represents the settings data stored on disk. Only
// preferences are persisted; sort runs and their histories are not.
type SavedSettings struct {
	Sound     bool    `json:"sound"`
	Volume    float64 `json:"volume"`
	Algorithm int     `json:"algorithm"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "sortviz",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk; (nil, nil) when none exist.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings snapshots the live audio and algorithm state.
func SaveCurrentSettings(e *ecs.ECS) {
	audioEntry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(audioEntry)
	srt := components.Sort.Get(mustFirst(e, components.Sort))

	_ = SaveSettings(&SavedSettings{
		Sound:     audioData.Enabled,
		Volume:    audioData.Volume,
		Algorithm: int(srt.Algorithm),
	})
}

// ApplySavedSettingsGlobal applies loaded settings to the config
// before any scene exists.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	cfg.C.Sound = saved.Sound
	if saved.Volume > 0 && saved.Volume <= 1 {
		cfg.Audio.ToneVolume = saved.Volume
	}
	if a := sorting.Algorithm(saved.Algorithm); a.Valid() {
		cfg.C.DefaultAlgorithm = int(a)
	}
}
