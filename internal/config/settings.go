package config

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"digitalGarden/internal/domain/lamp"
)

// Settings regroupe la configuration de démarrage de la lampe. Rien
// n'est persisté en retour : au redémarrage tout repart de ce fichier
// (ou des défauts s'il est absent).
type Settings struct {
	HTTPPort      int    `yaml:"http_port"`
	SerialTCPPort int    `yaml:"serial_tcp_port"`
	SerialDevice  string `yaml:"serial_device"`
	SerialBaud    int    `yaml:"serial_baud"`
	FlowerCount   int    `yaml:"flower_count"`
	UI            bool   `yaml:"ui"`

	ArtNet struct {
		Enabled   bool   `yaml:"enabled"`
		PatchFile string `yaml:"patch_file"`
	} `yaml:"artnet"`

	Tunables struct {
		BlinkMs   int `yaml:"blink_ms"`
		ChaseMs   int `yaml:"chase_ms"`
		FadeStep  int `yaml:"fade_step"`
		RainbowMs int `yaml:"rainbow_ms"`
		Twinkle   int `yaml:"twinkle"`
	} `yaml:"tunables"`
}

func defaultSettings() *Settings {
	s := &Settings{
		HTTPPort:      8080,
		SerialTCPPort: 9600,
		SerialBaud:    9600,
		FlowerCount:   6,
	}
	t := lamp.DefaultTunables()
	s.Tunables.BlinkMs = t.BlinkIntervalMs
	s.Tunables.ChaseMs = t.ChaseIntervalMs
	s.Tunables.FadeStep = t.FadeStep
	s.Tunables.RainbowMs = t.RainbowSpeedMs
	s.Tunables.Twinkle = t.TwinkleSpeed
	return s
}

// LoadSettings lit garden.yaml. Un fichier absent n'est pas une
// erreur : la lampe démarre sur les défauts.
func LoadSettings(path string) (*Settings, error) {
	s := defaultSettings()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Printf("Config: %s absent, démarrage sur les valeurs par défaut.", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("impossible de lire %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("yaml invalide dans %s: %w", path, err)
	}
	if s.FlowerCount < 0 {
		s.FlowerCount = 0
	}
	log.Printf("Config: %s chargé (%d fleurs).", path, s.FlowerCount)
	return s, nil
}

// InitialTunables convertit la section tunables en réglages de la
// lampe, ramenés dans leurs domaines.
func (s *Settings) InitialTunables() lamp.Tunables {
	t := lamp.Tunables{
		BlinkIntervalMs: s.Tunables.BlinkMs,
		ChaseIntervalMs: s.Tunables.ChaseMs,
		FadeStep:        s.Tunables.FadeStep,
		RainbowSpeedMs:  s.Tunables.RainbowMs,
		TwinkleSpeed:    s.Tunables.Twinkle,
	}
	t.Normalize()
	return t
}
