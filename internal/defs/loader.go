// internal/defs/loader.go
package defs

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	UpgradesFile = "upgrades.yaml"
	HostilesFile = "hostiles.yaml"
)

// Library is everything a session needs from the data directory.
type Library struct {
	Upgrades []*Upgrade
	Hostiles map[HostileKind]HostileDefinition
}

// DefaultLibrary returns the built-in definitions.
func DefaultLibrary() *Library {
	return &Library{
		Upgrades: DefaultUpgrades(),
		Hostiles: DefaultHostiles(),
	}
}

// LoadUpgradeDefinitions reads and compiles an upgrade pool file.
func LoadUpgradeDefinitions(path string) ([]*Upgrade, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("defs: read %s: %w", path, err)
	}

	var upgrades []*Upgrade
	if err := yaml.Unmarshal(data, &upgrades); err != nil {
		return nil, fmt.Errorf("defs: unmarshal %s: %w", path, err)
	}

	seen := make(map[string]bool, len(upgrades))
	for _, u := range upgrades {
		if err := u.Prepare(); err != nil {
			return nil, fmt.Errorf("defs: %s: %w", path, err)
		}
		if seen[u.ID] {
			return nil, fmt.Errorf("defs: %s: duplicate upgrade id %q", path, u.ID)
		}
		seen[u.ID] = true
	}

	log.Printf("defs: loaded %d upgrade definitions", len(upgrades))
	return upgrades, nil
}

// LoadHostileDefinitions reads a hostile definition file. Kinds missing
// from the file keep their built-in definition.
func LoadHostileDefinitions(path string) (map[HostileKind]HostileDefinition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("defs: read %s: %w", path, err)
	}

	var list []HostileDefinition
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("defs: unmarshal %s: %w", path, err)
	}

	hostiles := DefaultHostiles()
	for _, def := range list {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("defs: %s: %w", path, err)
		}
		hostiles[def.Kind] = def
	}

	log.Printf("defs: loaded %d hostile definitions", len(list))
	return hostiles, nil
}

// LoadLibrary loads the data directory. A missing file falls back to the
// built-in definitions; a malformed one is an error.
func LoadLibrary(dir string) (*Library, error) {
	lib := DefaultLibrary()

	upgrades, err := LoadUpgradeDefinitions(filepath.Join(dir, UpgradesFile))
	switch {
	case err == nil:
		lib.Upgrades = upgrades
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("defs: %s not found, using built-in upgrades", UpgradesFile)
	default:
		return nil, err
	}

	hostiles, err := LoadHostileDefinitions(filepath.Join(dir, HostilesFile))
	switch {
	case err == nil:
		lib.Hostiles = hostiles
	case errors.Is(err, fs.ErrNotExist):
		log.Printf("defs: %s not found, using built-in hostiles", HostilesFile)
	default:
		return nil, err
	}

	return lib, nil
}
