// Package config holds runtime configuration for the crossfill CLI.
// Values come from flags bound into viper by the command layer, with
// CROSSFILL_-prefixed environment variables as a fallback.
package config

import (
	"errors"

	"github.com/spf13/viper"
)

const DefaultCellSize = 100

type Config struct {
	// StructurePath is the grid structure file (text or YAML).
	StructurePath string
	// WordsPath is the vocabulary file, one word per line.
	WordsPath string
	// OutputPath, if set, is where the filled grid is saved as a PNG.
	OutputPath string
	// CellSize is the PNG cell size in pixels.
	CellSize int
	Debug    bool
}

// Load reads the configuration out of v. The command layer is expected to
// have bound its flags already; env vars fill anything left unset.
func Load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("crossfill")
	v.AutomaticEnv()
	v.SetDefault("cell-size", DefaultCellSize)

	c := &Config{
		StructurePath: v.GetString("structure"),
		WordsPath:     v.GetString("words"),
		OutputPath:    v.GetString("out"),
		CellSize:      v.GetInt("cell-size"),
		Debug:         v.GetBool("debug"),
	}
	if c.StructurePath == "" {
		return nil, errors.New("config: no structure file given")
	}
	if c.WordsPath == "" {
		return nil, errors.New("config: no word list given")
	}
	if c.CellSize <= 0 {
		return nil, errors.New("config: cell size must be positive")
	}
	return c, nil
}
