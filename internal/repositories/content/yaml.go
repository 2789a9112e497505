package content

import (
	"embed"
	"io/fs"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/rpg-wilds/internal/entities/wilds"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

// Content file names inside a content directory
const (
	WorldFile   = "world.yaml"
	EventsFile  = "events.yaml"
	EnemiesFile = "enemies.yaml"
	ItemsFile   = "items.yaml"
	AmbientFile = "ambient.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

// DefaultFS returns the content shipped with the binary
func DefaultFS() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		// data/ is compiled in; Sub only fails on an invalid path
		panic(err)
	}
	return sub
}

// Config holds the configuration for the YAML repository
type Config struct {
	FS fs.FS
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.FS == nil {
		vb.RequiredField("FS")
	}

	return vb.Build()
}

// NewYAMLRepository loads and validates the content tables from the filesystem
func NewYAMLRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	tables, err := Load(cfg.FS)
	if err != nil {
		return nil, err
	}

	if err := Validate(tables); err != nil {
		return nil, errors.Wrap(err, "invalid content")
	}

	slog.Info("Content loaded",
		"world", tables.World.Name,
		"events", len(tables.Events),
		"enemies", len(tables.Enemies),
		"items", len(tables.Items),
		"ambient", len(tables.Ambient),
	)

	return NewInMemory(tables), nil
}

type eventsFile struct {
	Events []wilds.EventDefinition `yaml:"events"`
}

type enemiesFile struct {
	Enemies []wilds.EnemyTemplate `yaml:"enemies"`
}

type itemsFile struct {
	Items []wilds.Item `yaml:"items"`
}

type ambientFile struct {
	Messages []wilds.AmbientMessage `yaml:"messages"`
}

// Load reads every content file from fsys without validating references
func Load(fsys fs.FS) (*Tables, error) {
	tables := &Tables{}

	if err := decodeFile(fsys, WorldFile, &tables.World); err != nil {
		return nil, err
	}

	var events eventsFile
	if err := decodeFile(fsys, EventsFile, &events); err != nil {
		return nil, err
	}
	tables.Events = events.Events

	var enemies enemiesFile
	if err := decodeFile(fsys, EnemiesFile, &enemies); err != nil {
		return nil, err
	}
	tables.Enemies = enemies.Enemies

	var items itemsFile
	if err := decodeFile(fsys, ItemsFile, &items); err != nil {
		return nil, err
	}
	tables.Items = items.Items

	var ambient ambientFile
	if err := decodeFile(fsys, AmbientFile, &ambient); err != nil {
		return nil, err
	}
	tables.Ambient = ambient.Messages

	return tables, nil
}

func decodeFile(fsys fs.FS, name string, target interface{}) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeNotFound, "failed to read content file").
			WithMeta("file", name)
	}

	if err := yaml.Unmarshal(data, target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse content file").
			WithMeta("file", name)
	}
	return nil
}
