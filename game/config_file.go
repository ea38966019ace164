package game

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// ConfigFile mirrors the command-line flags. Unset keys leave the
// corresponding setting alone.
type ConfigFile struct {
	Seed             *int64         `yaml:"seed"`
	Assets           *string        `yaml:"assets"`
	Delay            *time.Duration `yaml:"delay"`
	Director         *string        `yaml:"director"`
	DirectorInterval *time.Duration `yaml:"director_interval"`
	Snapshot         *string        `yaml:"snapshot"`
	Fresh            *bool          `yaml:"fresh"`
	SaveSnapshots    *string        `yaml:"save_snapshots"`
	Verbose          *bool          `yaml:"verbose"`
}

func LoadConfigFile(path string) (*ConfigFile, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %s", path)
	}

	var file ConfigFile
	if err := yaml.UnmarshalStrict(contents, &file); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	return &file, nil
}

// Apply copies the file's settings into config, skipping any flag for which
// isSet returns true
func (file *ConfigFile) Apply(config *GameConfig, isSet func(flag string) bool) {
	if file.Seed != nil && !isSet("seed") {
		config.Seed = *file.Seed
	}
	if file.Assets != nil && !isSet("assets") {
		config.AssetsDir = *file.Assets
	}
	if file.Delay != nil && !isSet("delay") {
		config.MismatchDelay = *file.Delay
	}
	if file.DirectorInterval != nil && !isSet("director-interval") {
		config.DirectorInterval = *file.DirectorInterval
	}
	if file.Fresh != nil && !isSet("fresh") {
		config.LoadSnapshotFresh = *file.Fresh
	}
	if file.SaveSnapshots != nil && !isSet("save-snapshots") {
		config.SavedSnapshotsDir = *file.SaveSnapshots
	}
}
