package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomemory/game"
)

// applyConfigFile overlays the YAML file at path onto config and options.
// Flags set explicitly on cmd win over the file.
func (options *rootOptions) applyConfigFile(cmd *cobra.Command, path string, config *game.GameConfig) error {
	file, err := game.LoadConfigFile(path)
	if err != nil {
		return err
	}

	isSet := cmd.Flags().Changed
	file.Apply(config, isSet)

	if file.Seed != nil && !isSet("seed") {
		options.seedFromFile = true
	}
	if file.Director != nil && !isSet("director") {
		if err := options.director.Set(*file.Director); err != nil {
			return errors.Wrapf(err, "config %s", path)
		}
	}
	if file.Snapshot != nil && !isSet("snapshot") {
		options.snapshotPath = *file.Snapshot
	}
	if file.Verbose != nil && !isSet("verbose") {
		options.verbose = *file.Verbose
	}
	return nil
}
