package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/pixel/pixelgl"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gomemory/director/memory"
	"github.com/they4kman/gomemory/director/random"
	"github.com/they4kman/gomemory/display"
	"github.com/they4kman/gomemory/game"
)

var log = logrus.New()

var gameConfig = game.NewGameConfig()
var options = rootOptions{}

// rootOptions holds the flags that do not map directly onto a GameConfig field
type rootOptions struct {
	director     directorValue
	snapshotPath string
	configPath   string
	verbose      bool

	// Whether the config file chose the seed, which may legitimately be 0
	seedFromFile bool
}

var rootCmd = &cobra.Command{
	Use:   "gomemory",
	Short: "Play a game of Memory, by hand or computer-driven",
	Long: `gomemory is a memory matching game: sixteen face-down tiles hide
eight pairs. Flip two tiles per turn; matching pairs stay face up.

Run with no arguments to play manually
	gomemory

Use the director flag to make the computer play for you
	gomemory --director memory
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if options.configPath != "" {
			if err := options.applyConfigFile(cmd, options.configPath, &gameConfig); err != nil {
				return err
			}
		}

		if options.verbose {
			log.SetLevel(logrus.DebugLevel)
		}
		gameConfig.Log = log
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		options.fillSeed(cmd, &gameConfig, time.Now())

		if options.snapshotPath != "" {
			snapshot, err := loadSnapshotFile(options.snapshotPath)
			if err != nil {
				return err
			}
			gameConfig.Snapshot = snapshot
		}

		gameConfig.Director = options.director.director()

		var runErr error
		pixelgl.Run(func() {
			runErr = display.Run(gameConfig)
		})
		return runErr
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("gomemory failed")
		os.Exit(1)
	}
}

func loadSnapshotFile(path string) (*game.BoardSnapshot, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading snapshot %s", path)
	}
	snapshot, err := game.LoadSnapshot(string(contents))
	if err != nil {
		return nil, errors.Wrapf(err, "snapshot %s", path)
	}
	return snapshot, nil
}

// fillSeed picks a time-based seed unless a flag or the config file chose one
func (options *rootOptions) fillSeed(cmd *cobra.Command, config *game.GameConfig, now time.Time) {
	if !cmd.Flags().Changed("seed") && !options.seedFromFile {
		config.Seed = now.UnixNano()
	}
}

type directorValue string

var directors = map[string]func() game.Director{
	"random": func() game.Director { return &random.Director{} },
	"memory": func() game.Director { return &memory.Director{} },
}

func (value *directorValue) String() string {
	return string(*value)
}

func (value *directorValue) Set(name string) error {
	if _, isValid := directors[name]; name != "" && !isValid {
		return fmt.Errorf("invalid director %q (choose random or memory)", name)
	}
	*value = directorValue(name)
	return nil
}

func (value *directorValue) Type() string {
	return "director"
}

func (value *directorValue) director() game.Director {
	if newDirector, isValid := directors[string(*value)]; isValid {
		return newDirector()
	}
	return nil
}

func init() {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	addRootFlags(rootCmd, &options, &gameConfig)
}

func addRootFlags(cmd *cobra.Command, options *rootOptions, config *game.GameConfig) {
	cmd.Flags().Int64VarP(&config.Seed, "seed", "s", 0, "Seed for shuffling the tiles (default: current time)")
	cmd.PersistentFlags().StringVarP(&config.AssetsDir, "assets", "a", config.AssetsDir, "Directory holding image0.bmp through image8.bmp")
	cmd.Flags().DurationVar(&config.MismatchDelay, "delay", config.MismatchDelay, "How long a mismatched pair stays face up")
	cmd.Flags().VarP(&options.director, "director", "d", `Make the computer play.
random: click face-down tiles at random
memory: remember every face seen and clear known pairs first`)
	cmd.Flags().DurationVar(&config.DirectorInterval, "director-interval", config.DirectorInterval, "Time between two director clicks")
	cmd.Flags().StringVar(&options.snapshotPath, "snapshot", "", "Load the board layout from a saved snapshot")
	cmd.Flags().BoolVar(&config.LoadSnapshotFresh, "fresh", config.LoadSnapshotFresh, "Turn every tile face down when loading a snapshot")
	cmd.Flags().StringVar(&config.SavedSnapshotsDir, "save-snapshots", "", "Directory to save a snapshot of every finished board to")
	cmd.PersistentFlags().StringVarP(&options.configPath, "config", "c", "", "YAML file with default settings")
	cmd.PersistentFlags().BoolVarP(&options.verbose, "verbose", "v", false, "Log every flip, match and mismatch")
}
