package cmd

import (
	"github.com/spf13/cobra"
	"github.com/they4kman/gomemory/game"
)

var assetsSize int

var genAssetsCmd = &cobra.Command{
	Use:   "gen-assets [dir]",
	Short: "Write a set of plain numbered tile images",
	Long: `gen-assets writes image0.bmp (the face-down tile) and image1.bmp
through image8.bmp into dir, or into the assets directory if dir is omitted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := gameConfig.AssetsDir
		if len(args) > 0 {
			dir = args[0]
		}

		if err := game.GenerateAssets(dir, assetsSize); err != nil {
			return err
		}
		log.WithField("dir", dir).Info("Wrote tile images")
		return nil
	},
}

func init() {
	genAssetsCmd.Flags().IntVar(&assetsSize, "size", 103, "Width and height of each image, in pixels")
	rootCmd.AddCommand(genAssetsCmd)
}
