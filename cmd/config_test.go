package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/they4kman/gomemory/director/memory"
	"github.com/they4kman/gomemory/director/random"
	"github.com/they4kman/gomemory/game"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "gomemory.yaml")
	if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// newTestCommand parses args against a fresh copy of the root flags
func newTestCommand(t *testing.T, args ...string) (*cobra.Command, *rootOptions, *game.GameConfig) {
	t.Helper()

	options := &rootOptions{}
	config := game.NewGameConfig()
	cmd := &cobra.Command{Use: "gomemory"}
	addRootFlags(cmd, options, &config)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatal(err)
	}
	return cmd, options, &config
}

func TestConfigFileDirectorPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		args     []string
		expected string
		wantErr  bool
	}{
		{"file only", "director: memory\n", nil, "memory", false},
		{"flag wins", "director: memory\n", []string{"--director", "random"}, "random", false},
		{"short flag wins", "director: memory\n", []string{"-d", "random"}, "random", false},
		{"unset in file", "delay: 2s\n", nil, "", false},
		{"invalid name", "director: bogus\n", nil, "", true},
	}

	for _, tt := range tests {
		cmd, options, config := newTestCommand(t, tt.args...)
		err := options.applyConfigFile(cmd, writeConfig(t, tt.file), config)
		if tt.wantErr {
			if err == nil {
				t.Errorf("%s: expected an error", tt.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: %v", tt.name, err)
			continue
		}
		if options.director.String() != tt.expected {
			t.Errorf("%s: expected director %q, got %q", tt.name, tt.expected, options.director.String())
		}
	}
}

func TestConfigFileSnapshotAndVerbosePrecedence(t *testing.T) {
	file := "snapshot: from-file.yaml\nverbose: true\n"

	cmd, options, config := newTestCommand(t)
	if err := options.applyConfigFile(cmd, writeConfig(t, file), config); err != nil {
		t.Fatal(err)
	}
	if options.snapshotPath != "from-file.yaml" || !options.verbose {
		t.Errorf("expected file settings, got snapshot %q verbose %v", options.snapshotPath, options.verbose)
	}

	cmd, options, config = newTestCommand(t, "--snapshot", "from-flag.yaml", "--verbose=false")
	if err := options.applyConfigFile(cmd, writeConfig(t, file), config); err != nil {
		t.Fatal(err)
	}
	if options.snapshotPath != "from-flag.yaml" || options.verbose {
		t.Errorf("expected flag settings, got snapshot %q verbose %v", options.snapshotPath, options.verbose)
	}
}

func TestDirectorValue(t *testing.T) {
	var value directorValue
	if err := value.Set(""); err != nil {
		t.Fatal(err)
	}
	if director := value.director(); director != nil {
		t.Errorf("empty director name should mean manual play, got %T", director)
	}

	if err := value.Set("memory"); err != nil {
		t.Fatal(err)
	}
	if _, isMemory := value.director().(*memory.Director); !isMemory {
		t.Errorf("expected a memory director, got %T", value.director())
	}

	if err := value.Set("random"); err != nil {
		t.Fatal(err)
	}
	if _, isRandom := value.director().(*random.Director); !isRandom {
		t.Errorf("expected a random director, got %T", value.director())
	}

	if err := value.Set("bogus"); err == nil {
		t.Error("expected an error for an unknown director")
	}
	if value.String() != "random" {
		t.Errorf("a rejected name must leave the value alone, got %q", value.String())
	}
}

func TestFillSeed(t *testing.T) {
	now := time.Unix(1600000000, 42)

	tests := []struct {
		name     string
		file     string
		args     []string
		expected int64
	}{
		{"no seed anywhere", "delay: 2s\n", nil, now.UnixNano()},
		{"zero seed in file", "seed: 0\n", nil, 0},
		{"seed in file", "seed: 17\n", nil, 17},
		{"zero seed flag", "seed: 17\n", []string{"--seed", "0"}, 0},
		{"seed flag", "", []string{"-s", "5"}, 5},
	}

	for _, tt := range tests {
		cmd, options, config := newTestCommand(t, tt.args...)
		if tt.file != "" {
			if err := options.applyConfigFile(cmd, writeConfig(t, tt.file), config); err != nil {
				t.Fatalf("%s: %v", tt.name, err)
			}
		}

		options.fillSeed(cmd, config, now)
		if config.Seed != tt.expected {
			t.Errorf("%s: expected seed %d, got %d", tt.name, tt.expected, config.Seed)
		}
	}
}

func TestGenAssetsReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, "assets: "+dir+"\n")

	rootCmd.SetArgs([]string{"gen-assets", "--config", path, "--size", "16"})
	defer rootCmd.SetArgs(nil)
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}

	for face := 0; face <= game.NumFaces; face++ {
		if _, err := os.Stat(game.AssetPath(dir, game.Face(face))); err != nil {
			t.Errorf("expected %s to be generated: %v", game.AssetPath(dir, game.Face(face)), err)
		}
	}
}
