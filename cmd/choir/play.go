package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-choir/internal/audio"
	"github.com/vovakirdan/tui-choir/internal/config"
	"github.com/vovakirdan/tui-choir/internal/core"
	"github.com/vovakirdan/tui-choir/internal/platform/tui"
	"github.com/vovakirdan/tui-choir/internal/record"
	"github.com/vovakirdan/tui-choir/internal/registry"
	"github.com/vovakirdan/tui-choir/internal/storage"
)

var (
	flagRecord string
	flagMute   bool
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the given mode (default: choir).

Controls (default bindings, change them under keys: in the config):
  S/Down     - Sing C
  A/Left     - Sing E
  D/Right    - Sing G
  W/Up       - Sing high C
  Space      - Ask the choir to sing again
  P/Esc      - Pause
  R          - Restart (after game over)
  Ctrl+S     - Screenshot to ~/.choir/screenshots
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slow choir, five mistakes allowed
  normal - Choir starts a little faster
  hard   - Fast choir, one mistake allowed
  fixed  - No speed-up as the score grows

Examples:
  choir play
  choir play choir_endless
  choir play --difficulty hard
  choir play --record session.mid
  choir play --config ./my-choir.yaml --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Write the choir and your answers to a MIDI file")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "choir"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q (run 'choir list' to see available modes)", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	choirCfg, err := loadChoirConfig()
	if err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	player := newAudio(choirCfg, flagMute, flagRecord)
	keys := tui.NewKeyMap(choirCfg.Keys)

	runErr := tui.Run(game, runtimeConfig(), tui.Options{
		Store:  store,
		Audio:  player,
		Keys:   &keys,
		Logger: log.Default(),
		Player: os.Getenv("USER"),
	})

	closeErr := player.Close()
	if closeErr == nil && flagRecord != "" {
		fmt.Printf("Recording saved to %s\n", flagRecord)
	}
	return errors.Join(runErr, closeErr)
}

// runtimeConfig builds the game config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// loadChoirConfig loads the choir config with the difficulty preset applied.
// The game loads the same file; the platform needs its keys and audio sections.
func loadChoirConfig() (config.ChoirConfig, error) {
	cfg, err := config.LoadChoir(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyChoirPreset(&cfg, preset)
	return cfg, nil
}

// openStore opens the scores database. The game still works without one.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		log.Warn("could not open scores database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// newAudio builds the cue sink: the speaker unless muted, plus a MIDI
// recorder when recordPath is set. A speaker that fails to start is logged
// and skipped.
func newAudio(cfg config.ChoirConfig, mute bool, recordPath string) audio.Player {
	var players audio.Multi
	if !mute && cfg.Audio.Enabled {
		synth, err := audio.NewSynth(cfg.Audio, log.Default())
		if err != nil {
			log.Warn("sound disabled", "error", err)
		} else {
			players = append(players, synth)
		}
	}
	if recordPath != "" {
		players = append(players, record.NewRecorder(recordPath))
	}
	return players
}
