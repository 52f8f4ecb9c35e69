package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-choir/internal/platform/tui"
	"github.com/vovakirdan/tui-choir/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a mode picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, Tab for scores.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Tab          - High scores
  Q            - Quit

Examples:
  choir menu
  choir menu --fps 30
  choir menu --db ./scores.db --record practice.mid`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagRecord, "record", "", "Write every game to a MIDI file")
	menuCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runMenu(_ *cobra.Command, _ []string) error {
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
	cfg := runtimeConfig()

	var runErr error
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			runErr = err
			break
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				runErr = sbErr
				break
			}
			if goBack {
				continue
			}
			break // User quit from scoreboard
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		log.Info("game started", "game", game.ID())
		if err := tui.Run(game, cfg, tui.Options{
			Store:  store,
			Audio:  player,
			Keys:   &keys,
			Logger: log.Default(),
			Player: os.Getenv("USER"),
		}); err != nil {
			runErr = err
			break
		}
	}

	closeErr := player.Close()
	if closeErr == nil && flagRecord != "" {
		fmt.Printf("Recording saved to %s\n", flagRecord)
	}
	return errors.Join(runErr, closeErr)
}
