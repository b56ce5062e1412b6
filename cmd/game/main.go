package main

import (
	"bufio"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/mlaren/beatpong/internal/audio"
	"github.com/mlaren/beatpong/internal/config"
	"github.com/mlaren/beatpong/internal/game"
	"github.com/mlaren/beatpong/internal/loop"
)

func main() {
	cfg := game.DefaultConfig()
	if path := config.GetEnv("BEATPONG_CONFIG", ""); path != "" {
		loaded, err := game.LoadConfig(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Audio is best effort: if the speaker cannot start, the game plays
	// at base speed and the HUD reports music as unavailable.
	player := audio.NewPlayer(cfg.TrackBPM, audio.NewEstimator(cfg.Estimator, cfg.TrackBPM))
	if err := player.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
	}
	defer player.Close()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}

	reader := bufio.NewReader(os.Stdin)
	runErr := loop.Run(reader, os.Stdout, loop.Options{Config: cfg, Player: player})
	_ = term.Restore(fd, oldState)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", runErr)
		os.Exit(1)
	}
}
