package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	eaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"retropong/internal/config"
	"retropong/internal/desktop"
	"retropong/internal/pong"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}
	cfg := config.Config

	slog.SetLogLoggerLevel(slog.Level(cfg.LogLevel))

	match := pong.NewMatch(cfg)

	var sounds pong.Audio
	if cfg.Audio.Enabled {
		sounds = desktop.NewSounds(eaudio.NewContext(cfg.Audio.SampleRate), cfg.Audio.Volume)
	}

	ebiten.SetWindowSize(int(cfg.Field.Width), int(cfg.Field.Height))
	ebiten.SetWindowTitle("retropong")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.FPS)

	game := desktop.NewGame(match, sounds, pong.NewSource(0))
	if err := ebiten.RunGame(game); err != nil {
		fmt.Println("game exited with error:", err)
		os.Exit(1)
	}

	scores := match.Scores()
	slog.Info("match over", slog.Int("left", scores.Left), slog.Int("right", scores.Right))
}
