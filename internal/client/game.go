package client

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"retropong/internal/ansii"
	"retropong/internal/audio"
	"retropong/internal/config"
	"retropong/internal/pong"
	"retropong/internal/renderer"
)

// Terminal is the stdin/stdout pair a session plays on.
type Terminal struct {
	In         io.Reader
	Out        io.Writer
	IsTerminal func() bool
}

func Stdio() Terminal {
	return Terminal{In: os.Stdin, Out: os.Stdout, IsTerminal: ansii.IsTerminal}
}

type frontend interface {
	pong.InputSource
	pong.Renderer
	Close() error
}

type ansiFrontend struct {
	*renderer.Keyboard
	*renderer.Terminal
}

func openFrontend(cfg config.Configuration, term Terminal, jitter pong.Source) (frontend, error) {
	switch cfg.Frontend {
	case "tcell":
		tc, err := renderer.NewTcell(cfg.Effects, jitter, cfg.KeyHold())
		if err != nil {
			return nil, err
		}
		tc.RepeatDelay = cfg.KeyRepeatDelay()
		if err := tc.Open(); err != nil {
			return nil, err
		}
		return tc, nil
	default:
		if term.IsTerminal != nil && !term.IsTerminal() {
			return nil, errors.New("stdin is not a terminal")
		}
		out := renderer.NewTerminal(term.Out, cfg.Effects, jitter)
		if err := out.Open(); err != nil {
			return nil, err
		}
		keyboard := renderer.NewKeyboard(term.In, cfg.KeyHold())
		keyboard.RepeatDelay = cfg.KeyRepeatDelay()
		keyboard.Listen()
		return ansiFrontend{Keyboard: keyboard, Terminal: out}, nil
	}
}

func openAudio(cfg config.Audio) (pong.Audio, func()) {
	if !cfg.Enabled {
		return nil, func() {}
	}
	speaker := audio.NewSpeaker(cfg)
	if err := speaker.Initialize(); err != nil {
		slog.Warn("continuing without audio", slog.Any("error", err))
		return nil, func() {}
	}
	return speaker, speaker.Close
}

// Game plays one local match on the terminal until a player quits or ctx is
// cancelled, and returns the final score.
func Game(ctx context.Context, cfg config.Configuration, term Terminal) (pong.Scores, error) {
	match := pong.NewMatch(cfg)
	// Render jitter draws from its own stream so seeded matches replay the same.
	jitter := pong.NewSource(0)

	screen, err := openFrontend(cfg, term, jitter)
	if err != nil {
		return pong.Scores{}, err
	}
	defer screen.Close()

	sink, closeAudio := openAudio(cfg.Audio)
	defer closeAudio()

	err = match.Run(ctx, pong.Collaborators{
		Input:    screen,
		Renderer: screen,
		Audio:    sink,
		Limiter:  pong.NewLimiter(cfg.FrameInterval()),
	})
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return match.Scores(), err
}
