package client

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"retropong/internal/ansii"
	"retropong/internal/config"
	"retropong/internal/pong"
)

var controls = []struct {
	color ansii.ANSI
	text  string
}{
	{ansii.Colors.Green, "Left paddle:  W / S"},
	{ansii.Colors.Blue, "Right paddle: Up / Down"},
	{ansii.Colors.Yellow, "Space resets the ball, Q or Esc quits"},
}

// SetupLogging keeps logs off the game screen: they go to the configured
// file, or nowhere. The returned func closes the file.
func SetupLogging(cfg config.Configuration) (func(), error) {
	if cfg.LogFile == "" {
		slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
		return func() {}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	opts := &slog.HandlerOptions{Level: slog.Level(cfg.LogLevel)}
	slog.SetDefault(slog.New(slog.NewTextHandler(f, opts)))
	return func() { f.Close() }, nil
}

func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, ansii.Styles.Bold+"Welcome to retropong!"+ansii.Styles.Reset)
	for _, c := range controls {
		fmt.Fprintln(w, "  "+c.color+ansii.ANSI(c.text)+ansii.Styles.Reset)
	}
}

func FinalScore(s pong.Scores) string {
	return fmt.Sprintf("Final score: %s%d%s - %s%d%s",
		ansii.Colors.Green, s.Left, ansii.Styles.Reset,
		ansii.Colors.Blue, s.Right, ansii.Styles.Reset)
}
