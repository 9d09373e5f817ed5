package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"retropong/internal/ansii"
	"retropong/internal/client"
	"retropong/internal/config"
)

func main() {
	if len(os.Args) == 1 {
		config.LoadConfig("")
	} else {
		config.LoadConfig(os.Args[1])
	}

	closeLog, err := client.SetupLogging(config.Config)
	if err != nil {
		fmt.Println(ansii.Colors.Red, err, ansii.Styles.Reset)
		os.Exit(1)
	}

	client.PrintBanner(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	scores, err := client.Game(ctx, config.Config, client.Stdio())
	stop()
	closeLog()
	if err != nil {
		fmt.Println(ansii.Colors.Red, err, ansii.Styles.Reset)
		os.Exit(1)
	}
	fmt.Println(client.FinalScore(scores))
}
