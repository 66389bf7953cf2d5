package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tmarek/voidrain/internal/audio"
	"github.com/tmarek/voidrain/internal/config"
	tui "github.com/tmarek/voidrain/internal/term"
)

func main() {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel) // the screen belongs to the game

	opts := tui.Options{Logger: logger}
	if config.GetEnvBool("VOIDRAIN_SOUND", true) {
		player := audio.NewPlayer(logger)
		player.Start()
		defer player.Close()
		opts.Audio = player
	}

	game := tui.New(bufio.NewReader(os.Stdin), os.Stdout, opts)
	if err := game.Run(); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
