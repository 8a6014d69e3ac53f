package main

import (
	"fmt"
	"math/rand"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/digital-rain/config"
	"github.com/lixenwraith/digital-rain/engine"
	"github.com/lixenwraith/digital-rain/rain"
	"github.com/lixenwraith/digital-rain/render"
	"github.com/lixenwraith/digital-rain/terminal"
)

func main() {
	// Panic Recovery: the deferred Fini inside run does not execute on a
	// panic exit, so restore the terminal before reporting the crash
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)

			// Use \r\n for raw mode compatibility to avoid zig-zag output
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mDIGITAL-RAIN CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "digital-rain: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.FromEnv()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	screen.HideCursor()

	width, height := screen.Size()
	src := rand.New(rand.NewSource(time.Now().UnixNano()))
	field, err := rain.NewField(width, height, cfg.Density, rain.NewSampler(src, cfg.Charset))
	if err != nil {
		return err
	}

	engine.NewLoop(screen, field, render.New(screen)).Run()
	return nil
}
