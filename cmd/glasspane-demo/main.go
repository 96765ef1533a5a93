package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/intuitionamiga/glasspane"
	"golang.org/x/term"
)

func banner(color bool) {
	if color {
		fmt.Println("\n\033[38;2;0;200;255mglasspane\033[0m \033[38;2;120;120;120m- transparent overlay for any window\033[0m")
	} else {
		fmt.Println("\nglasspane - transparent overlay for any window")
	}
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("License: GPLv3 or later")
}

func main() {
	banner(term.IsTerminal(int(os.Stdout.Fd())))

	cfg, err := parseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// errReported marks failures the overlay's error handler has already printed.
var errReported = errors.New("overlay failed")

func run(cfg demoConfig) error {
	ticker, cleanup, err := newModeTicker(cfg, &systemClipboard{})
	if err != nil {
		return err
	}
	defer cleanup()

	o := glasspane.New(cfg.Target, cfg.overlayConfig())
	o.SetTicker(ticker)
	o.SetErrorHandler(func(o *glasspane.Overlay, err error) {
		fmt.Fprintf(os.Stderr, "glasspane-demo: %s: %v\n", o.State(), err)
	})

	fmt.Printf("Following %q in %s mode\n", cfg.Target, cfg.Mode)
	if err := o.Create(); err != nil {
		return errReported
	}
	if err := o.Run(); err != nil {
		return errReported
	}
	return nil
}
