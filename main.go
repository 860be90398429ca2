// main.go - Entry point for the VGA text console

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine

License: GPLv3 or later
*/

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"
)

func boilerPlate() {
	fmt.Println("Intuition Engine VGA text console (80x25, mode 03h)")
	fmt.Println("(c) 2024 - 2026 Zayn Otley")
	fmt.Println("https://github.com/IntuitionAmiga/IntuitionEngine")
	fmt.Println("License: GPLv3 or later")
}

// options is the parsed command line
type options struct {
	display     string
	script      string
	scroll      ScrollPolicy
	batchCursor bool
	hardware    bool
	copyPage    bool
	hold        time.Duration
	scale       int
	quiet       bool
}

func parseOptions(args []string) (options, error) {
	var (
		opts   options
		scroll string
	)

	flagSet := flag.NewFlagSet("textmode", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&opts.display, "display", DISPLAY_ANSI, "Display front end: window, tcell, ansi or none")
	flagSet.StringVar(&opts.script, "script", "", "Lua script to run instead of the boot sequence")
	flagSet.StringVar(&scroll, "scroll", "clear", "Row exposed by a scroll: clear or keep")
	flagSet.BoolVar(&opts.batchCursor, "batch-cursor", false, "Move the hardware cursor once per write instead of per character")
	flagSet.BoolVar(&opts.hardware, "hardware", false, "Drive the real text buffer through /dev/mem and /dev/port (root)")
	flagSet.BoolVar(&opts.copyPage, "copy", false, "Copy the final page text to the clipboard")
	flagSet.DurationVar(&opts.hold, "hold", 5*time.Second, "How long window and tcell displays stay up (0 = until closed)")
	flagSet.IntVar(&opts.scale, "scale", 2, "Window scale factor (1-4)")
	flagSet.BoolVar(&opts.quiet, "quiet", false, "Skip the banner")

	flagSet.Usage = func() {
		flagSet.SetOutput(os.Stdout)
		fmt.Println("Usage: ./textmode [-display window|tcell|ansi|none] [-script file.lua] [-scroll clear|keep] [-batch-cursor] [-hardware] [-copy]")
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			flagSet.Usage()
		}
		return opts, err
	}

	display, err := ParseDisplayKind(opts.display)
	if err != nil {
		return opts, err
	}
	opts.display = display

	if opts.scroll, err = ParseScrollPolicy(scroll); err != nil {
		return opts, err
	}
	if opts.script == "" && flagSet.NArg() > 0 {
		opts.script = flagSet.Arg(0)
	}
	opts.scale = ClampScale(opts.scale)
	return opts, nil
}

func main() {
	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if !opts.quiet && opts.display != DISPLAY_TCELL {
		boilerPlate()
	}
	if err := run(opts); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	config := GridConfig{ScrollPolicy: opts.scroll, BatchCursor: opts.batchCursor}

	var machine *TextModeMachine
	if opts.hardware {
		m, err := NewHostMachine(config)
		if err != nil {
			return err
		}
		machine = m
	} else {
		machine = NewEmulatedMachine(config)
	}
	defer machine.Close()

	if opts.script != "" {
		if err := NewScriptHost(machine).RunFile(opts.script); err != nil {
			return err
		}
	} else {
		RunBootDemo(machine.Grid, machine.Cursor)
	}

	if opts.copyPage {
		if err := CopyPageToClipboard(machine.Text); err != nil {
			fmt.Fprintf(os.Stderr, "textmode: %v\n", err)
		}
	}

	return present(machine, opts)
}

func present(machine *TextModeMachine, opts options) error {
	switch opts.display {
	case DISPLAY_WINDOW:
		return presentWindow(machine, opts)
	case DISPLAY_TCELL:
		return presentTcell(machine, opts)
	case DISPLAY_ANSI:
		isTerm, width := stdoutTerminal()
		if isTerm && width > 0 && width < VGA_TEXT_COLS {
			fmt.Fprintf(os.Stderr, "textmode: terminal is %d columns wide, rows will wrap\n", width)
		}
		cells, _ := machine.Snapshot()
		return DumpANSI(os.Stdout, cells, isTerm)
	}

	col, row := machine.Grid.Cursor()
	fmt.Printf("cursor %d,%d  scrolls %d\n", col, row, machine.Grid.ScrollCount())
	return nil
}

func presentWindow(machine *TextModeMachine, opts options) error {
	out, err := NewEbitenOutput()
	if err != nil {
		return err
	}
	cfg := defaultDisplayConfig()
	cfg.Scale = opts.scale
	if err := out.SetDisplayConfig(cfg); err != nil {
		return err
	}
	if err := out.Start(); err != nil {
		return err
	}
	defer out.Close()

	renderer := NewTextRenderer()
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	var deadline <-chan time.Time
	if opts.hold > 0 {
		deadline = time.After(opts.hold)
	}
	for {
		cells, cursor := machine.Snapshot()
		if err := out.UpdateFrame(renderer.Render(cells, cursor).Pix); err != nil {
			return err
		}
		select {
		case <-out.Done():
			return nil
		case <-deadline:
			return nil
		case <-ticker.C:
		}
	}
}

func presentTcell(machine *TextModeMachine, opts options) error {
	display, err := OpenTcellDisplay()
	if err != nil {
		return err
	}
	defer display.Close()

	cells, cursor := machine.Snapshot()
	display.Draw(cells, cursor)

	hold := opts.hold
	if hold <= 0 {
		hold = 5 * time.Second
	}
	time.Sleep(hold)
	return nil
}
