package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/intuitionamiga/glasspane"
	"gopkg.in/yaml.v3"
)

const (
	defaultTarget    = "Terminal"
	defaultFOVRadius = 150
)

var demoModes = []string{"fov", "crosshair", "test", "script"}

type keyBindings struct {
	Quit   string `yaml:"quit"`
	Grow   string `yaml:"grow"`
	Shrink string `yaml:"shrink"`
	Copy   string `yaml:"copy"`
}

// demoConfig is the YAML file layout. Command line flags override it.
type demoConfig struct {
	Target    string      `yaml:"target"`
	Mode      string      `yaml:"mode"`
	Script    string      `yaml:"script,omitempty"`
	Width     int         `yaml:"width,omitempty"`
	Height    int         `yaml:"height,omitempty"`
	VSync     bool        `yaml:"vsync"`
	FOVRadius int         `yaml:"fov_radius"`
	Color     string      `yaml:"color"`
	Keys      keyBindings `yaml:"keys"`
}

func defaultConfig() demoConfig {
	return demoConfig{
		Target:    defaultTarget,
		Mode:      "fov",
		VSync:     true,
		FOVRadius: defaultFOVRadius,
		Color:     "green",
		Keys: keyBindings{
			Quit:   "escape",
			Grow:   "pageup",
			Shrink: "pagedown",
			Copy:   "f9",
		},
	}
}

// loadConfig reads path over the defaults. Keys missing from the file keep
// their default value.
func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// controls are the resolved key bindings.
type controls struct {
	quit   glasspane.Key
	grow   glasspane.Key
	shrink glasspane.Key
	copy   glasspane.Key
}

func (k keyBindings) resolve() (controls, error) {
	var c controls
	for _, b := range []struct {
		name string
		dst  *glasspane.Key
	}{
		{k.Quit, &c.quit},
		{k.Grow, &c.grow},
		{k.Shrink, &c.shrink},
		{k.Copy, &c.copy},
	} {
		key, err := glasspane.ParseKey(b.name)
		if err != nil {
			return controls{}, err
		}
		*b.dst = key
	}
	return c, nil
}

func (c demoConfig) validate() error {
	if strings.TrimSpace(c.Target) == "" {
		return fmt.Errorf("target window title is empty")
	}
	known := false
	for _, m := range demoModes {
		if c.Mode == m {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("unknown mode %q (want one of %s)", c.Mode, strings.Join(demoModes, ", "))
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("window size %dx%d is negative", c.Width, c.Height)
	}
	if c.FOVRadius < 1 {
		return fmt.Errorf("fov_radius must be at least 1, got %d", c.FOVRadius)
	}
	if _, ok := glasspane.ColorByName(c.Color); !ok {
		return fmt.Errorf("unknown colour %q", c.Color)
	}
	if _, err := c.Keys.resolve(); err != nil {
		return fmt.Errorf("keys: %w", err)
	}
	return nil
}

func (c demoConfig) overlayConfig() glasspane.Config {
	return glasspane.Config{
		Title:     "glasspane - " + c.Target,
		Width:     c.Width,
		Height:    c.Height,
		VSync:     c.VSync,
		Antialias: true,
	}
}

func printUsage(flagSet *flag.FlagSet) {
	flagSet.SetOutput(os.Stdout)
	fmt.Println("Usage: glasspane-demo [-target \"Window Title\"] [-mode fov|crosshair|test|script] [-script file.lua] [-config file.yaml]")
	flagSet.PrintDefaults()
	fmt.Println("\nKeys: Escape quits, PageUp/PageDown resize the FOV circle, F9 copies the target rectangle.")
}

// parseArgs builds the configuration from an optional YAML file and the
// command line. Flags given explicitly win over the file.
func parseArgs(name string, args []string) (demoConfig, error) {
	var (
		configPath string
		target     string
		mode       string
		script     string
		width      int
		height     int
		vsync      bool
	)
	def := defaultConfig()

	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.StringVar(&configPath, "config", "", "YAML configuration file")
	flagSet.StringVar(&target, "target", def.Target, "Title of the window to follow")
	flagSet.StringVar(&mode, "mode", def.Mode, "Overlay to draw: "+strings.Join(demoModes, ", "))
	flagSet.StringVar(&script, "script", "", "Lua script for -mode script (default: built-in crosshair)")
	flagSet.IntVar(&width, "width", 0, "Overlay width (default: screen width)")
	flagSet.IntVar(&height, "height", 0, "Overlay height (default: screen height)")
	flagSet.BoolVar(&vsync, "vsync", def.VSync, "Synchronise presentation with the display refresh")
	flagSet.Usage = func() { printUsage(flagSet) }

	if err := flagSet.Parse(args); err != nil {
		return def, err
	}
	if flagSet.NArg() > 0 {
		return def, fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}

	cfg := def
	if configPath != "" {
		var err error
		if cfg, err = loadConfig(configPath); err != nil {
			return def, err
		}
	}
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "target":
			cfg.Target = target
		case "mode":
			cfg.Mode = mode
		case "script":
			cfg.Script = script
		case "width":
			cfg.Width = width
		case "height":
			cfg.Height = height
		case "vsync":
			cfg.VSync = vsync
		}
	})
	cfg.Mode = strings.ToLower(strings.TrimSpace(cfg.Mode))
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
