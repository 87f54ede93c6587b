// Zaparoo LNK Props
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo LNK Props.
//
// Zaparoo LNK Props is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo LNK Props is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo LNK Props.  If not, see <http://www.gnu.org/licenses/>.

package cli

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/ZaparooProject/lnkprops/pkg/config"
	"github.com/ZaparooProject/lnkprops/pkg/helpers"
)

type Flags struct {
	set       *flag.FlagSet
	Version   *bool
	Translate *bool
	Format    *string
	Raw       *string
	LogDir    *string
	Config    *string
}

// SetupFlags defines all CLI flags on the process's command line set.
func SetupFlags() *Flags {
	return NewFlags(flag.CommandLine)
}

// NewFlags defines all CLI flags on set.
func NewFlags(set *flag.FlagSet) *Flags {
	return &Flags{
		set: set,
		Version: set.Bool(
			"version",
			false,
			"print version and exit",
		),
		Translate: set.Bool(
			"translate",
			false,
			"rename properties to friendly names and resolve the window mode",
		),
		Format: set.String(
			"format",
			"",
			"output format: json, yaml or csv (default from config)",
		),
		Raw: set.String(
			"raw",
			"",
			"parse a saved PowerShell report instead of querying shortcuts",
		),
		LogDir: set.String(
			"log-dir",
			"",
			"directory for the log file",
		),
		Config: set.String(
			"config",
			"",
			"config file directory",
		),
	}
}

func (f *Flags) isFlagPassed(name string) bool {
	found := false
	f.set.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			found = true
		}
	})
	return found
}

// Parse parses args and reports whether the run should stop, having already
// printed the version.
func (f *Flags) Parse(args []string, out io.Writer) (bool, error) {
	if err := f.set.Parse(args); err != nil {
		return true, fmt.Errorf("failed to parse flags: %w", err)
	}
	if *f.Version {
		_, _ = fmt.Fprintf(out, "%s v%s (%s)\n", config.AppName, config.AppVersion, runtime.GOOS)
		return true, nil
	}
	return false, nil
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup.
func (f *Flags) Pre() {
	stop, err := f.Parse(os.Args[1:], os.Stdout)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if stop {
		os.Exit(0)
	}
}

// Paths returns the positional arguments left after flag parsing.
func (f *Flags) Paths() []string {
	return f.set.Args()
}

// Apply copies flags that were passed on the command line over the config
// values they shadow.
func (f *Flags) Apply(cfg *config.Instance) {
	if f.isFlagPassed("format") {
		cfg.SetOutputFormat(*f.Format)
	}
	if f.isFlagPassed("translate") {
		cfg.SetTranslate(*f.Translate)
	}
}

// ConfigDir returns the per-user config directory for the app.
func ConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, config.AppName)
}

// Setup initializes logging and the user config. Returns a user config
// object.
//
//nolint:gocritic // config struct copied for immutability
func Setup(
	f *Flags,
	defaultConfig config.Values,
	writers []io.Writer,
) (*config.Instance, error) {
	err := helpers.InitLogging(*f.LogDir, writers)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	configDir := *f.Config
	if configDir == "" {
		configDir = ConfigDir()
	}

	cfg, err := config.NewConfig(configDir, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	helpers.SetDebugLogging(cfg.DebugLogging())
	f.Apply(cfg)

	return cfg, nil
}
