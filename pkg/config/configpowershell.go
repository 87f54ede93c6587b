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

package config

import (
	"time"

	"github.com/ZaparooProject/lnkprops/pkg/shortcuts"
	"github.com/rs/zerolog/log"
)

type PowerShell struct {
	HideWindow       *bool  `toml:"hide_window,omitempty"`
	Path             string `toml:"path,omitempty"`
	Timeout          string `toml:"timeout,omitempty"`
	MaxCommandLength int    `toml:"max_command_length,omitempty"`
	Concurrency      int    `toml:"concurrency,omitempty"`
}

type Parser struct {
	// ContinuationIndent of 0 infers the indent from each report block.
	ContinuationIndent *int `toml:"continuation_indent,omitempty"`
}

func (c *Instance) ShellPath() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.PowerShell.Path == "" {
		return shortcuts.DefaultShell
	}
	return c.vals.PowerShell.Path
}

func (c *Instance) SetShellPath(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.PowerShell.Path = path
}

// Timeout returns how long a single PowerShell run may take. Invalid or
// missing values fall back to the default, "0" disables the limit.
func (c *Instance) Timeout() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.vals.PowerShell.Timeout == "" {
		return shortcuts.DefaultTimeout
	}
	d, err := time.ParseDuration(c.vals.PowerShell.Timeout)
	if err != nil || d < 0 {
		log.Warn().Msgf("invalid powershell timeout: %s", c.vals.PowerShell.Timeout)
		return shortcuts.DefaultTimeout
	}
	return d
}

func (c *Instance) SetTimeout(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.PowerShell.Timeout = d.String()
}

func (c *Instance) HideWindow() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.PowerShell.HideWindow == nil {
		return true
	}
	return *c.vals.PowerShell.HideWindow
}

func (c *Instance) SetHideWindow(hide bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.PowerShell.HideWindow = &hide
}

func (c *Instance) MaxCommandLength() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.PowerShell.MaxCommandLength <= 0 {
		return shortcuts.DefaultMaxCommandLength
	}
	return c.vals.PowerShell.MaxCommandLength
}

func (c *Instance) Concurrency() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.PowerShell.Concurrency <= 0 {
		return shortcuts.DefaultConcurrency
	}
	return c.vals.PowerShell.Concurrency
}

func (c *Instance) ContinuationIndent() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.vals.Parser.ContinuationIndent == nil {
		return shortcuts.DefaultContinuationIndent
	}
	if *c.vals.Parser.ContinuationIndent < 0 {
		return 0
	}
	return *c.vals.Parser.ContinuationIndent
}

func (c *Instance) SetContinuationIndent(indent int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Parser.ContinuationIndent = &indent
}
