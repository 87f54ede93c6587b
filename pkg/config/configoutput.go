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

import "strings"

const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

type Output struct {
	Format    string `toml:"format,omitempty"`
	Translate bool   `toml:"translate"`
}

// OutputFormat returns the configured output format, json if unset or
// unrecognized.
func (c *Instance) OutputFormat() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	switch f := strings.ToLower(c.vals.Output.Format); f {
	case FormatJSON, FormatYAML, FormatCSV:
		return f
	default:
		return FormatJSON
	}
}

func (c *Instance) SetOutputFormat(format string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Output.Format = format
}

func (c *Instance) Translate() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Output.Translate
}

func (c *Instance) SetTranslate(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Output.Translate = enabled
}
