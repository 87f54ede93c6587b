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

package shortcuts

import "strings"

// Window modes a shortcut can open its target in.
const (
	WindowModeNormal    = "normal"
	WindowModeMaximized = "maximized"
	WindowModeMinimized = "minimized"
)

var windowModes = map[string]string{
	"1": WindowModeNormal,
	"3": WindowModeMaximized,
	"7": WindowModeMinimized,
}

// Shortcut is Properties with friendlier names and the window style code
// resolved to a label.
type Shortcut struct {
	FilePath         string `json:"filePath" yaml:"filePath" csv:"filePath"`
	Arguments        string `json:"arguments" yaml:"arguments" csv:"arguments"`
	Comment          string `json:"comment" yaml:"comment" csv:"comment"`
	Hotkey           string `json:"hotkey" yaml:"hotkey" csv:"hotkey"`
	Icon             string `json:"icon" yaml:"icon" csv:"icon"`
	RelativePath     string `json:"relativePath" yaml:"relativePath" csv:"relativePath"`
	TargetPath       string `json:"targetPath" yaml:"targetPath" csv:"targetPath"`
	WindowMode       string `json:"windowMode" yaml:"windowMode" csv:"windowMode"`
	WorkingDirectory string `json:"workingDirectory" yaml:"workingDirectory" csv:"workingDirectory"`
}

// WindowMode maps a WindowStyle code to a label. Unknown or empty codes are
// normal.
func WindowMode(code string) string {
	if mode, ok := windowModes[strings.TrimSpace(code)]; ok {
		return mode
	}
	return WindowModeNormal
}

// TranslateOne converts a single record.
//
//nolint:gocritic // Properties is passed by value to keep callers' records untouched
func TranslateOne(p Properties) Shortcut {
	return Shortcut{
		FilePath:         p.FullName,
		Arguments:        p.Arguments,
		Comment:          p.Description,
		Hotkey:           p.Hotkey,
		Icon:             p.IconLocation,
		RelativePath:     p.RelativePath,
		TargetPath:       p.TargetPath,
		WindowMode:       WindowMode(p.WindowStyle),
		WorkingDirectory: p.WorkingDirectory,
	}
}

// Translate converts records in order. It returns nil for an empty input.
func Translate(records []Properties) []Shortcut {
	if len(records) == 0 {
		return nil
	}
	out := make([]Shortcut, 0, len(records))
	for i := range records {
		out = append(out, TranslateOne(records[i]))
	}
	return out
}
