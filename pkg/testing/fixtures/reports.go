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

package fixtures

import (
	"strings"
)

// Raw PowerShell Format-List reports as captured from Windows PowerShell 5.1.
// Lines end in CRLF and each block is padded with blank lines, as the host
// writes them.

// DaVinciReport has an IconLocation long enough to wrap onto a second line.
const DaVinciReport = "\r\n\r\n" +
	"FullName         : C:\\Users\\Owner\\Desktop\\DaVinci Resolve.lnk\r\n" +
	"Arguments        : \r\n" +
	"Description      : Video Editor\r\n" +
	"Hotkey           : CTRL+SHIFT+F10\r\n" +
	"IconLocation     : C:\\Users\\Owner\\AppData\\Roaming\\Microsoft\\Installer\\" +
	"{00000000-0000-0000-0000-000000000000}\\ResolveIco\r\n" +
	"                   n.exe,0\r\n" +
	"RelativePath     : \r\n" +
	"TargetPath       : C:\\Program Files\\Blackmagic Design\\DaVinci Resolve\\Resolve.exe\r\n" +
	"WindowStyle      : 3\r\n" +
	"WorkingDirectory : C:\\Program Files\\Blackmagic Design\\DaVinci Resolve\\\r\n" +
	"\r\n\r\n\r\n"

// DaVinciIcon is the unwrapped IconLocation in DaVinciReport.
const DaVinciIcon = "C:\\Users\\Owner\\AppData\\Roaming\\Microsoft\\Installer\\" +
	"{00000000-0000-0000-0000-000000000000}\\ResolveIcon.exe,0"

// Pair is one label and value in a Format-List block.
type Pair struct {
	Key   string
	Value string
}

// LabelWidth is the width Format-List pads labels to for shortcut reports.
const LabelWidth = len("WorkingDirectory")

// ShortcutBlock returns pairs for every shortcut property, with the given
// values filled in and the rest empty.
func ShortcutBlock(fullName string, values map[string]string) []Pair {
	keys := []string{
		"FullName", "Arguments", "Description", "Hotkey", "IconLocation",
		"RelativePath", "TargetPath", "WindowStyle", "WorkingDirectory",
	}
	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		v := values[k]
		if k == "FullName" {
			v = fullName
		}
		pairs = append(pairs, Pair{Key: k, Value: v})
	}
	return pairs
}

// FormatList renders blocks the way Format-List does: labels padded to
// LabelWidth, " : ", and values wrapped at width columns onto lines indented
// to the value column. A width of zero disables wrapping.
func FormatList(width int, blocks ...[]Pair) string {
	indent := LabelWidth + len(" : ")
	var sb strings.Builder
	for _, block := range blocks {
		sb.WriteString("\r\n\r\n")
		for _, p := range block {
			line := p.Key + strings.Repeat(" ", LabelWidth-len(p.Key)) + " : " + p.Value
			for width > indent && len(line) > width {
				sb.WriteString(line[:width])
				sb.WriteString("\r\n")
				line = strings.Repeat(" ", indent) + line[width:]
			}
			sb.WriteString(line)
			sb.WriteString("\r\n")
		}
		sb.WriteString("\r\n")
	}
	sb.WriteString("\r\n\r\n")
	return sb.String()
}

// FirefoxAndWinampReport is a batched report for two shortcuts.
var FirefoxAndWinampReport = FormatList(120,
	ShortcutBlock(`C:\Users\Public\Desktop\Firefox.lnk`, map[string]string{
		"TargetPath": `C:\Firefox\firefox.exe`,
	}),
	ShortcutBlock(`C:\Users\Public\Desktop\Winamp.lnk`, map[string]string{
		"TargetPath": `C:\Winamp\winamp.exe`,
	}),
)
