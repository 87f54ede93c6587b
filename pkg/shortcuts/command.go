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

import (
	"strings"
)

const (
	// DefaultShell is the PowerShell executable used to query shortcuts.
	DefaultShell = "powershell.exe"
	// DefaultMaxCommandLength keeps a batch's script under the 32767
	// character CreateProcess limit, with room for the executable and flags.
	DefaultMaxCommandLength = 30000

	// outputPrelude switches PowerShell's stdout to UTF-8 so paths outside
	// the OEM code page come back intact.
	outputPrelude = "[Console]::OutputEncoding=[System.Text.Encoding]::UTF8;"
)

// singleQuotes are the characters PowerShell accepts as a single quote.
const singleQuotes = "'\u2018\u2019\u201a\u201b"

var literalEscaper = strings.NewReplacer(
	"'", "''",
	"\u2018", "\u2018\u2018",
	"\u2019", "\u2019\u2019",
	"\u201a", "\u201a\u201a",
	"\u201b", "\u201b\u201b",
)

// EscapeLiteral escapes a value for use inside a PowerShell single-quoted
// string. PowerShell ends such a string at the apostrophe and at the
// typographic quotes U+2018, U+2019, U+201A and U+201B, so every one of them
// is doubled.
func EscapeLiteral(s string) string {
	return literalEscaper.Replace(s)
}

// Fragment returns the PowerShell statement that reports every property in
// Fields for the shortcut at path. Select-Object pins the property set and
// order so every block in the report has the same labels.
func Fragment(path string) string {
	var sb strings.Builder
	sb.WriteString("(New-Object -COM WScript.Shell).CreateShortcut('")
	sb.WriteString(EscapeLiteral(path))
	sb.WriteString("') | Select-Object -Property ")
	sb.WriteString(strings.Join(Fields, ","))
	sb.WriteString(" | Format-List;")
	return sb.String()
}

// BuildScript concatenates the fragments for paths, in order. An empty list
// builds an empty script, which must not be executed.
func BuildScript(paths []string) string {
	var sb strings.Builder
	for _, p := range paths {
		sb.WriteString(Fragment(p))
	}
	return sb.String()
}

// BuildCommand returns the executable and arguments that run the script for
// paths through shell. It returns an empty name when there is nothing to run.
func BuildCommand(shell string, paths []string) (name string, args []string) {
	script := BuildScript(paths)
	if script == "" {
		return "", nil
	}
	if shell == "" {
		shell = DefaultShell
	}
	return shell, []string{
		"-NoProfile",
		"-NonInteractive",
		"-Command",
		outputPrelude + script,
	}
}

// Batches splits paths into ordered groups whose scripts fit in maxLen
// characters. A path too long to share a batch gets one of its own, and
// flattening the result gives back the input order.
func Batches(paths []string, maxLen int) [][]string {
	if len(paths) == 0 {
		return nil
	}
	if maxLen <= 0 {
		return [][]string{paths}
	}

	var batches [][]string
	var current []string
	size := len(outputPrelude)
	for _, p := range paths {
		n := len(Fragment(p))
		if len(current) > 0 && size+n > maxLen {
			batches = append(batches, current)
			current = nil
			size = len(outputPrelude)
		}
		current = append(current, p)
		size += n
	}
	if len(current) > 0 {
		batches = append(batches, current)
	}
	return batches
}
