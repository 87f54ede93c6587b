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

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultContinuationIndent is how far Format-List indents wrapped values
// when the widest label is "WorkingDirectory" (16 chars plus " : "). It has
// only been observed on Windows PowerShell 5.1 with the en-US host.
const DefaultContinuationIndent = 19

// Parser decodes a Format-List report into Properties, one per shortcut.
type Parser struct {
	// Sentinel is the label that opens every shortcut's block.
	Sentinel string
	// Indent is the width of the space run that marks a wrapped value. Zero
	// infers it from the column the sentinel's value starts at.
	Indent int
}

// DefaultParser returns a Parser for the report built by BuildCommand.
func DefaultParser() Parser {
	return Parser{
		Sentinel: FieldFullName,
		Indent:   DefaultContinuationIndent,
	}
}

// DecodeOutput turns raw process output into text with "\n" line endings.
// A UTF-8 BOM is dropped and BOM-marked UTF-16 is decoded, anything else is
// read as UTF-8.
func DecodeOutput(raw []byte) string {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	text, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		text = raw
	}
	return normalizeNewlines(string(text))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// ParseBytes decodes raw process output and parses it.
func (p Parser) ParseBytes(raw []byte) []Properties {
	return p.Parse(DecodeOutput(raw))
}

// Parse returns one record per sentinel-delimited block in raw, in the order
// the blocks appear. It never fails: lines it can't make sense of are
// skipped and missing properties stay empty.
func (p Parser) Parse(raw string) []Properties {
	segments := p.SplitSegments(raw)
	if len(segments) == 0 {
		return nil
	}

	records := make([]Properties, 0, len(segments))
	for _, seg := range segments {
		records = append(records, p.decodeSegment(seg))
	}
	return records
}

// SplitSegments groups the lines of raw into blocks, each starting with a
// sentinel line. Anything before the first sentinel is dropped.
func (p Parser) SplitSegments(raw string) [][]string {
	sentinel := p.Sentinel
	if sentinel == "" {
		sentinel = FieldFullName
	}

	var segments [][]string
	for _, line := range strings.Split(normalizeNewlines(raw), "\n") {
		if isLabel(line, sentinel) {
			segments = append(segments, []string{line})
			continue
		}
		if len(segments) == 0 {
			continue
		}
		last := len(segments) - 1
		segments[last] = append(segments[last], line)
	}
	return segments
}

func isLabel(line, label string) bool {
	if line == "" || line[0] == ' ' || line[0] == '\t' {
		return false
	}
	key, _, ok := strings.Cut(line, ":")
	return ok && strings.TrimSpace(key) == label
}

func (p Parser) continuationPrefix(segment []string) string {
	indent := p.Indent
	if indent <= 0 && len(segment) > 0 {
		// "FullName         : C:\..." continues under the value column
		indent = strings.Index(segment[0], ":") + 2
	}
	if indent <= 0 {
		return ""
	}
	return strings.Repeat(" ", indent)
}

func (p Parser) decodeSegment(segment []string) Properties {
	var props Properties
	for _, line := range FoldContinuations(segment, p.continuationPrefix(segment)) {
		key, value, ok := SplitKeyValue(line)
		if !ok || key == "" {
			continue
		}
		if props.Set(key, value) {
			continue
		}
		if props.Extra == nil {
			props.Extra = make(map[string]string)
		}
		props.Extra[key] = value
	}
	return props
}

// FoldContinuations joins wrapped values back onto the line they overflowed
// from. Lines starting with prefix lose it and are appended to the previous
// kept line without a separator; blank lines are dropped. Running it again
// on its own output changes nothing.
func FoldContinuations(lines []string, prefix string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if prefix != "" && strings.HasPrefix(line, prefix) {
			rest := strings.TrimPrefix(line, prefix)
			if strings.TrimSpace(rest) == "" {
				continue
			}
			if len(out) > 0 {
				out[len(out)-1] += rest
				continue
			}
			for strings.HasPrefix(rest, prefix) {
				rest = rest[len(prefix):]
			}
			line = rest
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// SplitKeyValue splits a report line on its first colon. Values keep any
// later colons, so "TargetPath : C:\x.exe" yields "C:\x.exe". Both sides are
// trimmed and ok is false when the line has no colon.
func SplitKeyValue(line string) (key, value string, ok bool) {
	key, value, ok = strings.Cut(line, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}
