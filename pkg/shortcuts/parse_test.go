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
	"testing"
	"unicode/utf16"

	"github.com/ZaparooProject/lnkprops/pkg/testing/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSplitKeyValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		line      string
		wantKey   string
		wantValue string
		wantOK    bool
	}{
		{
			name:      "colon in value",
			line:      `TargetPath : C:\Program Files\App\x.exe`,
			wantKey:   "TargetPath",
			wantValue: `C:\Program Files\App\x.exe`,
			wantOK:    true,
		},
		{
			name:      "missing value",
			line:      "Arguments : ",
			wantKey:   "Arguments",
			wantValue: "",
			wantOK:    true,
		},
		{
			name:      "missing value without trailing space",
			line:      "Arguments        :",
			wantKey:   "Arguments",
			wantValue: "",
			wantOK:    true,
		},
		{
			name:      "url with port",
			line:      "Description      : see https://example.com:8080/a",
			wantKey:   "Description",
			wantValue: "see https://example.com:8080/a",
			wantOK:    true,
		},
		{
			name:      "padded label",
			line:      `WorkingDirectory : C:\Winamp`,
			wantKey:   "WorkingDirectory",
			wantValue: `C:\Winamp`,
			wantOK:    true,
		},
		{
			name:   "no colon",
			line:   "garbage line",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			key, value, ok := SplitKeyValue(tt.line)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestFoldContinuations(t *testing.T) {
	t.Parallel()

	prefix := strings.Repeat(" ", DefaultContinuationIndent)

	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "no continuations",
			lines: []string{"A : 1", "B : 2"},
			want:  []string{"A : 1", "B : 2"},
		},
		{
			name:  "single continuation",
			lines: []string{"IconLocation     : C:\\ResolveIco", prefix + "n.exe,0", "B : 2"},
			want:  []string{"IconLocation     : C:\\ResolveIcon.exe,0", "B : 2"},
		},
		{
			name:  "consecutive continuations",
			lines: []string{"A : abc", prefix + "def", prefix + "ghi", "B : 2"},
			want:  []string{"A : abcdefghi", "B : 2"},
		},
		{
			name:  "continuation skips blank line",
			lines: []string{"A : abc", "", prefix + "def"},
			want:  []string{"A : abcdef"},
		},
		{
			name:  "space kept at wrap point",
			lines: []string{`A : C:\Program`, prefix + ` Files`},
			want:  []string{`A : C:\Program Files`},
		},
		{
			name:  "blank lines dropped",
			lines: []string{"", "A : 1", "   ", "B : 2", ""},
			want:  []string{"A : 1", "B : 2"},
		},
		{
			name:  "shorter indent is not a continuation",
			lines: []string{"A : 1", "   B : 2"},
			want:  []string{"A : 1", "   B : 2"},
		},
		{
			name:  "continuation with nothing before it",
			lines: []string{prefix + prefix + "orphan", "A : 1"},
			want:  []string{"orphan", "A : 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FoldContinuations(tt.lines, prefix))
		})
	}
}

func TestPropertyFoldContinuationsIdempotent(t *testing.T) {
	t.Parallel()
	prefix := strings.Repeat(" ", DefaultContinuationIndent)

	rapid.Check(t, func(t *rapid.T) {
		lines := rapid.SliceOf(rapid.OneOf(
			rapid.StringMatching(`[A-Za-z]{1,10} *: [ -~]{0,30}`),
			rapid.StringMatching(` {19,25}[ -~]{0,30}`),
			rapid.StringMatching(` {0,5}`),
		)).Draw(t, "lines")

		once := FoldContinuations(lines, prefix)
		twice := FoldContinuations(once, prefix)

		for _, l := range once {
			if strings.HasPrefix(l, prefix) {
				t.Fatalf("line %q still starts with the continuation prefix", l)
			}
		}
		if strings.Join(once, "\n") != strings.Join(twice, "\n") {
			t.Fatalf("not idempotent:\nonce:  %q\ntwice: %q", once, twice)
		}
	})
}

func TestParse_MultiFileBatch(t *testing.T) {
	t.Parallel()

	records := DefaultParser().Parse(fixtures.FirefoxAndWinampReport)

	require.Len(t, records, 2)
	assert.Equal(t, Properties{
		FullName:   `C:\Users\Public\Desktop\Firefox.lnk`,
		TargetPath: `C:\Firefox\firefox.exe`,
	}, records[0])
	assert.Equal(t, Properties{
		FullName:   `C:\Users\Public\Desktop\Winamp.lnk`,
		TargetPath: `C:\Winamp\winamp.exe`,
	}, records[1])
}

func TestParse_WrappedValue(t *testing.T) {
	t.Parallel()

	records := DefaultParser().Parse(fixtures.DaVinciReport)

	require.Len(t, records, 1)
	got := records[0]
	assert.Equal(t, `C:\Users\Owner\Desktop\DaVinci Resolve.lnk`, got.FullName)
	assert.Equal(t, fixtures.DaVinciIcon, got.IconLocation)
	assert.Equal(t, "Video Editor", got.Description)
	assert.Equal(t, "CTRL+SHIFT+F10", got.Hotkey)
	assert.Equal(t, "3", got.WindowStyle)
	assert.Equal(t, `C:\Program Files\Blackmagic Design\DaVinci Resolve\Resolve.exe`, got.TargetPath)
	assert.Equal(t, `C:\Program Files\Blackmagic Design\DaVinci Resolve\`, got.WorkingDirectory)
	assert.Empty(t, got.Arguments)
	assert.Empty(t, got.RelativePath)
	assert.Nil(t, got.Extra)
}

func TestParse_EdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, DefaultParser().Parse(""))
	})

	t.Run("no sentinel", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, DefaultParser().Parse("TargetPath : C:\\x.exe\r\nArguments : -v\r\n"))
	})

	t.Run("text before first sentinel is dropped", func(t *testing.T) {
		t.Parallel()

		raw := "WARNING: something\r\nTargetPath : C:\\junk.exe\r\n\r\nFullName : C:\\a.lnk\r\nTargetPath : C:\\a.exe\r\n"
		records := DefaultParser().Parse(raw)

		require.Len(t, records, 1)
		assert.Equal(t, `C:\a.lnk`, records[0].FullName)
		assert.Equal(t, `C:\a.exe`, records[0].TargetPath)
	})

	t.Run("segment without recognized fields keeps its slot", func(t *testing.T) {
		t.Parallel()

		raw := "FullName :\nnonsense\nFullName : C:\\b.lnk\n"
		records := DefaultParser().Parse(raw)

		require.Len(t, records, 2)
		assert.Equal(t, Properties{}, records[0])
		assert.Equal(t, `C:\b.lnk`, records[1].FullName)
	})

	t.Run("unknown labels go to extra", func(t *testing.T) {
		t.Parallel()

		records := DefaultParser().Parse("FullName : C:\\a.url\nShortcutKind : url\n")

		require.Len(t, records, 1)
		assert.Equal(t, map[string]string{"ShortcutKind": "url"}, records[0].Extra)
	})

	t.Run("lf line endings", func(t *testing.T) {
		t.Parallel()

		raw := strings.ReplaceAll(fixtures.FirefoxAndWinampReport, "\r\n", "\n")
		records := DefaultParser().Parse(raw)

		require.Len(t, records, 2)
		assert.Equal(t, `C:\Winamp\winamp.exe`, records[1].TargetPath)
	})

	t.Run("indented sentinel is not a segment start", func(t *testing.T) {
		t.Parallel()

		raw := "FullName : C:\\a.lnk\n" + strings.Repeat(" ", 19) + "FullName : tail\n"
		records := DefaultParser().Parse(raw)

		require.Len(t, records, 1)
		assert.Equal(t, `C:\a.lnkFullName : tail`, records[0].FullName)
	})
}

func TestParse_InferredIndent(t *testing.T) {
	t.Parallel()

	// A .url shortcut without Select-Object only reports two properties, so
	// Format-List pads labels to "TargetPath" instead.
	raw := "\r\n\r\nFullName   : C:\\Users\\Owner\\Desktop\\Zaparoo.url\r\n" +
		"TargetPath : https://zaparoo.org/docs/really/long/pa\r\n" +
		"             th/to/page\r\n\r\n"

	p := Parser{Sentinel: FieldFullName}
	records := p.Parse(raw)

	require.Len(t, records, 1)
	assert.Equal(t, "https://zaparoo.org/docs/really/long/path/to/page", records[0].TargetPath)
}

func TestDecodeOutput(t *testing.T) {
	t.Parallel()

	t.Run("plain utf8", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "FullName : C:\\ä.lnk\n", DecodeOutput([]byte("FullName : C:\\ä.lnk\r\n")))
	})

	t.Run("utf8 bom stripped", func(t *testing.T) {
		t.Parallel()
		raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte("FullName : x\r\n")...)
		assert.Equal(t, "FullName : x\n", DecodeOutput(raw))
	})

	t.Run("utf16le with bom", func(t *testing.T) {
		t.Parallel()

		units := utf16.Encode([]rune("FullName : C:\\日本.lnk\r\n"))
		raw := []byte{0xFF, 0xFE}
		for _, u := range units {
			raw = append(raw, byte(u), byte(u>>8))
		}

		assert.Equal(t, "FullName : C:\\日本.lnk\n", DecodeOutput(raw))
	})

	t.Run("lone carriage returns", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "a\nb\n", DecodeOutput([]byte("a\rb\r")))
	})
}

func TestParseBytes(t *testing.T) {
	t.Parallel()

	raw := append([]byte{0xEF, 0xBB, 0xBF}, []byte(fixtures.DaVinciReport)...)
	records := DefaultParser().ParseBytes(raw)

	require.Len(t, records, 1)
	assert.Equal(t, fixtures.DaVinciIcon, records[0].IconLocation)
}

// TestPropertyParsePreservesOrder renders N shortcuts the way PowerShell
// would, at a random console width, and checks N records come back in order.
func TestPropertyParsePreservesOrder(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "n")
		width := rapid.IntRange(40, 200).Draw(t, "width")

		type want struct{ name, target, args string }
		wants := make([]want, n)
		blocks := make([][]fixtures.Pair, n)
		for i := range n {
			w := want{
				name:   `C:\` + rapid.StringMatching(`[A-Za-z0-9_.'’-]{1,80}`).Draw(t, "name") + ".lnk",
				target: rapid.StringMatching(`[A-Za-z0-9\\:._/-]{0,150}`).Draw(t, "target"),
				args:   rapid.StringMatching(`[A-Za-z0-9=:-]{0,30}`).Draw(t, "args"),
			}
			wants[i] = w
			blocks[i] = fixtures.ShortcutBlock(w.name, map[string]string{
				"TargetPath": w.target,
				"Arguments":  w.args,
			})
		}

		records := DefaultParser().Parse(fixtures.FormatList(width, blocks...))

		if len(records) != n {
			t.Fatalf("got %d records, want %d", len(records), n)
		}
		for i, w := range wants {
			if records[i].FullName != w.name {
				t.Fatalf("record %d FullName = %q, want %q", i, records[i].FullName, w.name)
			}
			if records[i].TargetPath != w.target {
				t.Fatalf("record %d TargetPath = %q, want %q", i, records[i].TargetPath, w.target)
			}
			if records[i].Arguments != w.args {
				t.Fatalf("record %d Arguments = %q, want %q", i, records[i].Arguments, w.args)
			}
		}
	})
}
