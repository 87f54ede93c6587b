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

// Package shortcuts reads the properties of Windows shortcut files (.lnk and
// .url) by asking PowerShell's WScript.Shell COM object for a Format-List
// report and parsing that report back into records.
package shortcuts

// Official WScript.Shell shortcut property names, as they appear in the
// PowerShell report.
const (
	FieldFullName         = "FullName"
	FieldArguments        = "Arguments"
	FieldDescription      = "Description"
	FieldHotkey           = "Hotkey"
	FieldIconLocation     = "IconLocation"
	FieldRelativePath     = "RelativePath"
	FieldTargetPath       = "TargetPath"
	FieldWindowStyle      = "WindowStyle"
	FieldWorkingDirectory = "WorkingDirectory"
)

// Fields is the fixed order properties are requested in. FullName must stay
// first, the parser uses it to find the start of each shortcut's block.
var Fields = []string{
	FieldFullName,
	FieldArguments,
	FieldDescription,
	FieldHotkey,
	FieldIconLocation,
	FieldRelativePath,
	FieldTargetPath,
	FieldWindowStyle,
	FieldWorkingDirectory,
}

// Properties is one shortcut as reported by WScript.Shell. Unset properties
// are empty strings, never missing.
type Properties struct {
	// Extra holds any labels in the report that aren't known properties.
	Extra            map[string]string `json:"Extra,omitempty" yaml:"Extra,omitempty" csv:"-"`
	FullName         string            `json:"FullName" yaml:"FullName" csv:"FullName"`
	Arguments        string            `json:"Arguments" yaml:"Arguments" csv:"Arguments"`
	Description      string            `json:"Description" yaml:"Description" csv:"Description"`
	Hotkey           string            `json:"Hotkey" yaml:"Hotkey" csv:"Hotkey"`
	IconLocation     string            `json:"IconLocation" yaml:"IconLocation" csv:"IconLocation"`
	RelativePath     string            `json:"RelativePath" yaml:"RelativePath" csv:"RelativePath"`
	TargetPath       string            `json:"TargetPath" yaml:"TargetPath" csv:"TargetPath"`
	WindowStyle      string            `json:"WindowStyle" yaml:"WindowStyle" csv:"WindowStyle"`
	WorkingDirectory string            `json:"WorkingDirectory" yaml:"WorkingDirectory" csv:"WorkingDirectory"`
}

func (p *Properties) field(name string) *string {
	switch name {
	case FieldFullName:
		return &p.FullName
	case FieldArguments:
		return &p.Arguments
	case FieldDescription:
		return &p.Description
	case FieldHotkey:
		return &p.Hotkey
	case FieldIconLocation:
		return &p.IconLocation
	case FieldRelativePath:
		return &p.RelativePath
	case FieldTargetPath:
		return &p.TargetPath
	case FieldWindowStyle:
		return &p.WindowStyle
	case FieldWorkingDirectory:
		return &p.WorkingDirectory
	default:
		return nil
	}
}

// Get returns the value of a known property, or "" if the name is unknown.
func (p *Properties) Get(name string) string {
	if f := p.field(name); f != nil {
		return *f
	}
	return ""
}

// Set assigns a known property and reports whether the name was recognized.
func (p *Properties) Set(name, value string) bool {
	f := p.field(name)
	if f == nil {
		return false
	}
	*f = value
	return true
}

// Map returns every known property keyed by its official name.
func (p *Properties) Map() map[string]string {
	m := make(map[string]string, len(Fields))
	for _, name := range Fields {
		m[name] = p.Get(name)
	}
	return m
}
