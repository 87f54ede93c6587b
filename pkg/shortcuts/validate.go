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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
)

// Path validation errors.
var (
	ErrEmptyPath    = errors.New("path is empty")
	ErrBadExtension = errors.New("path must point to a .lnk or .url file")
	ErrNotFound     = errors.New("shortcut file does not exist")
)

// Extensions are the shortcut file types that can be queried.
var Extensions = []string{".lnk", ".url"}

type pathRequest struct {
	Path string `validate:"required,shortcut"`
}

// Validator checks candidate paths and turns them into absolute, cleaned
// paths of shortcut files that exist.
type Validator struct {
	fs       afero.Fs
	validate *validator.Validate
}

// NewValidator returns a Validator backed by fs, or the OS filesystem when
// fs is nil.
func NewValidator(fs afero.Fs) *Validator {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("shortcut", validateShortcutExt)
	return &Validator{fs: fs, validate: v}
}

func validateShortcutExt(fl validator.FieldLevel) bool {
	return HasShortcutExt(fl.Field().String())
}

// HasShortcutExt reports whether path ends in one of Extensions, ignoring
// case as Windows does.
func HasShortcutExt(path string) bool {
	ext := filepath.Ext(path)
	for _, e := range Extensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// Normalize validates path and returns its absolute, cleaned form.
func (v *Validator) Normalize(path string) (string, error) {
	if err := v.validate.Struct(pathRequest{Path: path}); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			switch verrs[0].Tag() {
			case "required":
				return "", ErrEmptyPath
			case "shortcut":
				return "", fmt.Errorf("%w: %s", ErrBadExtension, path)
			}
		}
		return "", fmt.Errorf("failed to validate path: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path %s: %w", path, err)
	}
	abs = filepath.Clean(abs)

	info, err := v.fs.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, abs)
		}
		return "", fmt.Errorf("failed to stat %s: %w", abs, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s is a directory", ErrNotFound, abs)
	}

	return abs, nil
}
