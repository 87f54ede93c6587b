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

// Command makezip packages a built lnkprops binary with a README and a
// default config file.
//
//	go run ./scripts/makezip <build_dir> <app_bin> <zip_name>
package main

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZaparooProject/lnkprops/pkg/config"
	toml "github.com/pelletier/go-toml/v2"
)

const readme = `lnkprops
========

Prints the properties of Windows shortcut files (.lnk and .url).

    lnkprops.exe [-format json|yaml|csv] [-translate] <shortcut> [shortcut...]
    lnkprops.exe -raw report.txt

config.toml next to this file is an example. The real config lives in
%APPDATA%\lnkprops\config.toml, or wherever LNKPROPS_CFG points.
`

type zipEntry struct {
	path    string
	arcname string
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 3 {
		return errors.New("usage: makezip <build_dir> <app_bin> <zip_name>")
	}
	buildDir, appBin, zipName := args[0], args[1], args[2]

	if info, err := os.Stat(buildDir); err != nil || !info.IsDir() {
		return fmt.Errorf("build directory %q does not exist", buildDir)
	}

	appPath := filepath.Join(buildDir, appBin)
	if _, err := os.Stat(appPath); err != nil {
		return fmt.Errorf("binary %q does not exist", appPath)
	}

	readmePath := filepath.Join(buildDir, "README.txt")
	if err := writeIfMissing(readmePath, []byte(strings.ReplaceAll(readme, "\n", "\r\n"))); err != nil {
		return err
	}

	cfgPath := filepath.Join(buildDir, config.CfgFile)
	defaults, err := toml.Marshal(config.BaseDefaults)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}
	if err := writeIfMissing(cfgPath, defaults); err != nil {
		return err
	}

	zipPath := filepath.Join(buildDir, zipName)
	_ = os.Remove(zipPath)

	return createZipFile(zipPath, []zipEntry{
		{appPath, filepath.Base(appPath)},
		{readmePath, filepath.Base(readmePath)},
		{cfgPath, filepath.Base(cfgPath)},
	})
}

func writeIfMissing(path string, data []byte) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // release artifact
		return fmt.Errorf("error writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

func createZipFile(zipPath string, entries []zipEntry) (err error) {
	zipFile, err := os.Create(zipPath)
	if err != nil {
		return fmt.Errorf("error creating zip file: %w", err)
	}
	defer func() {
		if closeErr := zipFile.Close(); err == nil && closeErr != nil {
			err = closeErr
		}
	}()

	zipWriter := zip.NewWriter(zipFile)
	for _, entry := range entries {
		if err := addFileToZip(zipWriter, entry.path, entry.arcname); err != nil {
			_ = zipWriter.Close()
			return fmt.Errorf("error adding %s to zip: %w", entry.arcname, err)
		}
	}
	if err := zipWriter.Close(); err != nil {
		return fmt.Errorf("error finishing zip: %w", err)
	}
	return nil
}

func addFileToZip(zipWriter *zip.Writer, filePath, arcname string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return err
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	info, err := file.Stat()
	if err != nil {
		return err
	}

	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}
	header.Name = arcname
	header.Method = zip.Deflate

	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = io.Copy(writer, file)
	return err
}
