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

//go:build !deadlock

// Package syncutil holds the RWMutex used for shared config state. Building
// with -tags=deadlock swaps in go-deadlock so recursive or stuck locks panic.
package syncutil

import "sync"

// DeadlockEnabled reports whether locks are checked by go-deadlock.
const DeadlockEnabled = false

// RWMutex is a plain reader/writer lock.
type RWMutex = sync.RWMutex //nolint:forbidigo // this package wraps sync.RWMutex
