// seehuhn.de/go/inspect - annotation, punch and handover tracking for drawing inspection
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package inspect coordinates a manufacturing quality-inspection process.
//
// Inspectors mark defects (highlighter strokes, freehand marks, text notes)
// on technical drawings.  An orange highlight can be bound to a "punch", a
// row in an external defect ledger which advances through a strictly forward
// lifecycle: logged, implemented, closed.  Custody of a work unit (a
// "cabinet") is transferred between the Quality and Production roles through
// an append-only handover workflow; handover eligibility is gated by the
// punch states, and closing a punch repaints its highlight from orange to
// green.
//
// The engine is split into one package per concern:
//
//   - [seehuhn.de/go/inspect/coord] maps between page space and view space.
//   - [seehuhn.de/go/inspect/annotation] holds the per-page annotation store.
//   - [seehuhn.de/go/inspect/ocr] defines the text-extraction contract.
//   - [seehuhn.de/go/inspect/category] loads the defect category tree.
//   - [seehuhn.de/go/inspect/punch] drives the punch lifecycle.
//   - [seehuhn.de/go/inspect/handover] transfers custody between roles.
//   - [seehuhn.de/go/inspect/registry] is the dashboard read model.
//   - [seehuhn.de/go/inspect/session] serializes sessions for recovery.
//
// This root package contains the vocabulary shared by all of them: roles,
// signature stamps, and the error taxonomy.
//
// The engine is single-threaded.  All mutations happen on one
// interaction goroutine; serial-number allocation and the handover
// idempotency guards assume a single writer per cabinet.  Opening the same
// cabinet from two processes at once is unsupported.
package inspect
