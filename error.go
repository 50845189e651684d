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

package inspect

import "strconv"

// ValidationError indicates that an operation was rejected because a
// precondition was not met.  No state has been mutated.  Reason names the
// unmet precondition, e.g. "checklist incomplete" or "open punches remain".
type ValidationError struct {
	Op     string
	Reason string
}

func (err *ValidationError) Error() string {
	if err.Op == "" {
		return err.Reason
	}
	return err.Op + ": " + err.Reason
}

// PersistenceError indicates that a write to the ledger, the handover store
// or a session document failed.  The operation is not committed; the caller
// must retry or abort explicitly.
type PersistenceError struct {
	Op  string
	Err error
}

func (err *PersistenceError) Error() string {
	return "cannot " + err.Op + ": " + err.Err.Error()
}

func (err *PersistenceError) Unwrap() error {
	return err.Err
}

// VersionError indicates that a session document was written by a newer
// schema revision than this build supports.  The load fails; the document is
// left untouched.
type VersionError struct {
	Version   int // the version found in the document
	Supported int // the highest version this build can read
}

func (err *VersionError) Error() string {
	return "session schema version " + strconv.Itoa(err.Version) +
		" not supported (have " + strconv.Itoa(err.Supported) + ")"
}
