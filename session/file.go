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

package session

import (
	"os"
	"path/filepath"

	"seehuhn.de/go/inspect"
)

// SaveFile writes the session to the given path.
//
// The document is written to a temporary file in the same directory and
// renamed into place, so that an interrupted save never leaves a truncated
// document behind.
func SaveFile(path string, s *Session) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return &inspect.PersistenceError{Op: "save session", Err: err}
	}
	tmpName := tmp.Name()

	err = Save(tmp, s)
	if err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	err = tmp.Close()
	if err != nil {
		os.Remove(tmpName)
		return &inspect.PersistenceError{Op: "save session", Err: err}
	}
	err = os.Rename(tmpName, path)
	if err != nil {
		os.Remove(tmpName)
		return &inspect.PersistenceError{Op: "save session", Err: err}
	}
	return nil
}

// LoadFile reads a session document from the given path.
func LoadFile(path string) (*Session, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, &inspect.PersistenceError{Op: "load session", Err: err}
	}
	defer fd.Close()
	return Load(fd)
}
