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

package punch

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"seehuhn.de/go/inspect"
	"seehuhn.de/go/inspect/annotation"
	"seehuhn.de/go/inspect/category"
)

// CustodyChecker reports whether a cabinet is currently in production
// custody.  The handover workflow implements this.
type CustodyChecker interface {
	InProductionCustody(cabinetID string) (bool, error)
}

// OccurrenceSink receives category tallies for logged punches.
// [seehuhn.de/go/inspect/registry.Registry] implements this.
type OccurrenceSink interface {
	LogOccurrence(cabinetID, projectName, category, subcategory string) error
}

// BinderOptions configures a [Binder].
type BinderOptions struct {
	// CabinetID identifies the work unit the ledger belongs to.
	CabinetID string

	// ProjectName is used for the category tallies.
	ProjectName string

	// Role is the role of the acting user.  Logging and closing are
	// quality actions, implementing is a production action.
	Role inspect.Role

	// Ledger is the cabinet's defect ledger.  Required.
	Ledger Ledger

	// Custody gates the Implement transition.  Required for production
	// use; may be nil for a quality-side binder.
	Custody CustodyChecker

	// Occurrences, if non-nil, receives a category tally for every
	// logged punch.  Failures are logged and otherwise ignored; the
	// read model must never block logging.
	Occurrences OccurrenceSink

	// Logger receives lifecycle events.  Nil disables logging.
	Logger *zerolog.Logger

	// Now supplies timestamps.  Nil means [time.Now].
	Now func() time.Time
}

// Binder binds committed highlights to ledger rows and performs the punch
// lifecycle transitions.  One Binder serves one cabinet.
type Binder struct {
	cabinetID   string
	projectName string
	role        inspect.Role
	ledger      Ledger
	custody     CustodyChecker
	occurrences OccurrenceSink
	log         zerolog.Logger
	now         func() time.Time
}

// NewBinder creates a Binder for one cabinet's ledger.
func NewBinder(opt *BinderOptions) (*Binder, error) {
	if opt == nil || opt.Ledger == nil {
		return nil, fmt.Errorf("no ledger given")
	}
	log := zerolog.Nop()
	if opt.Logger != nil {
		log = opt.Logger.With().Str("cabinet", opt.CabinetID).Logger()
	}
	now := opt.Now
	if now == nil {
		now = time.Now
	}
	return &Binder{
		cabinetID:   opt.CabinetID,
		projectName: opt.ProjectName,
		role:        opt.Role,
		ledger:      opt.Ledger,
		custody:     opt.Custody,
		occurrences: opt.Occurrences,
		log:         log,
		now:         now,
	}, nil
}

// Log performs the Unlogged -> Logged transition.
//
// A ledger row is created for the highlight: the next serial number is
// allocated, the description is rendered from the category template (with
// the highlight's extracted text substituted into the first slot unless the
// caller supplied a value), the logged-by signature is stamped, and the
// template's checklist reference is marked NOK.  On success the highlight
// is linked to the new row; the link is permanent.
func (b *Binder) Log(hl *annotation.Highlight, tmpl *category.Template, values map[string]string, user string) (*Punch, error) {
	if b.role != inspect.Quality {
		return nil, &inspect.ValidationError{Op: "punch.Log", Reason: "logging is a quality action"}
	}
	if hl.Color != annotation.Orange {
		return nil, &inspect.ValidationError{Op: "punch.Log", Reason: "highlight is not orange"}
	}
	if hl.Serial != 0 {
		return nil, &inspect.ValidationError{Op: "punch.Log", Reason: "highlight already carries a punch"}
	}

	if values == nil {
		values = make(map[string]string)
	}
	if len(tmpl.Inputs) > 0 {
		first := tmpl.Inputs[0].Name
		if values[first] == "" && hl.Text != "" {
			values[first] = hl.Text
		}
	}
	desc, err := tmpl.Render(values)
	if err != nil {
		return nil, err
	}

	serial, err := b.ledger.NextSerial()
	if err != nil {
		return nil, &inspect.PersistenceError{Op: "allocate serial number", Err: err}
	}

	p := &Punch{
		Serial:      serial,
		Ref:         tmpl.Ref,
		Category:    tmpl.Category,
		Subcategory: tmpl.Name,
		Description: desc,
		Logged:      inspect.Stamp{By: user, At: b.now()},
	}
	if err := b.ledger.WriteRow(p); err != nil {
		return nil, &inspect.PersistenceError{Op: "write punch row", Err: err}
	}
	if err := b.ledger.MarkChecklist(p.Ref, ChecklistNOK); err != nil {
		// the punch row is already committed; the checklist mark is
		// best-effort and can be repeated during checklist review
		b.log.Warn().Err(err).Str("ref", p.Ref).Msg("cannot mark checklist NOK")
	}

	if err := hl.LinkPunch(serial); err != nil {
		return nil, err
	}

	if b.occurrences != nil {
		err := b.occurrences.LogOccurrence(b.cabinetID, b.projectName,
			p.Category, p.Subcategory)
		if err != nil {
			b.log.Warn().Err(err).Str("category", p.Category).
				Msg("cannot record category occurrence")
		}
	}

	b.log.Info().
		Int("srNo", p.Serial).
		Str("ref", p.Ref).
		Str("category", p.Category).
		Msg("punch logged")
	return p, nil
}

// Implement performs the Logged -> Implemented transition.
//
// The cabinet must be in production custody, i.e. quality must have handed
// it over and production must not have handed it back yet.
func (b *Binder) Implement(p *Punch, user, remark string) error {
	if b.role != inspect.Production {
		return &inspect.ValidationError{Op: "punch.Implement", Reason: "implementing is a production action"}
	}
	switch p.State() {
	case Unlogged:
		return &inspect.ValidationError{Op: "punch.Implement", Reason: "punch not logged"}
	case Implemented:
		return &inspect.ValidationError{Op: "punch.Implement", Reason: "punch already implemented"}
	case Closed:
		return &inspect.ValidationError{Op: "punch.Implement", Reason: "punch already closed"}
	}

	if b.custody == nil {
		return &inspect.ValidationError{Op: "punch.Implement", Reason: "not in production custody"}
	}
	ok, err := b.custody.InProductionCustody(b.cabinetID)
	if err != nil {
		return &inspect.PersistenceError{Op: "check production custody", Err: err}
	}
	if !ok {
		return &inspect.ValidationError{Op: "punch.Implement", Reason: "not in production custody"}
	}

	p.Implemented = inspect.Stamp{By: user, At: b.now()}
	if remark != "" {
		p.Remark = remark
	}
	if err := b.ledger.WriteRow(p); err != nil {
		p.Implemented = inspect.Stamp{}
		return &inspect.PersistenceError{Op: "write punch row", Err: err}
	}

	b.log.Info().Int("srNo", p.Serial).Msg("punch implemented")
	return nil
}

// Close performs the Implemented -> Closed transition and repaints the
// linked highlight from orange to green.
//
// hl must be the highlight linked to p.  A nil hl is accepted for punches
// whose highlight is not part of the loaded session.
func (b *Binder) Close(p *Punch, hl *annotation.Highlight, user string) error {
	if b.role != inspect.Quality {
		return &inspect.ValidationError{Op: "punch.Close", Reason: "closing is a quality action"}
	}
	switch p.State() {
	case Unlogged, Logged:
		return &inspect.ValidationError{Op: "punch.Close", Reason: "punch not implemented"}
	case Closed:
		return &inspect.ValidationError{Op: "punch.Close", Reason: "punch already closed"}
	}
	if hl != nil && hl.Serial != p.Serial {
		return &inspect.ValidationError{Op: "punch.Close", Reason: "highlight does not match punch"}
	}

	p.Closed = inspect.Stamp{By: user, At: b.now()}
	if err := b.ledger.WriteRow(p); err != nil {
		p.Closed = inspect.Stamp{}
		return &inspect.PersistenceError{Op: "write punch row", Err: err}
	}

	if hl != nil {
		if err := hl.Repaint(); err != nil {
			return err
		}
	}

	b.log.Info().Int("srNo", p.Serial).Msg("punch closed")
	return nil
}
