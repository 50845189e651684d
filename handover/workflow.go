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

package handover

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"seehuhn.de/go/inspect"
	"seehuhn.de/go/inspect/punch"
	"seehuhn.de/go/inspect/registry"
)

// Meta carries the denormalized cabinet metadata that is copied into each
// record, so that queue listings need no session lookup.
type Meta struct {
	ProjectName  string
	SalesOrderNo string
	SessionPath  string
}

// StatusSink receives cabinet lifecycle status changes.  [registry.Registry]
// implements this.
type StatusSink interface {
	SetStatus(cabinetID, status string) error
}

// WorkflowOptions configures a [Workflow].
type WorkflowOptions struct {
	// Role is the role of the acting user.  Handing a cabinet to
	// production and verifying rework are quality actions, handing back
	// is a production action.
	Role inspect.Role

	// Store persists the handover records.  Required.
	Store Store

	// ChecklistDone reports whether the cabinet's review checklist is
	// fully filled in.  Nil means no checklist gate.
	ChecklistDone func(cabinetID string) (bool, error)

	// Punches returns the cabinet's current punch list, used for the
	// record's punch counts and for the open-punch gate on handback.
	// Nil is treated as an empty list.
	Punches func(cabinetID string) ([]*punch.Punch, error)

	// Status, if non-nil, receives cabinet status changes.  Failures are
	// logged and otherwise ignored; the read model must never block a
	// transfer.
	Status StatusSink

	// Logger receives transfer events.  Nil disables logging.
	Logger *zerolog.Logger

	// Now supplies timestamps.  Nil means [time.Now].
	Now func() time.Time
}

// Workflow performs the custody transfers between quality and production.
type Workflow struct {
	role      inspect.Role
	store     Store
	checklist func(cabinetID string) (bool, error)
	punches   func(cabinetID string) ([]*punch.Punch, error)
	status    StatusSink
	log       zerolog.Logger
	now       func() time.Time
}

var _ punch.CustodyChecker = (*Workflow)(nil)

// NewWorkflow creates a Workflow.
func NewWorkflow(opt *WorkflowOptions) (*Workflow, error) {
	if opt == nil || opt.Store == nil {
		return nil, fmt.Errorf("no store given")
	}
	log := zerolog.Nop()
	if opt.Logger != nil {
		log = *opt.Logger
	}
	now := opt.Now
	if now == nil {
		now = time.Now
	}
	return &Workflow{
		role:      opt.Role,
		store:     opt.Store,
		checklist: opt.ChecklistDone,
		punches:   opt.Punches,
		status:    opt.Status,
		log:       log,
		now:       now,
	}, nil
}

// HandToProduction transfers custody of a cabinet to production for rework.
//
// The transfer is rejected while the review checklist is incomplete, and
// while an earlier transfer in the same direction is still pending.  A
// stale pending handback, left over when a verified cabinet re-entered
// inspection, is resolved first.
func (w *Workflow) HandToProduction(cabinetID string, meta Meta, user string) (*Record, error) {
	if w.role != inspect.Quality {
		return nil, &inspect.ValidationError{Op: "handover.HandToProduction", Reason: "not a quality action"}
	}
	if w.checklist != nil {
		done, err := w.checklist(cabinetID)
		if err != nil {
			return nil, &inspect.PersistenceError{Op: "read checklist", Err: err}
		}
		if !done {
			return nil, &inspect.ValidationError{Op: "handover.HandToProduction", Reason: "checklist incomplete"}
		}
	}
	pending, err := w.store.Pending(cabinetID, QualityToProduction)
	if err != nil {
		return nil, &inspect.PersistenceError{Op: "read handover records", Err: err}
	}
	if pending != nil {
		return nil, &inspect.ValidationError{Op: "handover.HandToProduction", Reason: "handover already pending"}
	}

	// A cabinet that was verified and then re-opened may still carry a
	// pending handback from the previous cycle.
	stale, err := w.store.Pending(cabinetID, ProductionToQuality)
	if err != nil {
		return nil, &inspect.PersistenceError{Op: "read handover records", Err: err}
	}
	if stale != nil {
		stale.Status = StatusVerified
		stale.ResolvedBy = user
		stale.ResolvedAt = w.now()
		stale.Notes = "re-opened for quality inspection"
		err = w.store.Update(stale)
		if err != nil {
			return nil, &inspect.PersistenceError{Op: "resolve stale handback", Err: err}
		}
	}

	total, open, _, closed, err := w.counts(cabinetID)
	if err != nil {
		return nil, err
	}
	rec := &Record{
		CabinetID:     cabinetID,
		Direction:     QualityToProduction,
		Status:        StatusPending,
		ProjectName:   meta.ProjectName,
		SalesOrderNo:  meta.SalesOrderNo,
		SessionPath:   meta.SessionPath,
		TotalPunches:  total,
		OpenPunches:   open,
		ClosedPunches: closed,
		InitiatedBy:   user,
		InitiatedAt:   w.now(),
	}
	err = w.store.Create(rec)
	if err != nil {
		return nil, &inspect.PersistenceError{Op: "create handover record", Err: err}
	}
	w.setStatus(cabinetID, registry.StatusHandedToProduction)
	w.log.Info().
		Str("cabinet", cabinetID).
		Str("user", user).
		Int("open", open).
		Msg("handed to production")
	return rec, nil
}

// HandBack returns a reworked cabinet to quality for verification.
//
// The handback is rejected while production does not hold the cabinet, and
// while any punch is still Logged but not Implemented.  The pending
// quality-to-production record is resolved and the complementary pending
// handback record is created.
func (w *Workflow) HandBack(cabinetID, user, remarks string) (*Record, error) {
	if w.role != inspect.Production {
		return nil, &inspect.ValidationError{Op: "handover.HandBack", Reason: "not a production action"}
	}
	pending, err := w.store.Pending(cabinetID, QualityToProduction)
	if err != nil {
		return nil, &inspect.PersistenceError{Op: "read handover records", Err: err}
	}
	if pending == nil {
		return nil, &inspect.ValidationError{Op: "handover.HandBack", Reason: "not in production custody"}
	}
	total, open, _, closed, err := w.counts(cabinetID)
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, &inspect.ValidationError{Op: "handover.HandBack", Reason: "open punches remain"}
	}

	pending.Status = StatusCompleted
	pending.ResolvedBy = user
	pending.ResolvedAt = w.now()
	pending.Notes = remarks
	err = w.store.Update(pending)
	if err != nil {
		return nil, &inspect.PersistenceError{Op: "resolve handover record", Err: err}
	}
	rec := &Record{
		CabinetID:     cabinetID,
		Direction:     ProductionToQuality,
		Status:        StatusPending,
		ProjectName:   pending.ProjectName,
		SalesOrderNo:  pending.SalesOrderNo,
		SessionPath:   pending.SessionPath,
		TotalPunches:  total,
		OpenPunches:   open,
		ClosedPunches: closed,
		InitiatedBy:   user,
		InitiatedAt:   w.now(),
		Notes:         remarks,
	}
	err = w.store.Create(rec)
	if err != nil {
		return nil, &inspect.PersistenceError{Op: "create handback record", Err: err}
	}
	w.setStatus(cabinetID, registry.StatusBeingClosedByQuality)
	w.log.Info().
		Str("cabinet", cabinetID).
		Str("user", user).
		Msg("handed back to quality")
	return rec, nil
}

// Verify resolves a pending handback.  With close set the cabinet is
// closed for good; otherwise it is marked verified and may re-enter the
// inspection cycle later.
func (w *Workflow) Verify(cabinetID, user string, close bool, notes string) (*Record, error) {
	if w.role != inspect.Quality {
		return nil, &inspect.ValidationError{Op: "handover.Verify", Reason: "not a quality action"}
	}
	pending, err := w.store.Pending(cabinetID, ProductionToQuality)
	if err != nil {
		return nil, &inspect.PersistenceError{Op: "read handover records", Err: err}
	}
	if pending == nil {
		return nil, &inspect.ValidationError{Op: "handover.Verify", Reason: "no handback pending"}
	}
	if close {
		pending.Status = StatusClosed
	} else {
		pending.Status = StatusVerified
	}
	pending.ResolvedBy = user
	pending.ResolvedAt = w.now()
	if notes != "" {
		pending.Notes = notes
	}
	err = w.store.Update(pending)
	if err != nil {
		return nil, &inspect.PersistenceError{Op: "resolve handback record", Err: err}
	}
	if close {
		w.setStatus(cabinetID, registry.StatusClosed)
	} else {
		w.setStatus(cabinetID, registry.StatusVerified)
	}
	w.log.Info().
		Str("cabinet", cabinetID).
		Str("user", user).
		Bool("close", close).
		Msg("rework verified")
	return pending, nil
}

// InProductionCustody implements the [punch.CustodyChecker] interface:
// production holds a cabinet from the moment quality hands it over until
// production hands it back.
func (w *Workflow) InProductionCustody(cabinetID string) (bool, error) {
	toProd, err := w.store.Pending(cabinetID, QualityToProduction)
	if err != nil {
		return false, err
	}
	if toProd == nil {
		return false, nil
	}
	toQual, err := w.store.Pending(cabinetID, ProductionToQuality)
	if err != nil {
		return false, err
	}
	return toQual == nil, nil
}

func (w *Workflow) counts(cabinetID string) (total, open, implemented, closed int, err error) {
	if w.punches == nil {
		return 0, 0, 0, 0, nil
	}
	punches, err := w.punches(cabinetID)
	if err != nil {
		return 0, 0, 0, 0, &inspect.PersistenceError{Op: "read punch list", Err: err}
	}
	for _, p := range punches {
		total++
		switch p.State() {
		case punch.Logged:
			open++
		case punch.Implemented:
			implemented++
		case punch.Closed:
			closed++
		}
	}
	return total, open, implemented, closed, nil
}

func (w *Workflow) setStatus(cabinetID, status string) {
	if w.status == nil {
		return
	}
	err := w.status.SetStatus(cabinetID, status)
	if err != nil {
		w.log.Warn().
			Err(err).
			Str("cabinet", cabinetID).
			Str("status", status).
			Msg("cannot update cabinet registry")
	}
}
