// Package pipeline governs legal application stage transitions and records
// immutable stage history.
package pipeline

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/talent-pipeline/internal/errs"
	"github.com/jonathan/talent-pipeline/internal/types"
)

// TransitionRequest describes a requested stage change.
type TransitionRequest struct {
	To        types.PipelineStage
	ChangedBy string
	// Automated marks a system-driven transition. Automated transitions
	// bypass the adjacency check but are still recorded and still cannot
	// leave a terminal stage.
	Automated bool
	Notes     string
}

// Machine validates and applies stage transitions. It is stateless; the
// clock and ID generator are injected so callers own all ambient state.
type Machine struct {
	now   func() time.Time
	newID func() uuid.UUID
}

// NewMachine builds a machine with the given clock and ID generator. Nil
// arguments fall back to time.Now and uuid.New.
func NewMachine(now func() time.Time, newID func() uuid.UUID) *Machine {
	if now == nil {
		now = time.Now
	}
	if newID == nil {
		newID = uuid.New
	}
	return &Machine{now: now, newID: newID}
}

// Validate checks whether the transition is legal from the current stage
// without applying it.
func (m *Machine) Validate(current types.PipelineStage, req TransitionRequest) error {
	if !current.IsValid() {
		return errs.Validation("unknown current stage %q", current)
	}
	if !req.To.IsValid() {
		return errs.Validation("unknown target stage %q", req.To)
	}
	if current.IsTerminal() {
		return errs.Conflict("application already finalized in stage %q", current)
	}
	if req.To == current {
		return errs.Validation("application already in stage %q", current)
	}

	// Rejection is legal from any non-terminal stage, and automated
	// corrections bypass the adjacency rule.
	if req.To == types.StageRejected || req.Automated {
		return nil
	}

	if next, ok := nextStage(current); !ok || next != req.To {
		return errs.Validation("illegal transition %q -> %q: stages advance one step at a time", current, req.To)
	}
	return nil
}

// Apply validates the transition against the application's current status,
// appends a stage history entry, and updates the status. The caller is
// responsible for serializing concurrent transitions on the same
// application (see the tracker package).
func (m *Machine) Apply(app *types.Application, req TransitionRequest) (*types.StageHistoryEntry, error) {
	if app == nil {
		return nil, errs.NotFound("application")
	}
	if err := m.Validate(app.Status, req); err != nil {
		return nil, err
	}

	entry := types.StageHistoryEntry{
		ID:            m.newID(),
		ApplicationID: app.ID,
		FromStage:     app.Status,
		ToStage:       req.To,
		ChangedBy:     req.ChangedBy,
		Automated:     req.Automated,
		ChangedAt:     m.now(),
		Notes:         req.Notes,
	}
	app.StageHistory = append(app.StageHistory, entry)
	app.Status = req.To
	app.UpdatedAt = entry.ChangedAt
	return &entry, nil
}

// nextStage returns the single legal forward step from the given stage.
func nextStage(s types.PipelineStage) (types.PipelineStage, bool) {
	order := types.Stages()
	for i := 0; i < len(order)-1; i++ {
		if order[i] == s {
			next := order[i+1]
			if next == types.StageRejected {
				return "", false
			}
			return next, true
		}
	}
	return "", false
}
