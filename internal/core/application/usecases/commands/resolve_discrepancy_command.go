package commands

import (
	"errors"

	"procurement/internal/core/domain/model/discrepancy"
	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/errs"
	"procurement/internal/pkg/guard"
)

var ErrResolveDiscrepancyCommandIsNotConstructed = errors.New(
	"ResolveDiscrepancyCommand must be created via NewResolveDiscrepancyCommand constructor",
)

// ResolveDiscrepancyCommand represents a request to close a discrepancy case
// with an agreed resolution action and explanatory notes.
type ResolveDiscrepancyCommand struct { //nolint:recvcheck //using for validation
	caseID kernel.UUID
	action discrepancy.ResolutionAction
	notes  string
	actor  string

	guard guard.ConstructorGuard
}

// NewResolveDiscrepancyCommand creates a command to resolve a case. Notes
// are required: the audit trail must say what was agreed with the vendor.
func NewResolveDiscrepancyCommand(
	caseID kernel.UUID,
	action discrepancy.ResolutionAction,
	notes string,
	actor string,
) (ResolveDiscrepancyCommand, error) {
	cmd := ResolveDiscrepancyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaseID(caseID),
		cmd.setAction(action),
		cmd.setNotes(notes),
		cmd.setActor(actor),
	); err != nil {
		return ResolveDiscrepancyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveDiscrepancyCommand) Validate() error {
	return c.guard.Validate(ErrResolveDiscrepancyCommandIsNotConstructed)
}

// CaseID returns the case to resolve.
func (c ResolveDiscrepancyCommand) CaseID() kernel.UUID {
	return c.caseID
}

// Action returns the agreed resolution action.
func (c ResolveDiscrepancyCommand) Action() discrepancy.ResolutionAction {
	return c.action
}

// Notes returns the explanatory notes.
func (c ResolveDiscrepancyCommand) Notes() string {
	return c.notes
}

// Actor returns who resolved the case.
func (c ResolveDiscrepancyCommand) Actor() string {
	return c.actor
}

func (c *ResolveDiscrepancyCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	c.caseID = caseID
	return nil
}

func (c *ResolveDiscrepancyCommand) setAction(action discrepancy.ResolutionAction) error {
	if err := action.Validate(); err != nil {
		return err
	}
	c.action = action
	return nil
}

func (c *ResolveDiscrepancyCommand) setNotes(notes string) error {
	if notes == "" {
		return errs.NewValueIsRequiredError("notes")
	}
	c.notes = notes
	return nil
}

func (c *ResolveDiscrepancyCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
