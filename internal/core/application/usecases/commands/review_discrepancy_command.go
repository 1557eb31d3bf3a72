package commands

import (
	"errors"

	"procurement/internal/core/domain/model/kernel"
	"procurement/internal/pkg/guard"
)

var ErrReviewDiscrepancyCommandIsNotConstructed = errors.New(
	"ReviewDiscrepancyCommand must be created via NewReviewDiscrepancyCommand constructor",
)

// ReviewDiscrepancyCommand represents a request to pick up a reported
// discrepancy case for review.
type ReviewDiscrepancyCommand struct { //nolint:recvcheck //using for validation
	caseID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReviewDiscrepancyCommand creates a command to start reviewing a case.
func NewReviewDiscrepancyCommand(caseID kernel.UUID) (ReviewDiscrepancyCommand, error) {
	cmd := ReviewDiscrepancyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setCaseID(caseID); err != nil {
		return ReviewDiscrepancyCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewDiscrepancyCommand) Validate() error {
	return c.guard.Validate(ErrReviewDiscrepancyCommandIsNotConstructed)
}

// CaseID returns the case to review.
func (c ReviewDiscrepancyCommand) CaseID() kernel.UUID {
	return c.caseID
}

func (c *ReviewDiscrepancyCommand) setCaseID(caseID kernel.UUID) error {
	if err := caseID.Validate(); err != nil {
		return err
	}
	c.caseID = caseID
	return nil
}
