package commands

import (
	"errors"

	"courier/internal/pkg/guard"
)

var ErrMarkOverdueInvoicesCommandIsNotConstructed = errors.New(
	"MarkOverdueInvoicesCommand must be created via NewMarkOverdueInvoicesCommand constructor",
)

// MarkOverdueInvoicesCommand represents the scheduled sweep that flags
// pending invoices past their due date. Issued by the job scheduler, not by
// a user, so it carries no actor.
type MarkOverdueInvoicesCommand struct {
	guard guard.ConstructorGuard
}

// NewMarkOverdueInvoicesCommand creates a command to run the overdue sweep.
func NewMarkOverdueInvoicesCommand() MarkOverdueInvoicesCommand {
	return MarkOverdueInvoicesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c MarkOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueInvoicesCommandIsNotConstructed)
}
