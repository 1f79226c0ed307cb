package commands

import (
	"errors"
	"time"

	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var (
	ErrArchiveSettledOrdersCommandIsNotConstructed = errors.New(
		"ArchiveSettledOrdersCommand must be created via NewArchiveSettledOrdersCommand constructor",
	)
)

const maxArchiveBatch = 500

// ArchiveSettledOrdersCommand archives requisitions that have been in
// AccountingProcessed since before the cutoff, at most Limit per run.
type ArchiveSettledOrdersCommand struct { //nolint:recvcheck //using for validation
	before time.Time
	limit  int

	guard guard.ConstructorGuard
}

func NewArchiveSettledOrdersCommand(before time.Time, limit int) (ArchiveSettledOrdersCommand, error) {
	if before.IsZero() {
		return ArchiveSettledOrdersCommand{}, errs.NewValueIsRequiredError("before")
	}
	if limit < 1 || limit > maxArchiveBatch {
		return ArchiveSettledOrdersCommand{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxArchiveBatch)
	}

	return ArchiveSettledOrdersCommand{before: before, limit: limit, guard: guard.NewConstructorGuard()}, nil
}

func (c ArchiveSettledOrdersCommand) Validate() error {
	return c.guard.Validate(ErrArchiveSettledOrdersCommandIsNotConstructed)
}

func (c ArchiveSettledOrdersCommand) Before() time.Time { return c.before }
func (c ArchiveSettledOrdersCommand) Limit() int        { return c.limit }
