package commands

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/report"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrGenerateReportCommandIsNotConstructed = errors.New(
	"GenerateReportCommand must be created via NewGenerateReportCommand constructor",
)

// GenerateReportCommand snapshots the figures of the period of kind ending at now.
type GenerateReportCommand struct { //nolint:recvcheck //using for validation
	principal kernel.Principal
	reportID  kernel.UUID
	kind      report.Kind
	now       time.Time

	guard guard.ConstructorGuard
}

func NewGenerateReportCommand(
	principal kernel.Principal,
	reportID kernel.UUID,
	kind report.Kind,
	now time.Time,
) (GenerateReportCommand, error) {
	cmd := GenerateReportCommand{
		principal: principal,
		reportID:  reportID,
		kind:      kind,
		now:       now,
		guard:     guard.NewConstructorGuard(),
	}

	var nowErr error
	if now.IsZero() {
		nowErr = errs.NewValueIsRequiredError("now")
	}

	if err := errors.Join(
		principal.Validate(),
		reportID.Validate(),
		kind.Validate(),
		nowErr,
	); err != nil {
		return GenerateReportCommand{}, err
	}

	return cmd, nil
}

func (c GenerateReportCommand) Validate() error {
	return c.guard.Validate(ErrGenerateReportCommandIsNotConstructed)
}

func (c GenerateReportCommand) Principal() kernel.Principal {
	return c.principal
}

func (c GenerateReportCommand) ReportID() kernel.UUID {
	return c.reportID
}

func (c GenerateReportCommand) Kind() report.Kind {
	return c.kind
}

func (c GenerateReportCommand) Now() time.Time {
	return c.now
}
