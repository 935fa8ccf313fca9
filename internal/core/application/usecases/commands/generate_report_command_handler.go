package commands

import (
	"context"

	"restaurant/internal/core/domain/model/report"
	"restaurant/internal/core/ports"
)

// GenerateReportCommandHandler summarizes the period and stores the snapshot
// in one transaction.
type GenerateReportCommandHandler struct {
	uowFactory ReportUoWFactory
	authorizer ports.Authorizer
}

func NewGenerateReportCommandHandler(uowFactory ReportUoWFactory, authorizer ports.Authorizer) GenerateReportCommandHandler {
	return GenerateReportCommandHandler{
		uowFactory: uowFactory,
		authorizer: authorizer,
	}
}

func (h *GenerateReportCommandHandler) Handle(ctx context.Context, cmd GenerateReportCommand) (*report.Report, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.authorizer.Authorize(ctx, cmd.Principal(), ports.ObjectReports, ports.ActionGenerate); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ReportRepository()
	from, to := cmd.Kind().Period(cmd.Now())

	summary, err := repo.Summarize(ctx, from, to)
	if err != nil {
		return nil, err
	}

	r, err := report.NewReport(cmd.ReportID(), cmd.Kind(), cmd.Now(), summary)
	if err != nil {
		return nil, err
	}

	if err = repo.Add(ctx, r); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return r, nil
}
