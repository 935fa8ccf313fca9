package http

import (
	"net/http"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/report"

	"github.com/labstack/echo/v4"
)

const defaultReportsLimit = 20

func (s *Server) GetSalesReport(c echo.Context) error {
	query, err := queries.NewGetSalesReportQuery(principalFrom(c), time.Now().UTC())
	if err != nil {
		return err
	}

	result, err := s.handlers.GetSalesReport.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, salesReportResponse(result))
}

func (s *Server) GenerateReport(c echo.Context) error {
	var req GenerateReportRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	kind, err := report.ParseKind(req.Kind)
	if err != nil {
		return err
	}

	cmd, err := commands.NewGenerateReportCommand(principalFrom(c), kernel.NewUUID(), kind, time.Now().UTC())
	if err != nil {
		return err
	}

	r, err := s.handlers.GenerateReport.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, reportResponse(r))
}

// ListReports handles GET /api/v1/reports?limit=N.
func (s *Server) ListReports(c echo.Context) error {
	limit, err := queryInt(c, "limit", defaultReportsLimit)
	if err != nil {
		return err
	}

	query, err := queries.NewListReportsQuery(principalFrom(c), limit)
	if err != nil {
		return err
	}

	views, err := s.handlers.ListReports.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, reportViewsResponse(views))
}
