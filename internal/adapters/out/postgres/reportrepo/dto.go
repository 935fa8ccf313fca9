// Package reportrepo stores sales snapshots and aggregates the figures they hold.
package reportrepo

import (
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/report"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReportDTO struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Kind                  int             `gorm:"type:smallint;not null;index"`
	GeneratedAt           time.Time       `gorm:"not null;index"`
	PeriodFrom            time.Time       `gorm:"not null"`
	PeriodTo              time.Time       `gorm:"not null"`
	TotalOrders           int             `gorm:"type:int;not null"`
	TotalSales            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveredOrders       int             `gorm:"type:int;not null"`
	CompletedReservations int             `gorm:"type:int;not null"`
}

func (ReportDTO) TableName() string {
	return "reports"
}

func fromDomain(r *report.Report) ReportDTO {
	summary := r.Summary()
	return ReportDTO{
		ID:                    r.ID().Bytes(),
		Kind:                  int(r.Kind()),
		GeneratedAt:           r.GeneratedAt(),
		PeriodFrom:            r.From(),
		PeriodTo:              r.To(),
		TotalOrders:           summary.TotalOrders,
		TotalSales:            summary.TotalSales.Decimal(),
		DeliveredOrders:       summary.DeliveredOrders,
		CompletedReservations: summary.CompletedReservations,
	}
}

func toDomain(dto ReportDTO) (*report.Report, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sales, err := kernel.NewMoney(dto.TotalSales)
	if err != nil {
		return nil, err
	}

	return report.RestoreReport(id, report.Kind(dto.Kind), dto.GeneratedAt, dto.PeriodFrom, dto.PeriodTo, report.Summary{
		TotalOrders:           dto.TotalOrders,
		TotalSales:            sales,
		DeliveredOrders:       dto.DeliveredOrders,
		CompletedReservations: dto.CompletedReservations,
	})
}
