package reportrepo

import (
	"context"
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/report"
	"restaurant/internal/core/domain/model/reservation"
	"restaurant/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type GormReportRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormReportRepository(db *gorm.DB, tracker aggregateTracker) *GormReportRepository {
	return &GormReportRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormReportRepository) Add(ctx context.Context, aggregate *report.Report) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormReportRepository) Get(ctx context.Context, id kernel.UUID) (*report.Report, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReportDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("report", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Summarize counts orders created in [from, to), the delivered ones among
// them with their sales, and reservations for that period marked completed.
func (r *GormReportRepository) Summarize(ctx context.Context, from, to time.Time) (report.Summary, error) {
	db := r.db.WithContext(ctx)

	var totalOrders, deliveredOrders, completedReservations int
	var sales decimal.Decimal

	err := db.Raw(`
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = ?),
			COALESCE(SUM(total) FILTER (WHERE status = ?), 0)
		FROM orders
		WHERE created_at >= ? AND created_at < ?
	`, int(order.Delivered), int(order.Delivered), from, to).Row().Scan(&totalOrders, &deliveredOrders, &sales)
	if err != nil {
		return report.Summary{}, err
	}

	err = db.Raw(`
		SELECT COUNT(*)
		FROM reservations
		WHERE status = ? AND reserved_for >= ? AND reserved_for < ?
	`, int(reservation.Completed), from, to).Row().Scan(&completedReservations)
	if err != nil {
		return report.Summary{}, err
	}

	totalSales, err := kernel.NewMoney(sales)
	if err != nil {
		return report.Summary{}, err
	}

	return report.Summary{
		TotalOrders:           totalOrders,
		TotalSales:            totalSales,
		DeliveredOrders:       deliveredOrders,
		CompletedReservations: completedReservations,
	}, nil
}
