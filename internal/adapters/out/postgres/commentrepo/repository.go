package commentrepo

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/comment"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormCommentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCommentRepository(db *gorm.DB, tracker aggregateTracker) *GormCommentRepository {
	return &GormCommentRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCommentRepository) Add(ctx context.Context, aggregate *comment.Comment) error {
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

// Update writes the moderation flag together with the editable fields.
func (r *GormCommentRepository) Update(ctx context.Context, aggregate *comment.Comment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CommentDTO{}).Where("id = ?", dto.ID).Updates(map[string]any{
		"text":     dto.Text,
		"rating":   dto.Rating,
		"approved": dto.Approved,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("comment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCommentRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&CommentDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("comment", id.String())
	}

	return nil
}

func (r *GormCommentRepository) Get(ctx context.Context, id kernel.UUID) (*comment.Comment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CommentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("comment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
