package partnerrepo

import (
	"context"
	"errors"

	"supplychain/internal/adapters/out/postgres/pgerr"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/network"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormPartnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormPartnerRepository(db *gorm.DB, tracker aggregateTracker) *GormPartnerRepository {
	return &GormPartnerRepository{db: db, tracker: tracker}
}

func (r *GormPartnerRepository) Add(ctx context.Context, p *network.Partner) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewConflictErrorWithCause("partner", p.Code(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(p.Ref().ID(), p)
	return nil
}

func (r *GormPartnerRepository) Update(ctx context.Context, p *network.Partner) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).Model(&PartnerDTO{}).
		Where("id = ? AND type = ?", dto.ID, dto.Type).
		Updates(map[string]any{"name": dto.Name, "active": dto.Active})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError(dto.Type, p.Ref().ID().String())
	}

	r.tracker.TrackAggregate(p.Ref().ID(), p)
	return nil
}

// Get finds a partner of the reference's kind; a station id looked up as a
// supplier is not found.
func (r *GormPartnerRepository) Get(ctx context.Context, ref kernel.EntityRef) (*network.Partner, error) {
	if ref == nil {
		return nil, errs.NewValueIsRequiredError("entity")
	}
	if err := ref.ID().Validate(); err != nil {
		return nil, err
	}

	var dto PartnerDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ? AND type = ?", ref.ID().Raw(), ref.Kind().String()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(ref.Kind().String(), ref.ID().String())
		}
		return nil, err
	}

	return toDomain(dto)
}
