package partnerrepo

import (
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/network"

	"github.com/google/uuid"
)

type PartnerDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Type   string    `gorm:"type:varchar(16);not null;index"`
	Code   string    `gorm:"type:varchar(32);not null;uniqueIndex"`
	Name   string    `gorm:"type:varchar(200);not null"`
	Active bool      `gorm:"not null;default:true"`
}

func (PartnerDTO) TableName() string {
	return "partners"
}

func fromDomain(p *network.Partner) PartnerDTO {
	return PartnerDTO{
		ID:     p.Ref().ID().Raw(),
		Type:   p.Ref().Kind().String(),
		Code:   p.Code(),
		Name:   p.Name(),
		Active: p.IsActive(),
	}
}

func toDomain(dto PartnerDTO) (*network.Partner, error) {
	kind, err := kernel.ParseEntityKind(dto.Type)
	if err != nil {
		return nil, err
	}
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ref, err := kernel.NewEntityRef(kind, id)
	if err != nil {
		return nil, err
	}
	return network.RestorePartner(ref, dto.Code, dto.Name, dto.Active)
}
