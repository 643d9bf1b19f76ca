package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalog entry. Category is normalized to lowercase by the
// service layer before it reaches the store.
type Product struct {
	ID           uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Name         string          `json:"name" gorm:"size:255;not null"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(12,2);not null"`
	Category     string          `json:"category" gorm:"size:255;index"`
	Images       []string        `json:"images" gorm:"serializer:json"`
	Stock        int             `json:"stock" gorm:"default:0"`
	IsActive     bool            `json:"is_active" gorm:"default:true"`
	DisplayOrder int             `json:"display_order" gorm:"default:0"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
