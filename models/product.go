package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name          string          `gorm:"not null;index" json:"name"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	StoreID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"storeId"`
	CategoryID    uuid.UUID       `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	SubcategoryID uuid.UUID       `gorm:"type:uuid;not null;index" json:"scategoryId"`
	Subcategory   *Subcategory    `gorm:"foreignKey:SubcategoryID" json:"scategory,omitempty"`
	IsFeatured    bool            `gorm:"default:false" json:"isFeatured"`
	IsArchived    bool            `gorm:"default:false" json:"isArchived"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
	Images        []ProductImage  `gorm:"foreignKey:ProductID" json:"images,omitempty"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
