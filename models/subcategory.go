package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subcategory is a catalog grouping nested under a category. It carries its
// own image collection, which is only ever written as a whole: creates insert
// the submitted list, updates replace it wholesale.
type Subcategory struct {
	ID         uuid.UUID          `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string             `gorm:"not null;index" json:"name"`
	StoreID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"storeId"`
	CategoryID uuid.UUID          `gorm:"type:uuid;not null;index" json:"categoryId"`
	Category   *Category          `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt  time.Time          `json:"createdAt"`
	UpdatedAt  time.Time          `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt     `gorm:"index" json:"-"`
	Images     []SubcategoryImage `gorm:"foreignKey:SubcategoryID" json:"simages,omitempty"`
	Products   []Product          `gorm:"foreignKey:SubcategoryID" json:"products,omitempty"`
}

func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
