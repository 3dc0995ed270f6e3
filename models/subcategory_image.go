package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubcategoryImage struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	SubcategoryID uuid.UUID      `gorm:"type:uuid;not null;index" json:"scategoryId"`
	URL           string         `gorm:"not null" json:"url"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (i *SubcategoryImage) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
