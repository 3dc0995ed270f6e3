package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store is the tenant root. Every catalog record hangs off a store, and
// every mutation must come from the store's owner.
type Store struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name       string         `gorm:"not null" json:"name"`
	Slug       string         `gorm:"index" json:"slug"`
	UserID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"userId"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
	Categories []Category     `gorm:"foreignKey:StoreID" json:"categories,omitempty"`
	Products   []Product      `gorm:"foreignKey:StoreID" json:"products,omitempty"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
