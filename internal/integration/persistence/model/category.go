// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/goals/internal/domain/entity"
)

// CategoryModel maps the categories table. Rows are written by the category
// service; goals only read them, and soft-deleted rows are ignored.
type CategoryModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"type:varchar(50);not null"`
	Color     string         `gorm:"type:varchar(7);default:'#6366F1'"`
	Icon      string         `gorm:"type:varchar(50);default:'tag'"`
	OwnerID   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Type      string         `gorm:"type:varchar(10);not null"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName returns the table name for the CategoryModel.
func (CategoryModel) TableName() string {
	return "categories"
}

// ToEntity keeps the fields goal and transaction responses display.
func (m *CategoryModel) ToEntity() *entity.Category {
	return &entity.Category{
		ID:      m.ID,
		Name:    m.Name,
		Color:   m.Color,
		Icon:    m.Icon,
		OwnerID: m.OwnerID,
		Type:    entity.CategoryType(m.Type),
	}
}
