package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseModel mirrors the 'courses' table. OwnerID references users.id.
type CourseModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title           string    `gorm:"type:varchar(255);not null"`
	Description     string    `gorm:"type:text;not null"`
	EstimatedTime   string    `gorm:"type:varchar(255)"`
	MaterialsNeeded string    `gorm:"type:text"`
	OwnerID         uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt       time.Time `gorm:"index"`
	UpdatedAt       time.Time

	Owner *UserModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (CourseModel) TableName() string {
	return "courses"
}

// AllModels lists every persisted model in migration order.
func AllModels() []any {
	return []any{&UserModel{}, &CourseModel{}}
}
