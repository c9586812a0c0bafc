package dbmodels

import (
	"time"

	"gorm.io/gorm"
)

// BaseModel общие поля справочников: автоинкрементный ИД, метки времени и мягкое удаление.
type BaseModel struct {
	ID        uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}
