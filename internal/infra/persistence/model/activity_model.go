package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// UserActivityModel is the GORM-specific struct for the 'user_activity' table.
// Each row is one tracked visitor interaction.
type UserActivityModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SessionID   string    `gorm:"type:varchar(64);not null;index"`
	Kind        string    `gorm:"column:activity_type;type:varchar(32);not null;index"`
	PagePath    string    `gorm:"type:text"`
	ProductID   *uuid.UUID `gorm:"type:uuid;index"`
	ProductName string    `gorm:"type:varchar(255)"`
	Metadata    datatypes.JSONMap
	UserAgent   string    `gorm:"type:text"`
	IPAddress   string    `gorm:"type:varchar(64)"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserActivityModel) TableName() string {
	return "user_activity"
}
