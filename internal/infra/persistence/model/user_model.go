// Package model contains the GORM persistence models, kept separate from the
// pure domain entities.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are BIGSERIAL so the token subject
// claim stays a compact numeric string.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Login        string `gorm:"type:varchar(50);unique;not null"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Name         string `gorm:"type:varchar(100)"`
	AvatarURL    string `gorm:"type:varchar(255)"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
