// Package model holds the GORM persistence models. IDs are UUIDv7 assigned by
// the application so the same schema works on PostgreSQL and SQLite.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Username           string    `gorm:"type:varchar(80);uniqueIndex;not null"`
	Email              string    `gorm:"type:varchar(120);uniqueIndex;not null"`
	Password           string    `gorm:"type:varchar(255);not null"`
	Mobile             string    `gorm:"type:varchar(20)"`
	Location           string    `gorm:"type:varchar(100)"`
	Profession         string    `gorm:"type:varchar(100)"`
	Expertise          string    `gorm:"type:varchar(200)"`
	ProfilePicture     string    `gorm:"type:varchar(200)"`
	JoinDate           time.Time `gorm:"not null"`
	IsConsultant       bool      `gorm:"not null;default:false"`
	ConsultantCategory string    `gorm:"type:varchar(100)"`
	ConsultantApproved bool      `gorm:"not null;default:false"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// SessionModel mirrors the 'sessions' table.
type SessionModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	User      *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	TokenHash string     `gorm:"type:varchar(64);uniqueIndex;not null"`
	ExpiresAt time.Time  `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
