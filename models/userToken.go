// userToken.go - Defines the UserToken model (append-only token log)

package models

import "time"

type UserToken struct {
	ID        uint      `gorm:"primaryKey"`                 // Unique ID (auto-increment)
	Uname     string    `gorm:"column:uname;not null"`      // Username the token was issued to
	Token     string    `gorm:"not null"`                   // The signed token string
	CreatedAt time.Time `gorm:"column:createdAt;autoCreateTime"` // When the token was issued
}
