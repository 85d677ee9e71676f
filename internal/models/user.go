package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

type User struct {
	ID       string `json:"id" gorm:"primaryKey;size:255"`
	Name     string `json:"name" gorm:"not null;size:100"`
	Email    string `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Provider AuthProvider `json:"provider" gorm:"not null;size:20;default:local"`

	// PasswordHash is empty for federated identities.
	PasswordHash string `json:"-" gorm:"size:255"`

	// Preferences holds notification settings consumed by the companion
	// notifier (lookahead overrides, sound on/off).
	Preferences datatypes.JSON `json:"preferences" gorm:"type:jsonb"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (User) TableName() string {
	return "users"
}

// NotificationPreferences is the decoded shape of User.Preferences.
type NotificationPreferences struct {
	DueSoonHours int  `json:"due_soon_hours"`
	Sound        bool `json:"sound"`
}
