package models

import "time"

// Perfil de paciente, vinculado 1:1 ao usuário dono
type Patient struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	FullName    string    `gorm:"size:100;not null" json:"full_name"`
	DateOfBirth time.Time `json:"date_of_birth"`
	Gender      string    `gorm:"size:10" json:"gender"`
	PhoneNumber string    `gorm:"size:20" json:"phone_number"`
	Address     string    `gorm:"size:100" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
