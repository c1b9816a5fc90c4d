package models

import "time"

// Farmácia não pertence a nenhum usuário
type Pharmacy struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name          string `gorm:"size:100;not null" json:"name"`
	Location      string `gorm:"size:255" json:"location"`
	ContactNumber string `gorm:"size:20" json:"contact_number"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
