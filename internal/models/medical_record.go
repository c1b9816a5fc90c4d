package models

import "time"

type MedicalRecord struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient"`

	DoctorID uint   `json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"doctor"`

	Diagnosis string `gorm:"size:255;not null" json:"diagnosis"`
	Treatment string `gorm:"size:255" json:"treatment"`
	Notes     string `gorm:"default:''" json:"notes"`

	CreatedAt time.Time `json:"date_created"`
	UpdatedAt time.Time `json:"last_updated"`
}
