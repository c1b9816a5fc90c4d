package models

import "time"

type Prescription struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient"`

	DoctorID uint   `json:"doctor_id"`
	Doctor   Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"doctor"`

	PharmacyID uint     `json:"pharmacy_id"`
	Pharmacy   Pharmacy `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"pharmacy"`

	MedicationName string    `gorm:"size:100;not null" json:"medication_name"`
	Dosage         string    `gorm:"size:50" json:"dosage"`
	Instructions   string    `json:"instructions"`
	IssueDate      time.Time `json:"issue_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
