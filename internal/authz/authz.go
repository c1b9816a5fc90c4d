// Package authz decides, for every entity and operation, which rows an
// authenticated caller may read and which mutations it may perform.
// Decisions are pure functions of the caller identity and the rule tables;
// the package holds no state and is safe for concurrent use.
package authz

type Entity string

const (
	EntityPatient       Entity = "patient"
	EntityDoctor        Entity = "doctor"
	EntityPharmacy      Entity = "pharmacy"
	EntityMedicalRecord Entity = "medical_record"
	EntityPrescription  Entity = "prescription"
)

type Operation string

const (
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// Caller is the authenticated identity making a request.
type Caller struct {
	UserID uint
	Role   Role
}
