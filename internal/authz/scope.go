package authz

import "gorm.io/gorm"

type scopeKind int

const (
	scopeAll scopeKind = iota
	scopeNone
	scopeWhere
)

// Scope is the row-visibility predicate for one caller on one entity type.
// It is a plain value: comparable in tests, no captured connection, and
// applying it never errors — an empty scope selects zero rows.
type Scope struct {
	kind  scopeKind
	query string
	args  []interface{}
}

func ScopeAll() Scope {
	return Scope{kind: scopeAll}
}

func ScopeNone() Scope {
	return Scope{kind: scopeNone}
}

func ScopeWhere(query string, args ...interface{}) Scope {
	return Scope{kind: scopeWhere, query: query, args: args}
}

// IsNone reports whether the scope can never match a row.
func (s Scope) IsNone() bool {
	return s.kind == scopeNone
}

// Apply narrows tx to the rows the scope permits.
func (s Scope) Apply(tx *gorm.DB) *gorm.DB {
	switch s.kind {
	case scopeAll:
		return tx
	case scopeNone:
		return tx.Where("1 = 0")
	default:
		return tx.Where(s.query, s.args...)
	}
}

// Rows linked to the caller through their patient profile.
func patientLinked(c Caller) Scope {
	return ScopeWhere("patient_id IN (SELECT id FROM patients WHERE user_id = ?)", c.UserID)
}

// Rows linked to the caller through their doctor profile.
func doctorLinked(c Caller) Scope {
	return ScopeWhere("doctor_id IN (SELECT id FROM doctors WHERE user_id = ?)", c.UserID)
}

// The caller's own profile row.
func ownProfile(c Caller) Scope {
	return ScopeWhere("user_id = ?", c.UserID)
}
