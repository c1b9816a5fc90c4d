package authz

// rolePolicy is the capability surface every role variant implements.
// One implementation per role keeps each rule table exhaustive instead of
// scattering the rules across conditional chains.
type rolePolicy interface {
	ScopeForRead(e Entity, c Caller) Scope
	AuthorizeWrite(e Entity, op Operation, c Caller) Decision
}

// Engine dispatches to the closed set of role policies.
type Engine struct {
	policies map[Role]rolePolicy
}

func NewEngine() *Engine {
	return &Engine{
		policies: map[Role]rolePolicy{
			RoleAdmin:      adminPolicy{},
			RoleDoctor:     doctorPolicy{},
			RolePatient:    patientPolicy{},
			RolePharmacist: pharmacistPolicy{},
		},
	}
}

// ScopeForRead returns the visible-row predicate for the caller on the
// given entity. Roles outside the closed set see nothing.
func (e *Engine) ScopeForRead(entity Entity, c Caller) Scope {
	p, ok := e.policies[c.Role]
	if !ok {
		return ScopeNone()
	}
	return p.ScopeForRead(entity, c)
}

// AuthorizeWrite decides whether the caller may perform op on the entity.
// Roles outside the closed set are denied outright.
func (e *Engine) AuthorizeWrite(entity Entity, op Operation, c Caller) Decision {
	p, ok := e.policies[c.Role]
	if !ok {
		return Deny("Unrecognized role.")
	}
	return p.AuthorizeWrite(entity, op, c)
}

// Shared deny reasons, one per restricted rule.
const (
	reasonAdminCreatePatient  = "Only admins can create patient profiles."
	reasonAdminCreateDoctor   = "Only admins can create doctor profiles."
	reasonAdminCreatePharmacy = "Only admins can create pharmacies."

	reasonUpdatePatient = "Only patients and admins can update patient profiles."
	reasonUpdateDoctor  = "Only doctors and admins can update doctor profiles."
	reasonDeletePatient = "Doctors cannot delete patient profiles."

	reasonCreateRecord = "Only doctors can create medical records."
	reasonUpdateRecord = "Only doctors can update medical records."

	reasonCreatePrescription = "Only doctors can create prescriptions."
	reasonUpdatePrescription = "Only doctors can update prescriptions."

	reasonPharmacistUpdatePrescription = "Pharmacists cannot update prescriptions."
	reasonPharmacistDeletePrescription = "Pharmacists cannot delete prescriptions."
)
