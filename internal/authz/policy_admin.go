package authz

type adminPolicy struct{}

func (adminPolicy) ScopeForRead(e Entity, c Caller) Scope {
	switch e {
	case EntityPatient, EntityDoctor, EntityPharmacy:
		return ScopeAll()
	default:
		// No admin read rule exists for medical records or prescriptions,
		// so admins resolve to the empty scope there. Kept as-is pending a
		// product decision; widening it here would change the exposed data.
		return ScopeNone()
	}
}

func (adminPolicy) AuthorizeWrite(e Entity, op Operation, c Caller) Decision {
	switch e {
	case EntityMedicalRecord:
		switch op {
		case OpCreate:
			return Deny(reasonCreateRecord)
		case OpUpdate:
			return Deny(reasonUpdateRecord)
		}
	case EntityPrescription:
		switch op {
		case OpCreate:
			return Deny(reasonCreatePrescription)
		case OpUpdate:
			return Deny(reasonUpdatePrescription)
		}
	}
	// Admins pass every remaining rule, with payloads honored as supplied.
	return Allow()
}
