package authz

type pharmacistPolicy struct{}

func (pharmacistPolicy) ScopeForRead(e Entity, c Caller) Scope {
	switch e {
	case EntityPharmacy, EntityPrescription:
		return ScopeAll()
	default:
		return ScopeNone()
	}
}

func (pharmacistPolicy) AuthorizeWrite(e Entity, op Operation, c Caller) Decision {
	switch e {
	case EntityPatient:
		switch op {
		case OpCreate:
			return Deny(reasonAdminCreatePatient)
		case OpUpdate:
			return Deny(reasonUpdatePatient)
		}
	case EntityDoctor:
		switch op {
		case OpCreate:
			return Deny(reasonAdminCreateDoctor)
		case OpUpdate:
			return Deny(reasonUpdateDoctor)
		}
	case EntityPharmacy:
		if op == OpCreate {
			return Deny(reasonAdminCreatePharmacy)
		}
	case EntityMedicalRecord:
		switch op {
		case OpCreate:
			return Deny(reasonCreateRecord)
		case OpUpdate:
			return Deny(reasonUpdateRecord)
		}
	case EntityPrescription:
		// Absolute denials: a pharmacist never alters a prescription,
		// whatever other rules might otherwise apply.
		switch op {
		case OpCreate:
			return Deny(reasonCreatePrescription)
		case OpUpdate:
			return Deny(reasonPharmacistUpdatePrescription)
		case OpDelete:
			return Deny(reasonPharmacistDeletePrescription)
		}
	}
	return Allow()
}
