package authz

type doctorPolicy struct{}

func (doctorPolicy) ScopeForRead(e Entity, c Caller) Scope {
	switch e {
	case EntityPatient, EntityPharmacy, EntityMedicalRecord:
		return ScopeAll()
	case EntityDoctor:
		return ownProfile(c)
	case EntityPrescription:
		return doctorLinked(c)
	default:
		return ScopeNone()
	}
}

func (doctorPolicy) AuthorizeWrite(e Entity, op Operation, c Caller) Decision {
	switch e {
	case EntityPatient:
		switch op {
		case OpCreate:
			return Deny(reasonAdminCreatePatient)
		case OpUpdate:
			return Deny(reasonUpdatePatient)
		case OpDelete:
			return Deny(reasonDeletePatient)
		}
	case EntityDoctor:
		switch op {
		case OpCreate:
			return Deny(reasonAdminCreateDoctor)
		case OpUpdate:
			// A doctor edits their own profile; the owning user is pinned
			// to the caller regardless of what the payload carries.
			return AllowForcingOwner()
		}
	case EntityPharmacy:
		if op == OpCreate {
			return Deny(reasonAdminCreatePharmacy)
		}
	case EntityMedicalRecord, EntityPrescription:
		// Doctors create and update freely; there is deliberately no
		// ownership check tying a record to the authoring doctor.
		return Allow()
	}
	return Allow()
}
