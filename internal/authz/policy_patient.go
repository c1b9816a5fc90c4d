package authz

type patientPolicy struct{}

func (patientPolicy) ScopeForRead(e Entity, c Caller) Scope {
	switch e {
	case EntityPatient:
		return ownProfile(c)
	case EntityPharmacy:
		return ScopeAll()
	case EntityMedicalRecord, EntityPrescription:
		return patientLinked(c)
	default:
		return ScopeNone()
	}
}

func (patientPolicy) AuthorizeWrite(e Entity, op Operation, c Caller) Decision {
	switch e {
	case EntityPatient:
		switch op {
		case OpCreate:
			return Deny(reasonAdminCreatePatient)
		case OpUpdate:
			return AllowForcingOwner()
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
		switch op {
		case OpCreate:
			return Deny(reasonCreatePrescription)
		case OpUpdate:
			return Deny(reasonUpdatePrescription)
		}
	}
	return Allow()
}
