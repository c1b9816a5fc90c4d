package authz

// Decision is the outcome of a mutation check. When ForceOwner is set the
// caller layer must pin the row's owning user to the caller before writing,
// in the same step as the allow — the payload's owner field is never
// honored on a self-update.
type Decision struct {
	Allowed    bool
	Reason     string
	ForceOwner bool
}

func Allow() Decision {
	return Decision{Allowed: true}
}

func AllowForcingOwner() Decision {
	return Decision{Allowed: true, ForceOwner: true}
}

func Deny(reason string) Decision {
	return Decision{Reason: reason}
}

// Err returns nil for an allow and a DeniedError for a deny.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return DeniedError{Reason: d.Reason}
}

// DeniedError is surfaced unchanged to the transport layer as a
// forbidden response. It is terminal; nothing retries it.
type DeniedError struct {
	Reason string
}

func (e DeniedError) Error() string {
	return e.Reason
}
