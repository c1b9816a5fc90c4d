// Package service orchestrates each entity's operations: resolve the
// caller, ask the policy engine for a scope or a write decision, then hit
// the repository. Any deny or store error propagates unchanged.
package service

import "time"

// Payload dates arrive as plain calendar dates.
const dateLayout = "2006-01-02"

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
