package domain

import (
	"errors"
	"fmt"
)

// RejectionKind classifies why an operation was refused, so handlers can map
// it to a transport status without string matching.
type RejectionKind string

const (
	KindNotFound            RejectionKind = "NotFound"
	KindStateViolation      RejectionKind = "StateViolation"
	KindAuthorizationDenied RejectionKind = "AuthorizationDenied"
	KindRuleRejected        RejectionKind = "RuleRejected"
	KindValidationFailed    RejectionKind = "ValidationFailed"
	KindCollaboratorFailure RejectionKind = "CollaboratorFailure"
)

// Rejection is an expected refusal of an operation. Strategies and lifecycle
// guards return these instead of plain errors so the reason survives wrapping.
type Rejection struct {
	Kind   RejectionKind
	Reason string
}

func (r *Rejection) Error() string {
	return r.Reason
}

func NotFound(resource string, id any) *Rejection {
	return &Rejection{Kind: KindNotFound, Reason: fmt.Sprintf("%s with id %v not found", resource, id)}
}

func StateViolation(format string, args ...any) *Rejection {
	return &Rejection{Kind: KindStateViolation, Reason: fmt.Sprintf(format, args...)}
}

func AuthorizationDenied(format string, args ...any) *Rejection {
	return &Rejection{Kind: KindAuthorizationDenied, Reason: fmt.Sprintf(format, args...)}
}

func RuleRejected(format string, args ...any) *Rejection {
	return &Rejection{Kind: KindRuleRejected, Reason: fmt.Sprintf(format, args...)}
}

func ValidationFailed(format string, args ...any) *Rejection {
	return &Rejection{Kind: KindValidationFailed, Reason: fmt.Sprintf(format, args...)}
}

func CollaboratorFailure(format string, args ...any) *Rejection {
	return &Rejection{Kind: KindCollaboratorFailure, Reason: fmt.Sprintf(format, args...)}
}

// AsRejection unwraps err down to a Rejection, if one is in the chain.
func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if errors.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// IsKind reports whether err carries a Rejection of the given kind.
func IsKind(err error, kind RejectionKind) bool {
	rej, ok := AsRejection(err)
	return ok && rej.Kind == kind
}
