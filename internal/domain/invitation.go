package domain

import "time"

type InvitationType string

const (
	InvitationCommittee     InvitationType = "Committee"
	InvitationClosedContest InvitationType = "ClosedContest"
)

type InvitationStatus string

const (
	InvitationNeutral  InvitationStatus = "Neutral"
	InvitationAccepted InvitationStatus = "Accepted"
	InvitationDeclined InvitationStatus = "Declined"
)

// Invitation is a pending offer from a contest organizer, gating either
// committee membership or participation in a closed contest. It is created
// Neutral and may be answered exactly once.
type Invitation struct {
	ID               uint             `json:"id"`
	ContestID        uint             `json:"contest_id"`
	InviterID        uint             `json:"inviter_id"`
	InvitedID        uint             `json:"invited_id"`
	Type             InvitationType   `json:"type"`
	Status           InvitationStatus `json:"status"`
	DateOfInvitation time.Time        `json:"date_of_invitation"`
}

func (i *Invitation) IsPending() bool {
	return i.Status == InvitationNeutral
}

// Accept moves the invitation to its Accepted terminal state.
func (i *Invitation) Accept() error {
	if i.Status != InvitationNeutral {
		return StateViolation("you already have responded to the invitation")
	}
	i.Status = InvitationAccepted
	return nil
}

// Decline moves the invitation to its Declined terminal state.
func (i *Invitation) Decline() error {
	if i.Status != InvitationNeutral {
		return StateViolation("you already have responded to the invitation")
	}
	i.Status = InvitationDeclined
	return nil
}
