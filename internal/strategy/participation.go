package strategy

import (
	"photocontest-api/internal/domain"
)

// OpenParticipation admits any user while the contest accepts submissions.
type OpenParticipation struct{}

func (s *OpenParticipation) Evaluate(user domain.User, contest *domain.Contest) (JoinDecision, error) {
	if !contest.IsOpenForSubmissions {
		return JoinDecision{}, domain.StateViolation("the registration for this contest is closed")
	}
	if contest.HasParticipant(user.ID) {
		return JoinDecision{}, domain.RuleRejected("you already participate in this contest")
	}
	if contest.HasCommitteeMember(user.ID) {
		return JoinDecision{}, domain.RuleRejected("you cannot participate in this contest, you are in the committee")
	}
	return JoinDecision{}, nil
}

// ClosedParticipation admits only users holding a pending closed-contest
// invitation; admitting a user consumes the invitation.
type ClosedParticipation struct{}

func (s *ClosedParticipation) Evaluate(user domain.User, contest *domain.Contest) (JoinDecision, error) {
	if !contest.IsOpenForSubmissions {
		return JoinDecision{}, domain.StateViolation("the registration for this contest is closed")
	}
	if contest.HasParticipant(user.ID) {
		return JoinDecision{}, domain.RuleRejected("you already participate in this contest")
	}
	if contest.HasCommitteeMember(user.ID) {
		return JoinDecision{}, domain.RuleRejected("you cannot participate in this contest, you are in the committee")
	}
	if !contest.HasInvitedUser(user.ID) {
		return JoinDecision{}, domain.AuthorizationDenied("the user is not selected to participate")
	}

	inv := contest.NeutralInvitation(user.ID, domain.InvitationClosedContest)
	if inv == nil {
		return JoinDecision{}, domain.RuleRejected("you don't have a pending invitation for this contest")
	}

	return JoinDecision{AcceptInvitation: inv}, nil
}
