package strategy

import (
	"photocontest-api/internal/domain"
)

func checkCommonVote(voter domain.User, contest *domain.Contest, picture *domain.Picture) error {
	if !contest.IsActive() {
		return domain.StateViolation("the contest is closed")
	}
	if contest.OrganizerID == voter.ID {
		return domain.RuleRejected("the contest organizer cannot vote")
	}
	if picture.UserID == voter.ID {
		return domain.RuleRejected("you cannot vote for your own picture")
	}
	if picture.HasVoteFrom(voter.ID) {
		return domain.RuleRejected("you have already voted for this picture")
	}
	return nil
}

// OpenVoting lets any non-organizer user vote once per picture.
type OpenVoting struct{}

func (s *OpenVoting) CheckVote(voter domain.User, contest *domain.Contest, picture *domain.Picture) error {
	return checkCommonVote(voter, contest, picture)
}

// ClosedVoting restricts voting to committee members.
type ClosedVoting struct{}

func (s *ClosedVoting) CheckVote(voter domain.User, contest *domain.Contest, picture *domain.Picture) error {
	if !contest.HasCommitteeMember(voter.ID) {
		return domain.AuthorizationDenied("only committee members can vote in this contest")
	}
	return checkCommonVote(voter, contest, picture)
}
