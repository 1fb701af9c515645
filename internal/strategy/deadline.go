package strategy

import (
	"time"

	"photocontest-api/internal/domain"
)

// SubmissionDeadline rejects joins and uploads once the contest's
// submission deadline has been reached.
type SubmissionDeadline struct{}

func (s *SubmissionDeadline) CheckDeadline(contest *domain.Contest, user domain.User, now time.Time, action Action) error {
	if !contest.IsOpenForSubmissions {
		return domain.StateViolation("the contest is closed for submissions")
	}
	// Strictly before the deadline is accepted; at or after is rejected.
	if !now.Before(contest.SubmissionDeadline) {
		return domain.RuleRejected("the submission deadline for this contest has passed")
	}
	if action == ActionJoin && contest.ParticipantsLimitReached() {
		return domain.RuleRejected("the contest has reached its participants limit")
	}
	return nil
}
