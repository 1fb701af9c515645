// Package strategy holds the pluggable contest rules. Each family has a
// fixed set of variants selected by the tag stored on the contest; the
// lookup tables below are the only way a variant is resolved.
package strategy

import (
	"time"

	"photocontest-api/internal/domain"
)

// Action tells the deadline strategy which operation is being attempted,
// since joining carries an extra participants-limit check.
type Action string

const (
	ActionJoin   Action = "join"
	ActionUpload Action = "upload"
)

// JoinDecision is produced by a participation strategy when it admits a
// user. AcceptInvitation is set by the closed variant and names the pending
// invitation that must be flipped to Accepted together with the join.
type JoinDecision struct {
	AcceptInvitation *domain.Invitation
}

type Participation interface {
	// Evaluate decides whether the user may join the contest. A nil error
	// admits; otherwise the error carries a domain.Rejection.
	Evaluate(user domain.User, contest *domain.Contest) (JoinDecision, error)
}

type Deadline interface {
	// CheckDeadline decides whether the action is still permitted given the
	// contest timing. The boundary is inclusive-exclusive: now must be
	// strictly before the submission deadline.
	CheckDeadline(contest *domain.Contest, user domain.User, now time.Time, action Action) error
}

type Voting interface {
	// CheckVote decides whether the voter may cast a vote on the picture.
	CheckVote(voter domain.User, contest *domain.Contest, picture *domain.Picture) error
}

type Reward interface {
	// ApplyReward computes the final standings for the contest. It is pure:
	// the caller persists the placements and binds reward templates.
	ApplyReward(contest *domain.Contest) []domain.Placement
}

var participationStrategies = map[domain.ParticipationStrategyType]Participation{
	domain.ParticipationOpen:   &OpenParticipation{},
	domain.ParticipationClosed: &ClosedParticipation{},
}

var deadlineStrategies = map[domain.DeadlineStrategyType]Deadline{
	domain.DeadlineSubmission: &SubmissionDeadline{},
}

var votingStrategies = map[domain.VotingStrategyType]Voting{
	domain.VotingOpen:   &OpenVoting{},
	domain.VotingClosed: &ClosedVoting{},
}

var rewardStrategies = map[domain.RewardStrategyType]Reward{
	domain.RewardTopN: &TopNReward{},
}

func ForParticipation(tag domain.ParticipationStrategyType) (Participation, error) {
	s, ok := participationStrategies[tag]
	if !ok {
		return nil, domain.ValidationFailed("not existing participation strategy %q", tag)
	}
	return s, nil
}

func ForDeadline(tag domain.DeadlineStrategyType) (Deadline, error) {
	s, ok := deadlineStrategies[tag]
	if !ok {
		return nil, domain.ValidationFailed("not existing deadline strategy %q", tag)
	}
	return s, nil
}

func ForVoting(tag domain.VotingStrategyType) (Voting, error) {
	s, ok := votingStrategies[tag]
	if !ok {
		return nil, domain.ValidationFailed("not existing voting strategy %q", tag)
	}
	return s, nil
}

func ForReward(tag domain.RewardStrategyType) (Reward, error) {
	s, ok := rewardStrategies[tag]
	if !ok {
		return nil, domain.ValidationFailed("not existing reward strategy %q", tag)
	}
	return s, nil
}

// ValidateTags checks all four strategy tags on a contest at creation time.
func ValidateTags(contest *domain.Contest) error {
	if _, err := ForParticipation(contest.ParticipationStrategy); err != nil {
		return err
	}
	if _, err := ForDeadline(contest.DeadlineStrategy); err != nil {
		return err
	}
	if _, err := ForVoting(contest.VotingStrategy); err != nil {
		return err
	}
	if _, err := ForReward(contest.RewardStrategy); err != nil {
		return err
	}
	return nil
}
