package domain

import "time"

type ContestStatus string

const (
	ContestActive    ContestStatus = "Active"
	ContestFinalized ContestStatus = "Finalized"
	ContestDismissed ContestStatus = "Dismissed"
)

type ParticipationStrategyType string

const (
	ParticipationOpen   ParticipationStrategyType = "Open"
	ParticipationClosed ParticipationStrategyType = "Closed"
)

type VotingStrategyType string

const (
	VotingOpen   VotingStrategyType = "Open"
	VotingClosed VotingStrategyType = "Closed"
)

type DeadlineStrategyType string

const (
	DeadlineSubmission DeadlineStrategyType = "SubmissionDeadline"
)

type RewardStrategyType string

const (
	RewardTopN RewardStrategyType = "TopN"
)

type Contest struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`

	Status               ContestStatus `json:"status"`
	IsOpenForSubmissions bool          `json:"is_open_for_submissions"`

	// nil means unlimited participants / unbounded rewarded places.
	ParticipantsLimit *int `json:"participants_limit,omitempty"`
	TopNPlaces        *int `json:"top_n_places,omitempty"`

	StartDate          time.Time  `json:"start_date"`
	SubmissionDeadline time.Time  `json:"submission_deadline"`
	EndDate            *time.Time `json:"end_date,omitempty"`

	OrganizerID uint `json:"organizer_id"`

	ParticipationStrategy ParticipationStrategyType `json:"participation_strategy"`
	VotingStrategy        VotingStrategyType        `json:"voting_strategy"`
	DeadlineStrategy      DeadlineStrategyType      `json:"deadline_strategy"`
	RewardStrategy        RewardStrategyType        `json:"reward_strategy"`

	Participants []User       `json:"participants,omitempty"`
	Committee    []User       `json:"committee,omitempty"`
	InvitedUsers []User       `json:"invited_users,omitempty"`
	Pictures     []Picture    `json:"pictures,omitempty"`
	Rewards      []Reward     `json:"rewards,omitempty"`
	Invitations  []Invitation `json:"invitations,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Contest) IsActive() bool {
	return c.Status == ContestActive
}

func (c *Contest) HasParticipant(userID uint) bool {
	for _, p := range c.Participants {
		if p.ID == userID {
			return true
		}
	}
	return false
}

func (c *Contest) HasCommitteeMember(userID uint) bool {
	for _, m := range c.Committee {
		if m.ID == userID {
			return true
		}
	}
	return false
}

func (c *Contest) HasInvitedUser(userID uint) bool {
	for _, u := range c.InvitedUsers {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// ParticipantsLimitReached reports whether another join would exceed the cap.
func (c *Contest) ParticipantsLimitReached() bool {
	return c.ParticipantsLimit != nil && len(c.Participants) >= *c.ParticipantsLimit
}

// ActiveInvitation returns the Neutral or Accepted invitation held by the
// given user for this contest and type, or nil when none exists.
func (c *Contest) ActiveInvitation(invitedID uint, invType InvitationType) *Invitation {
	for i := range c.Invitations {
		inv := &c.Invitations[i]
		if inv.InvitedID == invitedID && inv.Type == invType && inv.Status != InvitationDeclined {
			return inv
		}
	}
	return nil
}

// NeutralInvitation returns the pending invitation held by the given user
// for this contest and type, or nil when none exists.
func (c *Contest) NeutralInvitation(invitedID uint, invType InvitationType) *Invitation {
	for i := range c.Invitations {
		inv := &c.Invitations[i]
		if inv.InvitedID == invitedID && inv.Type == invType && inv.Status == InvitationNeutral {
			return inv
		}
	}
	return nil
}
