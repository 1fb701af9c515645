package request

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateContestRequest struct {
	Title                 string     `json:"title"`
	Description           string     `json:"description"`
	ParticipationStrategy string     `json:"participation_strategy"`
	VotingStrategy        string     `json:"voting_strategy"`
	DeadlineStrategy      string     `json:"deadline_strategy"`
	RewardStrategy        string     `json:"reward_strategy"`
	SubmissionDeadline    time.Time  `json:"submission_deadline"`
	ParticipantsLimit     *int       `json:"participants_limit"`
	TopNPlaces            *int       `json:"top_n_places"`
	EndDate               *time.Time `json:"end_date"`
}

func (req *CreateContestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(4, 50)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.ParticipationStrategy, validation.Required, validation.In("Open", "Closed")),
		validation.Field(&req.VotingStrategy, validation.Required, validation.In("Open", "Closed")),
		validation.Field(&req.DeadlineStrategy, validation.Required, validation.In("SubmissionDeadline")),
		validation.Field(&req.RewardStrategy, validation.Required, validation.In("TopN")),
		validation.Field(&req.SubmissionDeadline, validation.Required),
		validation.Field(&req.ParticipantsLimit, validation.Min(1)),
		validation.Field(&req.TopNPlaces, validation.Min(1)),
	)
}

type UpdateContestRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	EndDate     *time.Time `json:"end_date"`
}

func (req *UpdateContestRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Length(4, 50)),
		validation.Field(&req.Description, validation.Length(0, 500)),
	)
}

type InviteUserRequest struct {
	Username string `json:"username"`
	Type     string `json:"type"`
}

func (req *InviteUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Type, validation.Required, validation.In("Committee", "ClosedContest")),
	)
}

type RewardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Place       int    `json:"place"`
	ImageURL    string `json:"image_url"`
}

func (req *RewardRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(2, 50)),
		validation.Field(&req.Description, validation.Length(0, 200)),
		validation.Field(&req.Place, validation.Required, validation.Min(1)),
	)
}

type AddRewardsRequest struct {
	Rewards []RewardRequest `json:"rewards"`
}

func (req *AddRewardsRequest) Validate() error {
	if err := validation.ValidateStruct(
		req,
		validation.Field(&req.Rewards, validation.Required, validation.Length(1, 20)),
	); err != nil {
		return err
	}

	for i := range req.Rewards {
		if err := req.Rewards[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}
