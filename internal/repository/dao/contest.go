package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrContestNotFound    = errors.New("contest not found")
	ErrPictureNotFound    = errors.New("picture not found")
	ErrInvitationNotFound = errors.New("invitation not found")
	ErrDuplicateVote      = errors.New("vote already exists for this picture")
)

type Contest struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Description string

	Status               string `gorm:"not null;index"`
	IsOpenForSubmissions bool   `gorm:"not null"`

	ParticipantsLimit *int
	TopNPlaces        *int

	StartDate          time.Time `gorm:"not null"`
	SubmissionDeadline time.Time `gorm:"not null"`
	EndDate            *time.Time

	OrganizerID uint `gorm:"not null;index"`
	Organizer   User `gorm:"foreignKey:OrganizerID"`

	ParticipationStrategy string `gorm:"not null"`
	VotingStrategy        string `gorm:"not null"`
	DeadlineStrategy      string `gorm:"not null"`
	RewardStrategy        string `gorm:"not null"`

	Participants []User       `gorm:"many2many:contest_participants;"`
	Committee    []User       `gorm:"many2many:contest_committee;"`
	InvitedUsers []User       `gorm:"many2many:contest_invited_users;"`
	Pictures     []Picture    `gorm:"foreignKey:ContestID"`
	Rewards      []Reward     `gorm:"foreignKey:ContestID"`
	Invitations  []Invitation `gorm:"foreignKey:ContestID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Picture struct {
	ID          uint   `gorm:"primaryKey"`
	ContestID   uint   `gorm:"not null;index"`
	UserID      uint   `gorm:"not null;index"`
	URL         string `gorm:"not null"`
	DriveFileID string `gorm:"not null"`
	Votes       []Vote `gorm:"foreignKey:PictureID"`
	CreatedAt   time.Time
}

type Vote struct {
	ID        uint `gorm:"primaryKey"`
	PictureID uint `gorm:"not null;uniqueIndex:idx_votes_picture_user"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_votes_picture_user"`
	CreatedAt time.Time
}

type Invitation struct {
	ID               uint   `gorm:"primaryKey"`
	ContestID        uint   `gorm:"not null;index"`
	InviterID        uint   `gorm:"not null"`
	InvitedID        uint   `gorm:"not null;index"`
	Type             string `gorm:"not null"`
	Status           string `gorm:"not null"`
	DateOfInvitation time.Time
}

type Reward struct {
	ID          uint   `gorm:"primaryKey"`
	ContestID   uint   `gorm:"not null;index"`
	Name        string `gorm:"not null"`
	Description string
	Place       int `gorm:"not null"`
	ImageURL    string
	WinnerID    *uint
	PictureID   *uint
}

type ContestWinner struct {
	ID        uint `gorm:"primaryKey"`
	ContestID uint `gorm:"not null;index"`
	PictureID uint `gorm:"not null"`
	UserID    uint `gorm:"not null"`
	Place     int  `gorm:"not null"`
	VoteCount int  `gorm:"not null"`
	CreatedAt time.Time
}

type ContestDAO struct {
	db *gorm.DB
}

func NewContestDAO(db *gorm.DB) *ContestDAO {
	return &ContestDAO{
		db: db,
	}
}

func (d *ContestDAO) Insert(ctx context.Context, contest Contest) (Contest, error) {
	result := d.db.WithContext(ctx).Create(&contest)
	if result.Error != nil {
		return Contest{}, result.Error
	}
	return contest, nil
}

func (d *ContestDAO) FindByID(ctx context.Context, id uint) (Contest, error) {
	var contest Contest

	result := d.db.WithContext(ctx).
		Preload("Participants").
		Preload("Committee").
		Preload("InvitedUsers").
		Preload("Pictures.Votes").
		Preload("Rewards").
		Preload("Invitations").
		First(&contest, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Contest{}, ErrContestNotFound
		}
		return Contest{}, result.Error
	}

	return contest, nil
}

func (d *ContestDAO) FindAll(ctx context.Context) ([]Contest, error) {
	var contests []Contest
	result := d.db.WithContext(ctx).Preload("Rewards").Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}
	return contests, nil
}

func (d *ContestDAO) FindByStatus(ctx context.Context, status string) ([]Contest, error) {
	var contests []Contest
	result := d.db.WithContext(ctx).Preload("Rewards").Where("status = ?", status).Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}
	return contests, nil
}

func (d *ContestDAO) FindByOrganizer(ctx context.Context, organizerID uint) ([]Contest, error) {
	var contests []Contest
	result := d.db.WithContext(ctx).Preload("Rewards").Where("organizer_id = ?", organizerID).Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}
	return contests, nil
}

func (d *ContestDAO) FindByParticipant(ctx context.Context, userID uint) ([]Contest, error) {
	var contests []Contest
	result := d.db.WithContext(ctx).
		Joins("JOIN contest_participants cp ON cp.contest_id = contests.id").
		Where("cp.user_id = ?", userID).
		Find(&contests)
	if result.Error != nil {
		return nil, result.Error
	}
	return contests, nil
}

func (d *ContestDAO) Update(ctx context.Context, contest Contest) (Contest, error) {
	result := d.db.WithContext(ctx).Model(&Contest{ID: contest.ID}).Updates(map[string]any{
		"title":       contest.Title,
		"description": contest.Description,
		"end_date":    contest.EndDate,
	})
	if result.Error != nil {
		return Contest{}, result.Error
	}
	return d.FindByID(ctx, contest.ID)
}

// AddParticipant appends a user to the contest's participant set. When
// invitationID is not nil the matching invitation is flipped to Accepted in
// the same transaction, so a closed-contest join is all-or-nothing.
func (d *ContestDAO) AddParticipant(ctx context.Context, contestID, userID uint, invitationID *uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contest := Contest{ID: contestID}
		if err := tx.Model(&contest).Association("Participants").Append(&User{ID: userID}); err != nil {
			return err
		}
		if invitationID != nil {
			result := tx.Model(&Invitation{}).Where("id = ?", *invitationID).Update("status", "Accepted")
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// AddCommitteeMember appends a user to the committee and accepts the
// committee invitation in one transaction.
func (d *ContestDAO) AddCommitteeMember(ctx context.Context, contestID, userID, invitationID uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		contest := Contest{ID: contestID}
		if err := tx.Model(&contest).Association("Committee").Append(&User{ID: userID}); err != nil {
			return err
		}
		result := tx.Model(&Invitation{}).Where("id = ?", invitationID).Update("status", "Accepted")
		return result.Error
	})
}

// InsertInvitation stores the invitation and, for closed-contest
// invitations, records the invited user on the contest's invited set.
func (d *ContestDAO) InsertInvitation(ctx context.Context, invitation Invitation, addToInvitedUsers bool) (Invitation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invitation).Error; err != nil {
			return err
		}
		if addToInvitedUsers {
			contest := Contest{ID: invitation.ContestID}
			if err := tx.Model(&contest).Association("InvitedUsers").Append(&User{ID: invitation.InvitedID}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return Invitation{}, err
	}
	return invitation, nil
}

func (d *ContestDAO) FindInvitationByID(ctx context.Context, id uint) (Invitation, error) {
	var invitation Invitation
	result := d.db.WithContext(ctx).First(&invitation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Invitation{}, ErrInvitationNotFound
		}
		return Invitation{}, result.Error
	}
	return invitation, nil
}

func (d *ContestDAO) FindInvitationsByInvited(ctx context.Context, userID uint) ([]Invitation, error) {
	var invitations []Invitation
	result := d.db.WithContext(ctx).Where("invited_id = ?", userID).Order("date_of_invitation DESC").Find(&invitations)
	if result.Error != nil {
		return nil, result.Error
	}
	return invitations, nil
}

func (d *ContestDAO) UpdateInvitationStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).Model(&Invitation{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrInvitationNotFound
	}
	return nil
}

// InsertPictures stores an upload batch in a single create, so a failing
// row leaves no partial batch behind.
func (d *ContestDAO) InsertPictures(ctx context.Context, pictures []Picture) ([]Picture, error) {
	result := d.db.WithContext(ctx).Create(&pictures)
	if result.Error != nil {
		return nil, result.Error
	}
	return pictures, nil
}

func (d *ContestDAO) FindPictureByID(ctx context.Context, id uint) (Picture, error) {
	var picture Picture
	result := d.db.WithContext(ctx).Preload("Votes").First(&picture, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Picture{}, ErrPictureNotFound
		}
		return Picture{}, result.Error
	}
	return picture, nil
}

// DeletePicture removes the picture together with its votes.
func (d *ContestDAO) DeletePicture(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("picture_id = ?", id).Delete(&Vote{}).Error; err != nil {
			return err
		}
		return tx.Delete(&Picture{}, id).Error
	})
}

// InsertVote relies on the (picture_id, user_id) unique index to reject
// duplicates, so concurrent votes for the same picture cannot both land.
func (d *ContestDAO) InsertVote(ctx context.Context, vote Vote) (Vote, error) {
	result := d.db.WithContext(ctx).Create(&vote)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return Vote{}, ErrDuplicateVote
		}
		return Vote{}, result.Error
	}
	return vote, nil
}

func (d *ContestDAO) InsertRewards(ctx context.Context, rewards []Reward) ([]Reward, error) {
	result := d.db.WithContext(ctx).Create(&rewards)
	if result.Error != nil {
		return nil, result.Error
	}
	return rewards, nil
}

// FinalizeContest commits the terminal Finalized state, the winner rows and
// the reward-to-winner bindings in one transaction.
func (d *ContestDAO) FinalizeContest(ctx context.Context, contestID uint, endDate time.Time, winners []ContestWinner, boundRewards []Reward) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&Contest{}).Where("id = ?", contestID).Updates(map[string]any{
			"status":                  "Finalized",
			"is_open_for_submissions": false,
			"end_date":                endDate,
		})
		if result.Error != nil {
			return result.Error
		}
		if len(winners) > 0 {
			if err := tx.Create(&winners).Error; err != nil {
				return err
			}
		}
		for _, reward := range boundRewards {
			result = tx.Model(&Reward{}).Where("id = ?", reward.ID).Updates(map[string]any{
				"winner_id":  reward.WinnerID,
				"picture_id": reward.PictureID,
			})
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}

// DismissContest commits the terminal Dismissed state.
func (d *ContestDAO) DismissContest(ctx context.Context, contestID uint, endDate time.Time) error {
	result := d.db.WithContext(ctx).Model(&Contest{}).Where("id = ?", contestID).Updates(map[string]any{
		"status":                  "Dismissed",
		"is_open_for_submissions": false,
		"end_date":                endDate,
	})
	return result.Error
}

func (d *ContestDAO) FindWinnersByContestID(ctx context.Context, contestID uint) ([]ContestWinner, error) {
	var winners []ContestWinner
	result := d.db.WithContext(ctx).Where("contest_id = ?", contestID).Order("place ASC").Find(&winners)
	if result.Error != nil {
		return nil, result.Error
	}
	return winners, nil
}
