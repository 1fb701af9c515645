package repository

import (
	"context"
	"fmt"
	"time"

	"photocontest-api/internal/domain"
	"photocontest-api/internal/repository/dao"
)

var (
	ErrContestNotFound    = dao.ErrContestNotFound
	ErrPictureNotFound    = dao.ErrPictureNotFound
	ErrInvitationNotFound = dao.ErrInvitationNotFound
	ErrDuplicateVote      = dao.ErrDuplicateVote
)

type ContestDAO interface {
	Insert(ctx context.Context, contest dao.Contest) (dao.Contest, error)
	FindByID(ctx context.Context, id uint) (dao.Contest, error)
	FindAll(ctx context.Context) ([]dao.Contest, error)
	FindByStatus(ctx context.Context, status string) ([]dao.Contest, error)
	FindByOrganizer(ctx context.Context, organizerID uint) ([]dao.Contest, error)
	FindByParticipant(ctx context.Context, userID uint) ([]dao.Contest, error)
	Update(ctx context.Context, contest dao.Contest) (dao.Contest, error)
	AddParticipant(ctx context.Context, contestID, userID uint, invitationID *uint) error
	AddCommitteeMember(ctx context.Context, contestID, userID, invitationID uint) error
	InsertInvitation(ctx context.Context, invitation dao.Invitation, addToInvitedUsers bool) (dao.Invitation, error)
	FindInvitationByID(ctx context.Context, id uint) (dao.Invitation, error)
	FindInvitationsByInvited(ctx context.Context, userID uint) ([]dao.Invitation, error)
	UpdateInvitationStatus(ctx context.Context, id uint, status string) error
	InsertPictures(ctx context.Context, pictures []dao.Picture) ([]dao.Picture, error)
	FindPictureByID(ctx context.Context, id uint) (dao.Picture, error)
	DeletePicture(ctx context.Context, id uint) error
	InsertVote(ctx context.Context, vote dao.Vote) (dao.Vote, error)
	InsertRewards(ctx context.Context, rewards []dao.Reward) ([]dao.Reward, error)
	FinalizeContest(ctx context.Context, contestID uint, endDate time.Time, winners []dao.ContestWinner, boundRewards []dao.Reward) error
	DismissContest(ctx context.Context, contestID uint, endDate time.Time) error
	FindWinnersByContestID(ctx context.Context, contestID uint) ([]dao.ContestWinner, error)
}

type ContestRepository struct {
	dao   ContestDAO
	uRepo *UserRepository
}

func NewContestRepository(dao ContestDAO, uRepo *UserRepository) *ContestRepository {
	return &ContestRepository{
		dao:   dao,
		uRepo: uRepo,
	}
}

func (r *ContestRepository) domainToDao(c domain.Contest) dao.Contest {
	return dao.Contest{
		ID:                    c.ID,
		Title:                 c.Title,
		Description:           c.Description,
		Status:                string(c.Status),
		IsOpenForSubmissions:  c.IsOpenForSubmissions,
		ParticipantsLimit:     c.ParticipantsLimit,
		TopNPlaces:            c.TopNPlaces,
		StartDate:             c.StartDate,
		SubmissionDeadline:    c.SubmissionDeadline,
		EndDate:               c.EndDate,
		OrganizerID:           c.OrganizerID,
		ParticipationStrategy: string(c.ParticipationStrategy),
		VotingStrategy:        string(c.VotingStrategy),
		DeadlineStrategy:      string(c.DeadlineStrategy),
		RewardStrategy:        string(c.RewardStrategy),
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}
}

func (r *ContestRepository) daoToDomain(c dao.Contest) domain.Contest {
	contest := domain.Contest{
		ID:                    c.ID,
		Title:                 c.Title,
		Description:           c.Description,
		Status:                domain.ContestStatus(c.Status),
		IsOpenForSubmissions:  c.IsOpenForSubmissions,
		ParticipantsLimit:     c.ParticipantsLimit,
		TopNPlaces:            c.TopNPlaces,
		StartDate:             c.StartDate,
		SubmissionDeadline:    c.SubmissionDeadline,
		EndDate:               c.EndDate,
		OrganizerID:           c.OrganizerID,
		ParticipationStrategy: domain.ParticipationStrategyType(c.ParticipationStrategy),
		VotingStrategy:        domain.VotingStrategyType(c.VotingStrategy),
		DeadlineStrategy:      domain.DeadlineStrategyType(c.DeadlineStrategy),
		RewardStrategy:        domain.RewardStrategyType(c.RewardStrategy),
		CreatedAt:             c.CreatedAt,
		UpdatedAt:             c.UpdatedAt,
	}

	contest.Participants = r.uRepo.daosToDomain(c.Participants)
	contest.Committee = r.uRepo.daosToDomain(c.Committee)
	contest.InvitedUsers = r.uRepo.daosToDomain(c.InvitedUsers)

	for _, p := range c.Pictures {
		contest.Pictures = append(contest.Pictures, r.pictureDaoToDomain(p))
	}
	for _, rw := range c.Rewards {
		contest.Rewards = append(contest.Rewards, r.rewardDaoToDomain(rw))
	}
	for _, inv := range c.Invitations {
		contest.Invitations = append(contest.Invitations, r.invitationDaoToDomain(inv))
	}

	return contest
}

func (r *ContestRepository) daosToDomain(contests []dao.Contest) []domain.Contest {
	result := make([]domain.Contest, len(contests))
	for i, c := range contests {
		result[i] = r.daoToDomain(c)
	}
	return result
}

func (r *ContestRepository) pictureDomainToDao(p domain.Picture) dao.Picture {
	return dao.Picture{
		ID:          p.ID,
		ContestID:   p.ContestID,
		UserID:      p.UserID,
		URL:         p.URL,
		DriveFileID: p.DriveFileID,
		CreatedAt:   p.CreatedAt,
	}
}

func (r *ContestRepository) pictureDaoToDomain(p dao.Picture) domain.Picture {
	picture := domain.Picture{
		ID:          p.ID,
		ContestID:   p.ContestID,
		UserID:      p.UserID,
		URL:         p.URL,
		DriveFileID: p.DriveFileID,
		CreatedAt:   p.CreatedAt,
	}
	for _, v := range p.Votes {
		picture.Votes = append(picture.Votes, domain.Vote{
			ID:        v.ID,
			PictureID: v.PictureID,
			UserID:    v.UserID,
			CreatedAt: v.CreatedAt,
		})
	}
	return picture
}

func (r *ContestRepository) invitationDomainToDao(i domain.Invitation) dao.Invitation {
	return dao.Invitation{
		ID:               i.ID,
		ContestID:        i.ContestID,
		InviterID:        i.InviterID,
		InvitedID:        i.InvitedID,
		Type:             string(i.Type),
		Status:           string(i.Status),
		DateOfInvitation: i.DateOfInvitation,
	}
}

func (r *ContestRepository) invitationDaoToDomain(i dao.Invitation) domain.Invitation {
	return domain.Invitation{
		ID:               i.ID,
		ContestID:        i.ContestID,
		InviterID:        i.InviterID,
		InvitedID:        i.InvitedID,
		Type:             domain.InvitationType(i.Type),
		Status:           domain.InvitationStatus(i.Status),
		DateOfInvitation: i.DateOfInvitation,
	}
}

func (r *ContestRepository) rewardDomainToDao(rw domain.Reward) dao.Reward {
	return dao.Reward{
		ID:          rw.ID,
		ContestID:   rw.ContestID,
		Name:        rw.Name,
		Description: rw.Description,
		Place:       rw.Place,
		ImageURL:    rw.ImageURL,
		WinnerID:    rw.WinnerID,
		PictureID:   rw.PictureID,
	}
}

func (r *ContestRepository) rewardDaoToDomain(rw dao.Reward) domain.Reward {
	return domain.Reward{
		ID:          rw.ID,
		ContestID:   rw.ContestID,
		Name:        rw.Name,
		Description: rw.Description,
		Place:       rw.Place,
		ImageURL:    rw.ImageURL,
		WinnerID:    rw.WinnerID,
		PictureID:   rw.PictureID,
	}
}

func (r *ContestRepository) winnerDaoToDomain(w dao.ContestWinner) domain.ContestWinner {
	return domain.ContestWinner{
		ID:        w.ID,
		ContestID: w.ContestID,
		PictureID: w.PictureID,
		UserID:    w.UserID,
		Place:     w.Place,
		VoteCount: w.VoteCount,
		CreatedAt: w.CreatedAt,
	}
}

func (r *ContestRepository) Create(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(contest))
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}
	return r.daoToDomain(created), nil
}

func (r *ContestRepository) GetByID(ctx context.Context, id uint) (domain.Contest, error) {
	contest, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Contest{}, err
	}
	return r.daoToDomain(contest), nil
}

func (r *ContestRepository) GetAll(ctx context.Context) ([]domain.Contest, error) {
	contests, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}
	return r.daosToDomain(contests), nil
}

func (r *ContestRepository) GetByStatus(ctx context.Context, status domain.ContestStatus) ([]domain.Contest, error) {
	contests, err := r.dao.FindByStatus(ctx, string(status))
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByStatus -> %w", err)
	}
	return r.daosToDomain(contests), nil
}

func (r *ContestRepository) GetByOrganizer(ctx context.Context, organizerID uint) ([]domain.Contest, error) {
	contests, err := r.dao.FindByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByOrganizer -> %w", err)
	}
	return r.daosToDomain(contests), nil
}

func (r *ContestRepository) GetByParticipant(ctx context.Context, userID uint) ([]domain.Contest, error) {
	contests, err := r.dao.FindByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByParticipant -> %w", err)
	}
	return r.daosToDomain(contests), nil
}

func (r *ContestRepository) Update(ctx context.Context, contest domain.Contest) (domain.Contest, error) {
	updated, err := r.dao.Update(ctx, r.domainToDao(contest))
	if err != nil {
		return domain.Contest{}, fmt.Errorf("r.dao.Update -> %w", err)
	}
	return r.daoToDomain(updated), nil
}

func (r *ContestRepository) AddParticipant(ctx context.Context, contestID, userID uint, invitationID *uint) error {
	if err := r.dao.AddParticipant(ctx, contestID, userID, invitationID); err != nil {
		return fmt.Errorf("r.dao.AddParticipant -> %w", err)
	}
	return nil
}

func (r *ContestRepository) AddCommitteeMember(ctx context.Context, contestID, userID, invitationID uint) error {
	if err := r.dao.AddCommitteeMember(ctx, contestID, userID, invitationID); err != nil {
		return fmt.Errorf("r.dao.AddCommitteeMember -> %w", err)
	}
	return nil
}

func (r *ContestRepository) CreateInvitation(ctx context.Context, invitation domain.Invitation) (domain.Invitation, error) {
	addToInvited := invitation.Type == domain.InvitationClosedContest
	created, err := r.dao.InsertInvitation(ctx, r.invitationDomainToDao(invitation), addToInvited)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("r.dao.InsertInvitation -> %w", err)
	}
	return r.invitationDaoToDomain(created), nil
}

func (r *ContestRepository) GetInvitationByID(ctx context.Context, id uint) (domain.Invitation, error) {
	invitation, err := r.dao.FindInvitationByID(ctx, id)
	if err != nil {
		return domain.Invitation{}, err
	}
	return r.invitationDaoToDomain(invitation), nil
}

func (r *ContestRepository) GetInvitationsByInvited(ctx context.Context, userID uint) ([]domain.Invitation, error) {
	invitations, err := r.dao.FindInvitationsByInvited(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindInvitationsByInvited -> %w", err)
	}
	result := make([]domain.Invitation, len(invitations))
	for i, inv := range invitations {
		result[i] = r.invitationDaoToDomain(inv)
	}
	return result, nil
}

func (r *ContestRepository) UpdateInvitationStatus(ctx context.Context, id uint, status domain.InvitationStatus) error {
	if err := r.dao.UpdateInvitationStatus(ctx, id, string(status)); err != nil {
		return err
	}
	return nil
}

func (r *ContestRepository) AddPictures(ctx context.Context, pictures []domain.Picture) ([]domain.Picture, error) {
	daoPictures := make([]dao.Picture, len(pictures))
	for i, p := range pictures {
		daoPictures[i] = r.pictureDomainToDao(p)
	}

	created, err := r.dao.InsertPictures(ctx, daoPictures)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertPictures -> %w", err)
	}

	result := make([]domain.Picture, len(created))
	for i, p := range created {
		result[i] = r.pictureDaoToDomain(p)
	}
	return result, nil
}

func (r *ContestRepository) GetPictureByID(ctx context.Context, id uint) (domain.Picture, error) {
	picture, err := r.dao.FindPictureByID(ctx, id)
	if err != nil {
		return domain.Picture{}, err
	}
	return r.pictureDaoToDomain(picture), nil
}

func (r *ContestRepository) DeletePicture(ctx context.Context, id uint) error {
	if err := r.dao.DeletePicture(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeletePicture -> %w", err)
	}
	return nil
}

func (r *ContestRepository) AddVote(ctx context.Context, vote domain.Vote) (domain.Vote, error) {
	created, err := r.dao.InsertVote(ctx, dao.Vote{
		PictureID: vote.PictureID,
		UserID:    vote.UserID,
	})
	if err != nil {
		return domain.Vote{}, err
	}
	return domain.Vote{
		ID:        created.ID,
		PictureID: created.PictureID,
		UserID:    created.UserID,
		CreatedAt: created.CreatedAt,
	}, nil
}

func (r *ContestRepository) AddRewards(ctx context.Context, rewards []domain.Reward) ([]domain.Reward, error) {
	daoRewards := make([]dao.Reward, len(rewards))
	for i, rw := range rewards {
		daoRewards[i] = r.rewardDomainToDao(rw)
	}

	created, err := r.dao.InsertRewards(ctx, daoRewards)
	if err != nil {
		return nil, fmt.Errorf("r.dao.InsertRewards -> %w", err)
	}

	result := make([]domain.Reward, len(created))
	for i, rw := range created {
		result[i] = r.rewardDaoToDomain(rw)
	}
	return result, nil
}

func (r *ContestRepository) Finalize(ctx context.Context, contestID uint, endDate time.Time, winners []domain.ContestWinner, boundRewards []domain.Reward) error {
	daoWinners := make([]dao.ContestWinner, len(winners))
	for i, w := range winners {
		daoWinners[i] = dao.ContestWinner{
			ContestID: w.ContestID,
			PictureID: w.PictureID,
			UserID:    w.UserID,
			Place:     w.Place,
			VoteCount: w.VoteCount,
		}
	}
	daoRewards := make([]dao.Reward, len(boundRewards))
	for i, rw := range boundRewards {
		daoRewards[i] = r.rewardDomainToDao(rw)
	}

	if err := r.dao.FinalizeContest(ctx, contestID, endDate, daoWinners, daoRewards); err != nil {
		return fmt.Errorf("r.dao.FinalizeContest -> %w", err)
	}
	return nil
}

func (r *ContestRepository) Dismiss(ctx context.Context, contestID uint, endDate time.Time) error {
	if err := r.dao.DismissContest(ctx, contestID, endDate); err != nil {
		return fmt.Errorf("r.dao.DismissContest -> %w", err)
	}
	return nil
}

func (r *ContestRepository) GetWinnersByContestID(ctx context.Context, contestID uint) ([]domain.ContestWinner, error) {
	winners, err := r.dao.FindWinnersByContestID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindWinnersByContestID -> %w", err)
	}
	result := make([]domain.ContestWinner, len(winners))
	for i, w := range winners {
		result[i] = r.winnerDaoToDomain(w)
	}
	return result, nil
}
