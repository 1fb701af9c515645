package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"photocontest-api/internal/domain"
	"photocontest-api/internal/repository"
	"photocontest-api/internal/strategy"
)

const maxPictureSize = 1 << 20 // 1 MB

type ContestRepository interface {
	Create(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	GetByID(ctx context.Context, id uint) (domain.Contest, error)
	GetAll(ctx context.Context) ([]domain.Contest, error)
	GetByStatus(ctx context.Context, status domain.ContestStatus) ([]domain.Contest, error)
	GetByOrganizer(ctx context.Context, organizerID uint) ([]domain.Contest, error)
	GetByParticipant(ctx context.Context, userID uint) ([]domain.Contest, error)
	Update(ctx context.Context, contest domain.Contest) (domain.Contest, error)
	AddParticipant(ctx context.Context, contestID, userID uint, invitationID *uint) error
	AddCommitteeMember(ctx context.Context, contestID, userID, invitationID uint) error
	CreateInvitation(ctx context.Context, invitation domain.Invitation) (domain.Invitation, error)
	GetInvitationByID(ctx context.Context, id uint) (domain.Invitation, error)
	GetInvitationsByInvited(ctx context.Context, userID uint) ([]domain.Invitation, error)
	UpdateInvitationStatus(ctx context.Context, id uint, status domain.InvitationStatus) error
	AddPictures(ctx context.Context, pictures []domain.Picture) ([]domain.Picture, error)
	GetPictureByID(ctx context.Context, id uint) (domain.Picture, error)
	DeletePicture(ctx context.Context, id uint) error
	AddVote(ctx context.Context, vote domain.Vote) (domain.Vote, error)
	AddRewards(ctx context.Context, rewards []domain.Reward) ([]domain.Reward, error)
	Finalize(ctx context.Context, contestID uint, endDate time.Time, winners []domain.ContestWinner, boundRewards []domain.Reward) error
	Dismiss(ctx context.Context, contestID uint, endDate time.Time) error
	GetWinnersByContestID(ctx context.Context, contestID uint) ([]domain.ContestWinner, error)
}

type ContestUserRepository interface {
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
}

// StoredFile is the blob store's handle for an uploaded picture.
type StoredFile struct {
	ID  string
	URL string
}

type BlobStorage interface {
	Store(ctx context.Context, data []byte, filename, contentType string) (StoredFile, error)
	Delete(ctx context.Context, fileID string) error
}

// InvitationNotifier signals the invited user. Fire-and-forget: a delivery
// failure never rolls back the invitation.
type InvitationNotifier interface {
	NotifyInvitation(username string, invitationID uint)
}

type ContestService struct {
	repo     ContestRepository
	userRepo ContestUserRepository
	storage  BlobStorage
	notifier InvitationNotifier

	now func() time.Time

	// One mutex per contest. Every mutating operation on a contest runs
	// with its mutex held, so read-check-mutate-write sequences against the
	// same aggregate are serialized; different contests proceed in parallel.
	locks sync.Map
}

func NewContestService(repo ContestRepository, userRepo ContestUserRepository, storage BlobStorage, notifier InvitationNotifier) *ContestService {
	return &ContestService{
		repo:     repo,
		userRepo: userRepo,
		storage:  storage,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *ContestService) lockContest(contestID uint) func() {
	v, _ := s.locks.LoadOrStore(contestID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *ContestService) getContest(ctx context.Context, contestID uint) (domain.Contest, error) {
	contest, err := s.repo.GetByID(ctx, contestID)
	if err != nil {
		if errors.Is(err, repository.ErrContestNotFound) {
			return domain.Contest{}, domain.NotFound("contest", contestID)
		}
		return domain.Contest{}, fmt.Errorf("s.repo.GetByID -> %w", err)
	}
	return contest, nil
}

func (s *ContestService) getUser(ctx context.Context, userID uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, domain.NotFound("user", userID)
		}
		return domain.User{}, fmt.Errorf("s.userRepo.FindByID -> %w", err)
	}
	return user, nil
}

// CreateContest validates the strategy selection and opens the contest for
// submissions as Active.
func (s *ContestService) CreateContest(ctx context.Context, contest domain.Contest, organizerID uint) (domain.Contest, error) {
	if err := strategy.ValidateTags(&contest); err != nil {
		return domain.Contest{}, err
	}
	if contest.ParticipantsLimit != nil && *contest.ParticipantsLimit < 0 {
		return domain.Contest{}, domain.ValidationFailed("participants limit cannot be negative")
	}
	if contest.TopNPlaces != nil && *contest.TopNPlaces < 1 {
		return domain.Contest{}, domain.ValidationFailed("top places must be at least 1")
	}
	if !contest.SubmissionDeadline.After(s.now()) {
		return domain.Contest{}, domain.ValidationFailed("submission deadline must be in the future")
	}

	contest.Status = domain.ContestActive
	contest.IsOpenForSubmissions = true
	contest.StartDate = s.now()
	contest.EndDate = nil
	contest.OrganizerID = organizerID

	created, err := s.repo.Create(ctx, contest)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("s.repo.Create -> %w", err)
	}
	return created, nil
}

// AddRewards attaches reward templates to an active contest. Places must be
// at least 1 and within the contest's top-places cap when one is set.
func (s *ContestService) AddRewards(ctx context.Context, contestID, organizerID uint, rewards []domain.Reward) ([]domain.Reward, error) {
	if len(rewards) == 0 {
		return nil, domain.ValidationFailed("missing reward data")
	}

	unlock := s.lockContest(contestID)
	defer unlock()

	contest, err := s.getContest(ctx, contestID)
	if err != nil {
		return nil, err
	}
	if contest.OrganizerID != organizerID {
		return nil, domain.AuthorizationDenied("only the contest organizer can add rewards")
	}
	if !contest.IsActive() {
		return nil, domain.StateViolation("cannot add reward to inactive contest")
	}

	for i := range rewards {
		if rewards[i].Place < 1 || (contest.TopNPlaces != nil && rewards[i].Place > *contest.TopNPlaces) {
			return nil, domain.ValidationFailed("reward for unknown place %d", rewards[i].Place)
		}
		rewards[i].ContestID = contest.ID
	}

	created, err := s.repo.AddRewards(ctx, rewards)
	if err != nil {
		return nil, fmt.Errorf("s.repo.AddRewards -> %w", err)
	}
	return created, nil
}

// Join runs the deadline and participation strategies and, if both admit,
// adds the user to the participant set. For closed contests the pending
// invitation is accepted in the same unit of work.
func (s *ContestService) Join(ctx context.Context, contestID, userID uint) error {
	unlock := s.lockContest(contestID)
	defer unlock()

	contest, err := s.getContest(ctx, contestID)
	if err != nil {
		return err
	}
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return err
	}

	if !contest.IsActive() {
		return domain.StateViolation("the contest is not active")
	}
	if contest.OrganizerID == user.ID {
		return domain.RuleRejected("you cannot join contest created by you")
	}

	deadline, err := strategy.ForDeadline(contest.DeadlineStrategy)
	if err != nil {
		return err
	}
	if err = deadline.CheckDeadline(&contest, user, s.now(), strategy.ActionJoin); err != nil {
		return err
	}

	participation, err := strategy.ForParticipation(contest.ParticipationStrategy)
	if err != nil {
		return err
	}
	decision, err := participation.Evaluate(user, &contest)
	if err != nil {
		return err
	}

	var invitationID *uint
	if decision.AcceptInvitation != nil {
		invitationID = &decision.AcceptInvitation.ID
	}

	if err = s.repo.AddParticipant(ctx, contest.ID, user.ID, invitationID); err != nil {
		return fmt.Errorf("s.repo.AddParticipant -> %w", err)
	}
	return nil
}

func validateUploads(uploads []domain.PictureUpload) error {
	if len(uploads) == 0 {
		return domain.ValidationFailed("no file data")
	}
	for _, u := range uploads {
		if len(u.Data) == 0 {
			return domain.ValidationFailed("empty file %q", u.Filename)
		}
		if !strings.Contains(u.ContentType, "image") {
			return domain.ValidationFailed("the file %q is not a picture", u.Filename)
		}
		if len(u.Data) > maxPictureSize {
			return domain.ValidationFailed("picture size must be in range [1 - 1024 kb]")
		}
	}
	return nil
}

// Upload stores an entry batch. The whole batch is pushed to the blob store
// before anything is persisted; a storage failure aborts the upload and
// releases the files already stored, so no partial batch is ever visible.
func (s *ContestService) Upload(ctx context.Context, contestID, userID uint, uploads []domain.PictureUpload) ([]domain.Picture, error) {
	if err := validateUploads(uploads); err != nil {
		return nil, err
	}

	unlock := s.lockContest(contestID)
	defer unlock()

	contest, err := s.getContest(ctx, contestID)
	if err != nil {
		return nil, err
	}
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !contest.IsActive() {
		return nil, domain.StateViolation("the contest is not active")
	}
	if contest.OrganizerID == user.ID || contest.HasCommitteeMember(user.ID) || !contest.HasParticipant(user.ID) {
		return nil, domain.AuthorizationDenied("you are either organizer of this contest or in the committee or you don't participate in it")
	}

	deadline, err := strategy.ForDeadline(contest.DeadlineStrategy)
	if err != nil {
		return nil, err
	}
	if err = deadline.CheckDeadline(&contest, user, s.now(), strategy.ActionUpload); err != nil {
		return nil, err
	}

	stored := make([]StoredFile, 0, len(uploads))
	for _, u := range uploads {
		file, storeErr := s.storage.Store(ctx, u.Data, u.Filename, u.ContentType)
		if storeErr != nil {
			s.releaseStored(ctx, stored)
			return nil, domain.CollaboratorFailure("storing picture %q failed: %v", u.Filename, storeErr)
		}
		stored = append(stored, file)
	}

	pictures := make([]domain.Picture, len(stored))
	for i, file := range stored {
		pictures[i] = domain.Picture{
			ContestID:   contest.ID,
			UserID:      user.ID,
			URL:         file.URL,
			DriveFileID: file.ID,
		}
	}

	created, err := s.repo.AddPictures(ctx, pictures)
	if err != nil {
		s.releaseStored(ctx, stored)
		return nil, fmt.Errorf("s.repo.AddPictures -> %w", err)
	}
	return created, nil
}

func (s *ContestService) releaseStored(ctx context.Context, stored []StoredFile) {
	for _, file := range stored {
		if err := s.storage.Delete(ctx, file.ID); err != nil {
			zap.L().Warn("failed to release stored picture",
				zap.String("file_id", file.ID),
				zap.Error(err))
		}
	}
}

// Vote casts a vote on a picture according to the contest's voting strategy.
// The (voter, picture) uniqueness is checked in memory and enforced again by
// the storage layer, so concurrent duplicates cannot both land.
func (s *ContestService) Vote(ctx context.Context, pictureID, userID uint) (domain.Vote, error) {
	picture, err := s.repo.GetPictureByID(ctx, pictureID)
	if err != nil {
		if errors.Is(err, repository.ErrPictureNotFound) {
			return domain.Vote{}, domain.NotFound("picture", pictureID)
		}
		return domain.Vote{}, fmt.Errorf("s.repo.GetPictureByID -> %w", err)
	}

	unlock := s.lockContest(picture.ContestID)
	defer unlock()

	contest, err := s.getContest(ctx, picture.ContestID)
	if err != nil {
		return domain.Vote{}, err
	}
	voter, err := s.getUser(ctx, userID)
	if err != nil {
		return domain.Vote{}, err
	}

	// Re-resolve the picture from the fresh aggregate so the duplicate
	// check sees votes committed before the lock was acquired.
	var current *domain.Picture
	for i := range contest.Pictures {
		if contest.Pictures[i].ID == pictureID {
			current = &contest.Pictures[i]
			break
		}
	}
	if current == nil {
		return domain.Vote{}, domain.NotFound("picture", pictureID)
	}

	voting, err := strategy.ForVoting(contest.VotingStrategy)
	if err != nil {
		return domain.Vote{}, err
	}
	if err = voting.CheckVote(voter, &contest, current); err != nil {
		return domain.Vote{}, err
	}

	vote, err := s.repo.AddVote(ctx, domain.Vote{PictureID: pictureID, UserID: userID})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateVote) {
			return domain.Vote{}, domain.RuleRejected("you have already voted for this picture")
		}
		return domain.Vote{}, fmt.Errorf("s.repo.AddVote -> %w", err)
	}
	return vote, nil
}

// InviteUser creates a Neutral invitation for committee membership or
// closed-contest participation and notifies the invited user.
func (s *ContestService) InviteUser(ctx context.Context, contestID, inviterID uint, username string, invType domain.InvitationType) (domain.Invitation, error) {
	if invType != domain.InvitationCommittee && invType != domain.InvitationClosedContest {
		return domain.Invitation{}, domain.ValidationFailed("unknown invitation type %q", invType)
	}

	unlock := s.lockContest(contestID)
	defer unlock()

	contest, err := s.getContest(ctx, contestID)
	if err != nil {
		return domain.Invitation{}, err
	}
	if !contest.IsActive() {
		return domain.Invitation{}, domain.StateViolation("the contest is not active")
	}
	if contest.OrganizerID != inviterID {
		return domain.Invitation{}, domain.AuthorizationDenied("only the contest organizer can invite users")
	}
	if invType == domain.InvitationCommittee && contest.VotingStrategy != domain.VotingClosed {
		return domain.Invitation{}, domain.RuleRejected("the contest voting strategy type is not 'Closed'")
	}
	if invType == domain.InvitationClosedContest && contest.ParticipationStrategy != domain.ParticipationClosed {
		return domain.Invitation{}, domain.RuleRejected("the contest participation strategy type is not 'Closed'")
	}
	if !contest.IsOpenForSubmissions {
		return domain.Invitation{}, domain.StateViolation("the contest is closed for submissions")
	}

	invited, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.Invitation{}, domain.NotFound("user", username)
		}
		return domain.Invitation{}, fmt.Errorf("s.userRepo.FindByUsername -> %w", err)
	}
	if invited.ID == inviterID {
		return domain.Invitation{}, domain.RuleRejected("users cannot invite themselves")
	}
	if contest.ActiveInvitation(invited.ID, invType) != nil {
		return domain.Invitation{}, domain.RuleRejected("user is already invited to contest with id %d", contest.ID)
	}

	invitation := domain.Invitation{
		ContestID:        contest.ID,
		InviterID:        inviterID,
		InvitedID:        invited.ID,
		Type:             invType,
		Status:           domain.InvitationNeutral,
		DateOfInvitation: s.now(),
	}

	created, err := s.repo.CreateInvitation(ctx, invitation)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("s.repo.CreateInvitation -> %w", err)
	}

	s.notifier.NotifyInvitation(invited.Username, created.ID)

	return created, nil
}

// JoinCommittee accepts a pending committee invitation and adds the user to
// the committee. Participants can never join the committee.
func (s *ContestService) JoinCommittee(ctx context.Context, contestID, userID uint) error {
	unlock := s.lockContest(contestID)
	defer unlock()

	contest, err := s.getContest(ctx, contestID)
	if err != nil {
		return err
	}
	if !contest.IsActive() {
		return domain.StateViolation("the contest is not active")
	}
	if contest.HasParticipant(userID) {
		return domain.RuleRejected("you cannot join the committee, you participate in this contest")
	}
	if contest.HasCommitteeMember(userID) {
		return domain.RuleRejected("you are already in the committee")
	}

	invitation := contest.ActiveInvitation(userID, domain.InvitationCommittee)
	if invitation == nil {
		return domain.AuthorizationDenied("you don't have an invitation")
	}
	if !invitation.IsPending() {
		return domain.StateViolation("you already have responded to the invitation")
	}

	if err = s.repo.AddCommitteeMember(ctx, contest.ID, userID, invitation.ID); err != nil {
		return fmt.Errorf("s.repo.AddCommitteeMember -> %w", err)
	}
	return nil
}

// DeclineInvitation moves a pending invitation to its Declined terminal
// state. Only the invited user may respond.
func (s *ContestService) DeclineInvitation(ctx context.Context, invitationID, userID uint) error {
	invitation, err := s.repo.GetInvitationByID(ctx, invitationID)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return domain.NotFound("invitation", invitationID)
		}
		return fmt.Errorf("s.repo.GetInvitationByID -> %w", err)
	}
	if invitation.InvitedID != userID {
		return domain.AuthorizationDenied("the invitation is not addressed to you")
	}

	unlock := s.lockContest(invitation.ContestID)
	defer unlock()

	// Re-read under the lock; the invitation may have been answered by a
	// racing accept.
	invitation, err = s.repo.GetInvitationByID(ctx, invitationID)
	if err != nil {
		return fmt.Errorf("s.repo.GetInvitationByID -> %w", err)
	}
	if err = invitation.Decline(); err != nil {
		return err
	}

	if err = s.repo.UpdateInvitationStatus(ctx, invitationID, domain.InvitationDeclined); err != nil {
		return fmt.Errorf("s.repo.UpdateInvitationStatus -> %w", err)
	}
	return nil
}

// Finalize closes the contest, runs the reward strategy once and persists
// the standings. A contest without votes finalizes with no winners.
func (s *ContestService) Finalize(ctx context.Context, contestID, userID uint) ([]domain.ContestWinner, error) {
	unlock := s.lockContest(contestID)
	defer unlock()

	contest, err := s.getContest(ctx, contestID)
	if err != nil {
		return nil, err
	}
	if !contest.IsActive() {
		return nil, domain.StateViolation("contest with id %d is not active", contestID)
	}
	if contest.OrganizerID != userID {
		return nil, domain.AuthorizationDenied("only the contest organizer can finalize it")
	}

	reward, err := strategy.ForReward(contest.RewardStrategy)
	if err != nil {
		return nil, err
	}
	placements := reward.ApplyReward(&contest)

	winners := make([]domain.ContestWinner, len(placements))
	for i, placement := range placements {
		winners[i] = domain.ContestWinner{
			ContestID: contest.ID,
			PictureID: placement.Picture.ID,
			UserID:    placement.Picture.UserID,
			Place:     placement.Place,
			VoteCount: len(placement.Picture.Votes),
		}
	}

	boundRewards := bindRewards(contest.Rewards, placements)

	if err = s.repo.Finalize(ctx, contest.ID, s.now(), winners, boundRewards); err != nil {
		return nil, fmt.Errorf("s.repo.Finalize -> %w", err)
	}
	return winners, nil
}

// bindRewards matches reward templates to placements by place number. Each
// template is consumed at most once; when a tie spans a place, the first
// placement in ranking order takes the template. Places without a template
// are skipped.
func bindRewards(templates []domain.Reward, placements []domain.Placement) []domain.Reward {
	var bound []domain.Reward
	used := make(map[uint]bool)
	for _, placement := range placements {
		for _, template := range templates {
			if used[template.ID] || template.Place != placement.Place {
				continue
			}
			winnerID := placement.Picture.UserID
			pictureID := placement.Picture.ID
			template.WinnerID = &winnerID
			template.PictureID = &pictureID
			bound = append(bound, template)
			used[template.ID] = true
			break
		}
	}
	return bound
}

// Dismiss closes the contest without computing rewards.
func (s *ContestService) Dismiss(ctx context.Context, contestID, userID uint) error {
	unlock := s.lockContest(contestID)
	defer unlock()

	contest, err := s.getContest(ctx, contestID)
	if err != nil {
		return err
	}
	if !contest.IsActive() {
		return domain.StateViolation("contest with id %d is not active", contestID)
	}
	if contest.OrganizerID != userID {
		return domain.AuthorizationDenied("only the contest organizer can dismiss it")
	}

	if err = s.repo.Dismiss(ctx, contest.ID, s.now()); err != nil {
		return fmt.Errorf("s.repo.Dismiss -> %w", err)
	}
	return nil
}

// UpdateContest lets the organizer edit title, description and end date
// while the contest is still active. Blank fields keep their value.
func (s *ContestService) UpdateContest(ctx context.Context, contestID, userID uint, title, description string, endDate *time.Time) (domain.Contest, error) {
	unlock := s.lockContest(contestID)
	defer unlock()

	contest, err := s.getContest(ctx, contestID)
	if err != nil {
		return domain.Contest{}, err
	}
	if contest.OrganizerID != userID {
		return domain.Contest{}, domain.AuthorizationDenied("logged user is not the contest organizer")
	}
	if !contest.IsActive() {
		return domain.Contest{}, domain.StateViolation("the contest is not active")
	}

	if strings.TrimSpace(title) != "" {
		contest.Title = title
	}
	if strings.TrimSpace(description) != "" {
		contest.Description = description
	}
	if endDate != nil {
		contest.EndDate = endDate
	}

	updated, err := s.repo.Update(ctx, contest)
	if err != nil {
		return domain.Contest{}, fmt.Errorf("s.repo.Update -> %w", err)
	}
	return updated, nil
}

// DeletePicture removes a picture and releases its blob-store reference.
// Administrators only.
func (s *ContestService) DeletePicture(ctx context.Context, pictureID, actorID uint) error {
	actor, err := s.getUser(ctx, actorID)
	if err != nil {
		return err
	}
	if !actor.IsAdmin() {
		return domain.AuthorizationDenied("only administrators can delete pictures")
	}

	picture, err := s.repo.GetPictureByID(ctx, pictureID)
	if err != nil {
		if errors.Is(err, repository.ErrPictureNotFound) {
			return domain.NotFound("picture", pictureID)
		}
		return fmt.Errorf("s.repo.GetPictureByID -> %w", err)
	}

	unlock := s.lockContest(picture.ContestID)
	defer unlock()

	if err = s.repo.DeletePicture(ctx, pictureID); err != nil {
		return fmt.Errorf("s.repo.DeletePicture -> %w", err)
	}

	if err = s.storage.Delete(ctx, picture.DriveFileID); err != nil {
		// The row is gone; an orphaned blob is logged, not surfaced.
		zap.L().Warn("failed to release picture from blob storage",
			zap.Uint("picture_id", pictureID),
			zap.String("file_id", picture.DriveFileID),
			zap.Error(err))
	}
	return nil
}

func (s *ContestService) GetContest(ctx context.Context, contestID uint) (domain.Contest, error) {
	return s.getContest(ctx, contestID)
}

func (s *ContestService) GetContests(ctx context.Context) ([]domain.Contest, error) {
	contests, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetAll -> %w", err)
	}
	return contests, nil
}

func (s *ContestService) GetActiveContests(ctx context.Context) ([]domain.Contest, error) {
	contests, err := s.repo.GetByStatus(ctx, domain.ContestActive)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetByStatus -> %w", err)
	}
	return contests, nil
}

func (s *ContestService) GetInactiveContests(ctx context.Context) ([]domain.Contest, error) {
	finalized, err := s.repo.GetByStatus(ctx, domain.ContestFinalized)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetByStatus -> %w", err)
	}
	dismissed, err := s.repo.GetByStatus(ctx, domain.ContestDismissed)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetByStatus -> %w", err)
	}
	return append(finalized, dismissed...), nil
}

func (s *ContestService) GetContestsByOrganizer(ctx context.Context, organizerID uint) ([]domain.Contest, error) {
	contests, err := s.repo.GetByOrganizer(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetByOrganizer -> %w", err)
	}
	return contests, nil
}

func (s *ContestService) GetContestsByParticipant(ctx context.Context, userID uint) ([]domain.Contest, error) {
	contests, err := s.repo.GetByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetByParticipant -> %w", err)
	}
	return contests, nil
}

func (s *ContestService) GetUserInvitations(ctx context.Context, userID uint) ([]domain.Invitation, error) {
	invitations, err := s.repo.GetInvitationsByInvited(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetInvitationsByInvited -> %w", err)
	}
	return invitations, nil
}

func (s *ContestService) GetContestWinners(ctx context.Context, contestID uint) ([]domain.ContestWinner, error) {
	if _, err := s.getContest(ctx, contestID); err != nil {
		return nil, err
	}
	winners, err := s.repo.GetWinnersByContestID(ctx, contestID)
	if err != nil {
		return nil, fmt.Errorf("s.repo.GetWinnersByContestID -> %w", err)
	}
	return winners, nil
}
