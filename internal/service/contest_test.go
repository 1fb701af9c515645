package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photocontest-api/internal/domain"
	"photocontest-api/internal/repository"
)

type fakeRepo struct {
	mu       sync.Mutex
	contests map[uint]*domain.Contest
	winners  map[uint][]domain.ContestWinner
	nextID   uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		contests: make(map[uint]*domain.Contest),
		winners:  make(map[uint][]domain.ContestWinner),
		nextID:   1,
	}
}

func (f *fakeRepo) id() uint {
	id := f.nextID
	f.nextID++
	return id
}

func (f *fakeRepo) Create(_ context.Context, contest domain.Contest) (domain.Contest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	contest.ID = f.id()
	f.contests[contest.ID] = &contest
	return contest, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uint) (domain.Contest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contests[id]
	if !ok {
		return domain.Contest{}, repository.ErrContestNotFound
	}
	return *c, nil
}

func (f *fakeRepo) GetAll(_ context.Context) ([]domain.Contest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Contest
	for _, c := range f.contests {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeRepo) GetByStatus(_ context.Context, status domain.ContestStatus) ([]domain.Contest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Contest
	for _, c := range f.contests {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByOrganizer(_ context.Context, organizerID uint) ([]domain.Contest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Contest
	for _, c := range f.contests {
		if c.OrganizerID == organizerID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByParticipant(_ context.Context, userID uint) ([]domain.Contest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Contest
	for _, c := range f.contests {
		if c.HasParticipant(userID) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, contest domain.Contest) (domain.Contest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.contests[contest.ID]
	if !ok {
		return domain.Contest{}, repository.ErrContestNotFound
	}
	c.Title = contest.Title
	c.Description = contest.Description
	c.EndDate = contest.EndDate
	return *c, nil
}

func (f *fakeRepo) AddParticipant(_ context.Context, contestID, userID uint, invitationID *uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.contests[contestID]
	c.Participants = append(c.Participants, domain.User{ID: userID})
	if invitationID != nil {
		for i := range c.Invitations {
			if c.Invitations[i].ID == *invitationID {
				c.Invitations[i].Status = domain.InvitationAccepted
			}
		}
	}
	return nil
}

func (f *fakeRepo) AddCommitteeMember(_ context.Context, contestID, userID, invitationID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.contests[contestID]
	c.Committee = append(c.Committee, domain.User{ID: userID})
	for i := range c.Invitations {
		if c.Invitations[i].ID == invitationID {
			c.Invitations[i].Status = domain.InvitationAccepted
		}
	}
	return nil
}

func (f *fakeRepo) CreateInvitation(_ context.Context, invitation domain.Invitation) (domain.Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	invitation.ID = f.id()
	c := f.contests[invitation.ContestID]
	c.Invitations = append(c.Invitations, invitation)
	if invitation.Type == domain.InvitationClosedContest {
		c.InvitedUsers = append(c.InvitedUsers, domain.User{ID: invitation.InvitedID})
	}
	return invitation, nil
}

func (f *fakeRepo) GetInvitationByID(_ context.Context, id uint) (domain.Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.contests {
		for _, inv := range c.Invitations {
			if inv.ID == id {
				return inv, nil
			}
		}
	}
	return domain.Invitation{}, repository.ErrInvitationNotFound
}

func (f *fakeRepo) GetInvitationsByInvited(_ context.Context, userID uint) ([]domain.Invitation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Invitation
	for _, c := range f.contests {
		for _, inv := range c.Invitations {
			if inv.InvitedID == userID {
				out = append(out, inv)
			}
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateInvitationStatus(_ context.Context, id uint, status domain.InvitationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.contests {
		for i := range c.Invitations {
			if c.Invitations[i].ID == id {
				c.Invitations[i].Status = status
				return nil
			}
		}
	}
	return repository.ErrInvitationNotFound
}

func (f *fakeRepo) AddPictures(_ context.Context, pictures []domain.Picture) ([]domain.Picture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range pictures {
		pictures[i].ID = f.id()
		c := f.contests[pictures[i].ContestID]
		c.Pictures = append(c.Pictures, pictures[i])
	}
	return pictures, nil
}

func (f *fakeRepo) GetPictureByID(_ context.Context, id uint) (domain.Picture, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.contests {
		for _, p := range c.Pictures {
			if p.ID == id {
				return p, nil
			}
		}
	}
	return domain.Picture{}, repository.ErrPictureNotFound
}

func (f *fakeRepo) DeletePicture(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.contests {
		for i, p := range c.Pictures {
			if p.ID == id {
				c.Pictures = append(c.Pictures[:i], c.Pictures[i+1:]...)
				return nil
			}
		}
	}
	return repository.ErrPictureNotFound
}

func (f *fakeRepo) AddVote(_ context.Context, vote domain.Vote) (domain.Vote, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.contests {
		for i := range c.Pictures {
			if c.Pictures[i].ID != vote.PictureID {
				continue
			}
			for _, v := range c.Pictures[i].Votes {
				if v.UserID == vote.UserID {
					return domain.Vote{}, repository.ErrDuplicateVote
				}
			}
			vote.ID = f.id()
			c.Pictures[i].Votes = append(c.Pictures[i].Votes, vote)
			return vote, nil
		}
	}
	return domain.Vote{}, repository.ErrPictureNotFound
}

func (f *fakeRepo) AddRewards(_ context.Context, rewards []domain.Reward) ([]domain.Reward, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range rewards {
		rewards[i].ID = f.id()
		c := f.contests[rewards[i].ContestID]
		c.Rewards = append(c.Rewards, rewards[i])
	}
	return rewards, nil
}

func (f *fakeRepo) Finalize(_ context.Context, contestID uint, endDate time.Time, winners []domain.ContestWinner, boundRewards []domain.Reward) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.contests[contestID]
	c.Status = domain.ContestFinalized
	c.IsOpenForSubmissions = false
	c.EndDate = &endDate
	f.winners[contestID] = winners
	for _, bound := range boundRewards {
		for i := range c.Rewards {
			if c.Rewards[i].ID == bound.ID {
				c.Rewards[i] = bound
			}
		}
	}
	return nil
}

func (f *fakeRepo) Dismiss(_ context.Context, contestID uint, endDate time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.contests[contestID]
	c.Status = domain.ContestDismissed
	c.IsOpenForSubmissions = false
	c.EndDate = &endDate
	return nil
}

func (f *fakeRepo) GetWinnersByContestID(_ context.Context, contestID uint) ([]domain.ContestWinner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.winners[contestID], nil
}

type fakeUserRepo struct {
	users map[uint]domain.User
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (domain.User, error) {
	u, ok := f.users[id]
	if !ok {
		return domain.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (domain.User, error) {
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return domain.User{}, repository.ErrUserNotFound
}

type fakeStorage struct {
	mu        sync.Mutex
	stored    int
	deleted   []string
	failAfter int // fail the Nth store (1-based); 0 never fails
}

func (f *fakeStorage) Store(_ context.Context, _ []byte, filename, _ string) (StoredFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stored++
	if f.failAfter > 0 && f.stored >= f.failAfter {
		return StoredFile{}, errors.New("blob store unavailable")
	}
	id := fmt.Sprintf("file-%d", f.stored)
	return StoredFile{ID: id, URL: "http://drive.local/" + id}, nil
}

func (f *fakeStorage) Delete(_ context.Context, fileID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, fileID)
	return nil
}

type fakeNotifier struct {
	mu    sync.Mutex
	calls []uint
}

func (f *fakeNotifier) NotifyInvitation(_ string, invitationID uint) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, invitationID)
}

type testEnv struct {
	svc      *ContestService
	repo     *fakeRepo
	users    *fakeUserRepo
	storage  *fakeStorage
	notifier *fakeNotifier
	now      time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		repo: newFakeRepo(),
		users: &fakeUserRepo{users: map[uint]domain.User{
			1: {ID: 1, Username: "organizer", Role: "user"},
			2: {ID: 2, Username: "alice", Role: "user"},
			3: {ID: 3, Username: "bob", Role: "user"},
			4: {ID: 4, Username: "carol", Role: "user"},
			9: {ID: 9, Username: "admin", Role: "admin"},
		}},
		storage:  &fakeStorage{},
		notifier: &fakeNotifier{},
		now:      time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	env.svc = NewContestService(env.repo, env.users, env.storage, env.notifier)
	env.svc.now = func() time.Time { return env.now }

	return env
}

func (e *testEnv) createContest(t *testing.T, mutate func(*domain.Contest)) domain.Contest {
	t.Helper()

	contest := domain.Contest{
		Title:                 "Spring Landscapes",
		Description:           "Best landscape shots of the season",
		ParticipationStrategy: domain.ParticipationOpen,
		VotingStrategy:        domain.VotingOpen,
		DeadlineStrategy:      domain.DeadlineSubmission,
		RewardStrategy:        domain.RewardTopN,
		SubmissionDeadline:    e.now.Add(48 * time.Hour),
	}
	if mutate != nil {
		mutate(&contest)
	}

	created, err := e.svc.CreateContest(context.Background(), contest, 1)
	require.NoError(t, err)
	return created
}

func (e *testEnv) addParticipantWithPicture(t *testing.T, contestID, userID uint) domain.Picture {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, e.svc.Join(ctx, contestID, userID))

	pictures, err := e.svc.Upload(ctx, contestID, userID, []domain.PictureUpload{
		{Filename: "shot.jpg", ContentType: "image/jpeg", Data: []byte("jpeg-bytes")},
	})
	require.NoError(t, err)
	require.Len(t, pictures, 1)
	return pictures[0]
}

func TestCreateContest(t *testing.T) {
	t.Run("starts active and open for submissions", func(t *testing.T) {
		env := newTestEnv(t)

		contest := env.createContest(t, nil)

		assert.Equal(t, domain.ContestActive, contest.Status)
		assert.True(t, contest.IsOpenForSubmissions)
		assert.Equal(t, uint(1), contest.OrganizerID)
		assert.Nil(t, contest.EndDate)
	})

	t.Run("rejects an unknown strategy tag", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.svc.CreateContest(context.Background(), domain.Contest{
			Title:                 "Broken",
			ParticipationStrategy: "InviteOnly",
			VotingStrategy:        domain.VotingOpen,
			DeadlineStrategy:      domain.DeadlineSubmission,
			RewardStrategy:        domain.RewardTopN,
			SubmissionDeadline:    env.now.Add(time.Hour),
		}, 1)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindValidationFailed))
	})

	t.Run("rejects a deadline in the past", func(t *testing.T) {
		env := newTestEnv(t)

		_, err := env.svc.CreateContest(context.Background(), domain.Contest{
			Title:                 "Too late",
			ParticipationStrategy: domain.ParticipationOpen,
			VotingStrategy:        domain.VotingOpen,
			DeadlineStrategy:      domain.DeadlineSubmission,
			RewardStrategy:        domain.RewardTopN,
			SubmissionDeadline:    env.now.Add(-time.Hour),
		}, 1)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindValidationFailed))
	})
}

func TestJoin(t *testing.T) {
	t.Run("the organizer cannot join their own contest", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)

		err := env.svc.Join(context.Background(), contest.ID, 1)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("a second join is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		ctx := context.Background()

		require.NoError(t, env.svc.Join(ctx, contest.ID, 2))
		err := env.svc.Join(ctx, contest.ID, 2)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("joins past the participants limit are rejected", func(t *testing.T) {
		env := newTestEnv(t)
		limit := 1
		contest := env.createContest(t, func(c *domain.Contest) {
			c.ParticipantsLimit = &limit
		})
		ctx := context.Background()

		require.NoError(t, env.svc.Join(ctx, contest.ID, 2))
		err := env.svc.Join(ctx, contest.ID, 3)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("joining a closed contest consumes the invitation", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.ParticipationStrategy = domain.ParticipationClosed
		})
		ctx := context.Background()

		invitation, err := env.svc.InviteUser(ctx, contest.ID, 1, "alice", domain.InvitationClosedContest)
		require.NoError(t, err)

		require.NoError(t, env.svc.Join(ctx, contest.ID, 2))

		updated, err := env.repo.GetInvitationByID(ctx, invitation.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.InvitationAccepted, updated.Status)

		fresh, err := env.svc.GetContest(ctx, contest.ID)
		require.NoError(t, err)
		assert.True(t, fresh.HasParticipant(2))
	})

	t.Run("uninvited users cannot join a closed contest", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.ParticipationStrategy = domain.ParticipationClosed
		})

		err := env.svc.Join(context.Background(), contest.ID, 3)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))
	})
}

func TestUpload(t *testing.T) {
	t.Run("participants can upload images", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)

		picture := env.addParticipantWithPicture(t, contest.ID, 2)

		assert.Equal(t, contest.ID, picture.ContestID)
		assert.Equal(t, uint(2), picture.UserID)
		assert.NotEmpty(t, picture.URL)
	})

	t.Run("non-participants cannot upload", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)

		_, err := env.svc.Upload(context.Background(), contest.ID, 2, []domain.PictureUpload{
			{Filename: "shot.jpg", ContentType: "image/jpeg", Data: []byte("x")},
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))
	})

	t.Run("rejects non-image files", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		require.NoError(t, env.svc.Join(context.Background(), contest.ID, 2))

		_, err := env.svc.Upload(context.Background(), contest.ID, 2, []domain.PictureUpload{
			{Filename: "notes.txt", ContentType: "text/plain", Data: []byte("hello")},
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindValidationFailed))
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		require.NoError(t, env.svc.Join(context.Background(), contest.ID, 2))

		_, err := env.svc.Upload(context.Background(), contest.ID, 2, []domain.PictureUpload{
			{Filename: "huge.jpg", ContentType: "image/jpeg", Data: make([]byte, maxPictureSize+1)},
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindValidationFailed))
	})

	t.Run("a storage failure mid-batch releases the stored files", func(t *testing.T) {
		env := newTestEnv(t)
		env.storage.failAfter = 2
		contest := env.createContest(t, nil)
		require.NoError(t, env.svc.Join(context.Background(), contest.ID, 2))

		_, err := env.svc.Upload(context.Background(), contest.ID, 2, []domain.PictureUpload{
			{Filename: "a.jpg", ContentType: "image/jpeg", Data: []byte("a")},
			{Filename: "b.jpg", ContentType: "image/jpeg", Data: []byte("b")},
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindCollaboratorFailure))
		assert.Equal(t, []string{"file-1"}, env.storage.deleted)

		fresh, err := env.svc.GetContest(context.Background(), contest.ID)
		require.NoError(t, err)
		assert.Empty(t, fresh.Pictures)
	})

	t.Run("uploads after the deadline are rejected", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		require.NoError(t, env.svc.Join(context.Background(), contest.ID, 2))

		env.now = contest.SubmissionDeadline

		_, err := env.svc.Upload(context.Background(), contest.ID, 2, []domain.PictureUpload{
			{Filename: "late.jpg", ContentType: "image/jpeg", Data: []byte("x")},
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})
}

func TestVote(t *testing.T) {
	t.Run("a duplicate vote is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		picture := env.addParticipantWithPicture(t, contest.ID, 2)
		ctx := context.Background()

		_, err := env.svc.Vote(ctx, picture.ID, 3)
		require.NoError(t, err)

		_, err = env.svc.Vote(ctx, picture.ID, 3)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("voting for your own picture is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		picture := env.addParticipantWithPicture(t, contest.ID, 2)

		_, err := env.svc.Vote(context.Background(), picture.ID, 2)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("closed voting admits only the committee", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.VotingStrategy = domain.VotingClosed
		})
		picture := env.addParticipantWithPicture(t, contest.ID, 2)
		ctx := context.Background()

		_, err := env.svc.Vote(ctx, picture.ID, 3)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))

		_, err = env.svc.InviteUser(ctx, contest.ID, 1, "carol", domain.InvitationCommittee)
		require.NoError(t, err)
		require.NoError(t, env.svc.JoinCommittee(ctx, contest.ID, 4))

		_, err = env.svc.Vote(ctx, picture.ID, 4)
		assert.NoError(t, err)
	})

	t.Run("concurrent duplicate votes land exactly once", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		picture := env.addParticipantWithPicture(t, contest.ID, 2)

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, errs[i] = env.svc.Vote(context.Background(), picture.ID, 3)
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, err := range errs {
			if err == nil {
				succeeded++
			} else {
				assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
			}
		}
		assert.Equal(t, 1, succeeded)
	})
}

func TestInviteUser(t *testing.T) {
	t.Run("only the organizer can invite", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.VotingStrategy = domain.VotingClosed
		})

		_, err := env.svc.InviteUser(context.Background(), contest.ID, 2, "bob", domain.InvitationCommittee)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))
	})

	t.Run("committee invites require closed voting", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil) // open voting

		_, err := env.svc.InviteUser(context.Background(), contest.ID, 1, "bob", domain.InvitationCommittee)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("closed-contest invites require closed participation", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil) // open participation

		_, err := env.svc.InviteUser(context.Background(), contest.ID, 1, "bob", domain.InvitationClosedContest)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("organizers cannot invite themselves", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.VotingStrategy = domain.VotingClosed
		})

		_, err := env.svc.InviteUser(context.Background(), contest.ID, 1, "organizer", domain.InvitationCommittee)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("a second active invitation of the same type is rejected", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.VotingStrategy = domain.VotingClosed
		})
		ctx := context.Background()

		_, err := env.svc.InviteUser(ctx, contest.ID, 1, "bob", domain.InvitationCommittee)
		require.NoError(t, err)

		_, err = env.svc.InviteUser(ctx, contest.ID, 1, "bob", domain.InvitationCommittee)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("a declined invitation can be renewed", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.VotingStrategy = domain.VotingClosed
		})
		ctx := context.Background()

		first, err := env.svc.InviteUser(ctx, contest.ID, 1, "bob", domain.InvitationCommittee)
		require.NoError(t, err)
		require.NoError(t, env.svc.DeclineInvitation(ctx, first.ID, 3))

		_, err = env.svc.InviteUser(ctx, contest.ID, 1, "bob", domain.InvitationCommittee)
		assert.NoError(t, err)
	})

	t.Run("the invited user is notified", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.VotingStrategy = domain.VotingClosed
		})

		invitation, err := env.svc.InviteUser(context.Background(), contest.ID, 1, "bob", domain.InvitationCommittee)
		require.NoError(t, err)

		assert.Equal(t, []uint{invitation.ID}, env.notifier.calls)
	})
}

func TestJoinCommittee(t *testing.T) {
	t.Run("requires an invitation", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.VotingStrategy = domain.VotingClosed
		})

		err := env.svc.JoinCommittee(context.Background(), contest.ID, 3)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))
	})

	t.Run("participants cannot join the committee", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.VotingStrategy = domain.VotingClosed
		})
		ctx := context.Background()

		_, err := env.svc.InviteUser(ctx, contest.ID, 1, "alice", domain.InvitationCommittee)
		require.NoError(t, err)
		require.NoError(t, env.svc.Join(ctx, contest.ID, 2))

		err = env.svc.JoinCommittee(ctx, contest.ID, 2)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})
}

func TestDeclineInvitation(t *testing.T) {
	t.Run("only the invited user may respond", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.VotingStrategy = domain.VotingClosed
		})
		ctx := context.Background()

		invitation, err := env.svc.InviteUser(ctx, contest.ID, 1, "bob", domain.InvitationCommittee)
		require.NoError(t, err)

		err = env.svc.DeclineInvitation(ctx, invitation.ID, 4)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))
	})

	t.Run("an answered invitation cannot be answered again", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, func(c *domain.Contest) {
			c.VotingStrategy = domain.VotingClosed
		})
		ctx := context.Background()

		invitation, err := env.svc.InviteUser(ctx, contest.ID, 1, "bob", domain.InvitationCommittee)
		require.NoError(t, err)

		require.NoError(t, env.svc.DeclineInvitation(ctx, invitation.ID, 3))

		err = env.svc.DeclineInvitation(ctx, invitation.ID, 3)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindStateViolation))

		err = env.svc.JoinCommittee(ctx, contest.ID, 3)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))
	})
}

func TestAddRewards(t *testing.T) {
	t.Run("rejects a place beyond the top places cap", func(t *testing.T) {
		env := newTestEnv(t)
		topN := 2
		contest := env.createContest(t, func(c *domain.Contest) {
			c.TopNPlaces = &topN
		})

		_, err := env.svc.AddRewards(context.Background(), contest.ID, 1, []domain.Reward{
			{Name: "Bronze", Place: 3},
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindValidationFailed))
	})

	t.Run("only the organizer can add rewards", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)

		_, err := env.svc.AddRewards(context.Background(), contest.ID, 2, []domain.Reward{
			{Name: "Gold", Place: 1},
		})

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))
	})
}

func TestFinalize(t *testing.T) {
	t.Run("computes winners and freezes the contest", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		ctx := context.Background()

		pictureA := env.addParticipantWithPicture(t, contest.ID, 2)
		pictureB := env.addParticipantWithPicture(t, contest.ID, 3)

		_, err := env.svc.Vote(ctx, pictureA.ID, 3)
		require.NoError(t, err)
		_, err = env.svc.Vote(ctx, pictureA.ID, 4)
		require.NoError(t, err)
		_, err = env.svc.Vote(ctx, pictureB.ID, 2)
		require.NoError(t, err)

		winners, err := env.svc.Finalize(ctx, contest.ID, 1)
		require.NoError(t, err)

		require.Len(t, winners, 2)
		assert.Equal(t, pictureA.ID, winners[0].PictureID)
		assert.Equal(t, 1, winners[0].Place)
		assert.Equal(t, 2, winners[0].VoteCount)
		assert.Equal(t, pictureB.ID, winners[1].PictureID)
		assert.Equal(t, 2, winners[1].Place)

		fresh, err := env.svc.GetContest(ctx, contest.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ContestFinalized, fresh.Status)
		assert.False(t, fresh.IsOpenForSubmissions)
		require.NotNil(t, fresh.EndDate)
		assert.Equal(t, env.now, *fresh.EndDate)
	})

	t.Run("binds reward templates to the winners", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		ctx := context.Background()

		_, err := env.svc.AddRewards(ctx, contest.ID, 1, []domain.Reward{
			{Name: "Gold", Place: 1},
		})
		require.NoError(t, err)

		picture := env.addParticipantWithPicture(t, contest.ID, 2)
		_, err = env.svc.Vote(ctx, picture.ID, 3)
		require.NoError(t, err)

		_, err = env.svc.Finalize(ctx, contest.ID, 1)
		require.NoError(t, err)

		fresh, err := env.svc.GetContest(ctx, contest.ID)
		require.NoError(t, err)
		require.Len(t, fresh.Rewards, 1)
		require.NotNil(t, fresh.Rewards[0].WinnerID)
		assert.Equal(t, uint(2), *fresh.Rewards[0].WinnerID)
		require.NotNil(t, fresh.Rewards[0].PictureID)
		assert.Equal(t, picture.ID, *fresh.Rewards[0].PictureID)
	})

	t.Run("a contest without votes finalizes with no winners", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		env.addParticipantWithPicture(t, contest.ID, 2)

		winners, err := env.svc.Finalize(context.Background(), contest.ID, 1)

		require.NoError(t, err)
		assert.Empty(t, winners)
	})

	t.Run("only the organizer can finalize", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)

		_, err := env.svc.Finalize(context.Background(), contest.ID, 2)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))
	})

	t.Run("terminal states reject further transitions", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		ctx := context.Background()

		_, err := env.svc.Finalize(ctx, contest.ID, 1)
		require.NoError(t, err)

		_, err = env.svc.Finalize(ctx, contest.ID, 1)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindStateViolation))

		err = env.svc.Dismiss(ctx, contest.ID, 1)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindStateViolation))
	})

	t.Run("no submissions land after finalization", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		ctx := context.Background()
		require.NoError(t, env.svc.Join(ctx, contest.ID, 2))

		_, err := env.svc.Finalize(ctx, contest.ID, 1)
		require.NoError(t, err)

		_, err = env.svc.Upload(ctx, contest.ID, 2, []domain.PictureUpload{
			{Filename: "late.jpg", ContentType: "image/jpeg", Data: []byte("x")},
		})
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindStateViolation))

		err = env.svc.Join(ctx, contest.ID, 3)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindStateViolation))
	})
}

func TestDismiss(t *testing.T) {
	t.Run("freezes the contest without winners", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		picture := env.addParticipantWithPicture(t, contest.ID, 2)
		ctx := context.Background()

		_, err := env.svc.Vote(ctx, picture.ID, 3)
		require.NoError(t, err)

		require.NoError(t, env.svc.Dismiss(ctx, contest.ID, 1))

		fresh, err := env.svc.GetContest(ctx, contest.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ContestDismissed, fresh.Status)
		assert.False(t, fresh.IsOpenForSubmissions)
		require.NotNil(t, fresh.EndDate)

		winners, err := env.svc.GetContestWinners(ctx, contest.ID)
		require.NoError(t, err)
		assert.Empty(t, winners)
	})
}

func TestDeletePicture(t *testing.T) {
	t.Run("only administrators may delete", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		picture := env.addParticipantWithPicture(t, contest.ID, 2)

		err := env.svc.DeletePicture(context.Background(), picture.ID, 2)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))
	})

	t.Run("deletion releases the blob store reference", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)
		picture := env.addParticipantWithPicture(t, contest.ID, 2)
		ctx := context.Background()

		require.NoError(t, env.svc.DeletePicture(ctx, picture.ID, 9))

		assert.Contains(t, env.storage.deleted, picture.DriveFileID)

		_, err := env.repo.GetPictureByID(ctx, picture.ID)
		assert.ErrorIs(t, err, repository.ErrPictureNotFound)
	})
}

func TestUpdateContest(t *testing.T) {
	t.Run("blank fields keep their value", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)

		updated, err := env.svc.UpdateContest(context.Background(), contest.ID, 1, "", "A fresh description", nil)

		require.NoError(t, err)
		assert.Equal(t, contest.Title, updated.Title)
		assert.Equal(t, "A fresh description", updated.Description)
	})

	t.Run("non-organizers cannot update", func(t *testing.T) {
		env := newTestEnv(t)
		contest := env.createContest(t, nil)

		_, err := env.svc.UpdateContest(context.Background(), contest.ID, 2, "New", "", nil)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))
	})
}
