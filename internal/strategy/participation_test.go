package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photocontest-api/internal/domain"
)

func openContest() domain.Contest {
	return domain.Contest{
		ID:                    1,
		Status:                domain.ContestActive,
		IsOpenForSubmissions:  true,
		OrganizerID:           100,
		ParticipationStrategy: domain.ParticipationOpen,
	}
}

func TestOpenParticipation(t *testing.T) {
	user := domain.User{ID: 7}

	t.Run("admits a new user", func(t *testing.T) {
		contest := openContest()

		decision, err := (&OpenParticipation{}).Evaluate(user, &contest)

		require.NoError(t, err)
		assert.Nil(t, decision.AcceptInvitation)
	})

	t.Run("rejects when closed for submissions", func(t *testing.T) {
		contest := openContest()
		contest.IsOpenForSubmissions = false

		_, err := (&OpenParticipation{}).Evaluate(user, &contest)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindStateViolation))
	})

	t.Run("rejects an existing participant", func(t *testing.T) {
		contest := openContest()
		contest.Participants = []domain.User{{ID: user.ID}}

		_, err := (&OpenParticipation{}).Evaluate(user, &contest)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("rejects a committee member", func(t *testing.T) {
		contest := openContest()
		contest.Committee = []domain.User{{ID: user.ID}}

		_, err := (&OpenParticipation{}).Evaluate(user, &contest)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})
}

func TestClosedParticipation(t *testing.T) {
	user := domain.User{ID: 7}

	t.Run("rejects a user who was never invited", func(t *testing.T) {
		contest := openContest()
		contest.ParticipationStrategy = domain.ParticipationClosed

		_, err := (&ClosedParticipation{}).Evaluate(user, &contest)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindAuthorizationDenied))
	})

	t.Run("rejects when the invitation was already answered", func(t *testing.T) {
		contest := openContest()
		contest.ParticipationStrategy = domain.ParticipationClosed
		contest.InvitedUsers = []domain.User{{ID: user.ID}}
		contest.Invitations = []domain.Invitation{{
			ID:        3,
			ContestID: contest.ID,
			InvitedID: user.ID,
			Type:      domain.InvitationClosedContest,
			Status:    domain.InvitationDeclined,
		}}

		_, err := (&ClosedParticipation{}).Evaluate(user, &contest)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("admits an invited user and names the invitation to consume", func(t *testing.T) {
		contest := openContest()
		contest.ParticipationStrategy = domain.ParticipationClosed
		contest.InvitedUsers = []domain.User{{ID: user.ID}}
		contest.Invitations = []domain.Invitation{{
			ID:        3,
			ContestID: contest.ID,
			InvitedID: user.ID,
			Type:      domain.InvitationClosedContest,
			Status:    domain.InvitationNeutral,
		}}

		decision, err := (&ClosedParticipation{}).Evaluate(user, &contest)

		require.NoError(t, err)
		require.NotNil(t, decision.AcceptInvitation)
		assert.Equal(t, uint(3), decision.AcceptInvitation.ID)
	})

	t.Run("a committee invitation does not admit a participant", func(t *testing.T) {
		contest := openContest()
		contest.ParticipationStrategy = domain.ParticipationClosed
		contest.InvitedUsers = []domain.User{{ID: user.ID}}
		contest.Invitations = []domain.Invitation{{
			ID:        4,
			ContestID: contest.ID,
			InvitedID: user.ID,
			Type:      domain.InvitationCommittee,
			Status:    domain.InvitationNeutral,
		}}

		_, err := (&ClosedParticipation{}).Evaluate(user, &contest)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})
}

func TestForParticipation_UnknownTag(t *testing.T) {
	_, err := ForParticipation("Invite-Only")

	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindValidationFailed))
}
