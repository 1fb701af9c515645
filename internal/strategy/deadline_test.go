package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photocontest-api/internal/domain"
)

func TestSubmissionDeadline(t *testing.T) {
	deadline := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	user := domain.User{ID: 7}

	newContest := func() domain.Contest {
		c := openContest()
		c.SubmissionDeadline = deadline
		return c
	}

	t.Run("accepts strictly before the deadline", func(t *testing.T) {
		contest := newContest()

		err := (&SubmissionDeadline{}).CheckDeadline(&contest, user, deadline.Add(-time.Second), ActionUpload)

		assert.NoError(t, err)
	})

	t.Run("rejects exactly at the deadline", func(t *testing.T) {
		contest := newContest()

		err := (&SubmissionDeadline{}).CheckDeadline(&contest, user, deadline, ActionUpload)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("rejects after the deadline", func(t *testing.T) {
		contest := newContest()

		err := (&SubmissionDeadline{}).CheckDeadline(&contest, user, deadline.Add(time.Hour), ActionJoin)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("rejects when closed for submissions", func(t *testing.T) {
		contest := newContest()
		contest.IsOpenForSubmissions = false

		err := (&SubmissionDeadline{}).CheckDeadline(&contest, user, deadline.Add(-time.Hour), ActionUpload)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindStateViolation))
	})

	t.Run("join is rejected at the participants limit", func(t *testing.T) {
		limit := 2
		contest := newContest()
		contest.ParticipantsLimit = &limit
		contest.Participants = []domain.User{{ID: 1}, {ID: 2}}

		err := (&SubmissionDeadline{}).CheckDeadline(&contest, user, deadline.Add(-time.Hour), ActionJoin)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindRuleRejected))
	})

	t.Run("upload is not limited by the participant cap", func(t *testing.T) {
		limit := 2
		contest := newContest()
		contest.ParticipantsLimit = &limit
		contest.Participants = []domain.User{{ID: 1}, {ID: 2}}

		err := (&SubmissionDeadline{}).CheckDeadline(&contest, user, deadline.Add(-time.Hour), ActionUpload)

		assert.NoError(t, err)
	})
}
