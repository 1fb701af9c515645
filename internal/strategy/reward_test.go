package strategy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"photocontest-api/internal/domain"
)

func pictureWithVotes(id uint, votes int, createdAt time.Time) domain.Picture {
	p := domain.Picture{ID: id, UserID: id + 100, CreatedAt: createdAt}
	for i := 0; i < votes; i++ {
		p.Votes = append(p.Votes, domain.Vote{PictureID: id, UserID: uint(i + 1)})
	}
	return p
}

func TestTopNReward(t *testing.T) {
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("no votes means no placements", func(t *testing.T) {
		contest := openContest()
		contest.Pictures = []domain.Picture{
			pictureWithVotes(1, 0, base),
			pictureWithVotes(2, 0, base),
		}

		placements := (&TopNReward{}).ApplyReward(&contest)

		assert.Empty(t, placements)
	})

	t.Run("ranks by vote count descending", func(t *testing.T) {
		contest := openContest()
		contest.Pictures = []domain.Picture{
			pictureWithVotes(1, 2, base),
			pictureWithVotes(2, 5, base),
			pictureWithVotes(3, 3, base),
		}

		placements := (&TopNReward{}).ApplyReward(&contest)

		require.Len(t, placements, 3)
		assert.Equal(t, uint(2), placements[0].Picture.ID)
		assert.Equal(t, 1, placements[0].Place)
		assert.Equal(t, uint(3), placements[1].Picture.ID)
		assert.Equal(t, 2, placements[1].Place)
		assert.Equal(t, uint(1), placements[2].Picture.ID)
		assert.Equal(t, 3, placements[2].Place)
	})

	t.Run("a tie shares the place and consumes the places it spans", func(t *testing.T) {
		contest := openContest()
		contest.Pictures = []domain.Picture{
			pictureWithVotes(1, 5, base),
			pictureWithVotes(2, 5, base.Add(time.Hour)),
			pictureWithVotes(3, 2, base),
		}

		placements := (&TopNReward{}).ApplyReward(&contest)

		require.Len(t, placements, 3)
		assert.Equal(t, 1, placements[0].Place)
		assert.Equal(t, 1, placements[1].Place)
		assert.Equal(t, 3, placements[2].Place)
	})

	t.Run("earlier upload wins the tie order", func(t *testing.T) {
		contest := openContest()
		contest.Pictures = []domain.Picture{
			pictureWithVotes(2, 5, base.Add(time.Hour)),
			pictureWithVotes(1, 5, base),
		}

		placements := (&TopNReward{}).ApplyReward(&contest)

		require.Len(t, placements, 2)
		assert.Equal(t, uint(1), placements[0].Picture.ID)
		assert.Equal(t, uint(2), placements[1].Picture.ID)
	})

	t.Run("top places cap cuts off after a spanning tie", func(t *testing.T) {
		topN := 2
		contest := openContest()
		contest.TopNPlaces = &topN
		contest.Pictures = []domain.Picture{
			pictureWithVotes(1, 5, base),
			pictureWithVotes(2, 5, base.Add(time.Hour)),
			pictureWithVotes(3, 2, base),
		}

		placements := (&TopNReward{}).ApplyReward(&contest)

		// Both tied pictures hold place 1; place 3 is beyond the cap.
		require.Len(t, placements, 2)
		assert.Equal(t, 1, placements[0].Place)
		assert.Equal(t, 1, placements[1].Place)
	})

	t.Run("zero-vote pictures are never ranked even under the cap", func(t *testing.T) {
		topN := 3
		contest := openContest()
		contest.TopNPlaces = &topN
		contest.Pictures = []domain.Picture{
			pictureWithVotes(1, 1, base),
			pictureWithVotes(2, 0, base),
		}

		placements := (&TopNReward{}).ApplyReward(&contest)

		require.Len(t, placements, 1)
		assert.Equal(t, uint(1), placements[0].Picture.ID)
	})
}
