package strategy

import (
	"sort"

	"photocontest-api/internal/domain"
)

// TopNReward ranks pictures by vote count, descending, and assigns
// competition-style places: pictures with equal vote counts share the same
// place, and a tie consumes the places it spans (5,5,2 votes gives places
// 1,1,3). Within a tied count the ordering is still deterministic (earliest
// upload first, then lowest picture ID) so persisted standings are stable.
// Pictures without votes are never ranked; a contest with no votes yields
// no placements.
type TopNReward struct{}

func (s *TopNReward) ApplyReward(contest *domain.Contest) []domain.Placement {
	ranked := make([]domain.Picture, 0, len(contest.Pictures))
	for _, p := range contest.Pictures {
		if len(p.Votes) > 0 {
			ranked = append(ranked, p)
		}
	}
	if len(ranked) == 0 {
		return nil
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		vi, vj := len(ranked[i].Votes), len(ranked[j].Votes)
		if vi != vj {
			return vi > vj
		}
		if !ranked[i].CreatedAt.Equal(ranked[j].CreatedAt) {
			return ranked[i].CreatedAt.Before(ranked[j].CreatedAt)
		}
		return ranked[i].ID < ranked[j].ID
	})

	placements := make([]domain.Placement, 0, len(ranked))
	place := 1
	for i, p := range ranked {
		if i > 0 && len(p.Votes) != len(ranked[i-1].Votes) {
			place = i + 1
		}
		if contest.TopNPlaces != nil && place > *contest.TopNPlaces {
			break
		}
		placements = append(placements, domain.Placement{Picture: p, Place: place})
	}

	return placements
}
