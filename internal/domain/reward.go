package domain

import "time"

// Reward is a prize template configured by the organizer for a given place.
// WinnerID and PictureID are bound during finalization.
type Reward struct {
	ID          uint   `json:"id"`
	ContestID   uint   `json:"contest_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Place       int    `json:"place"`
	ImageURL    string `json:"image_url"`
	WinnerID    *uint  `json:"winner_id,omitempty"`
	PictureID   *uint  `json:"picture_id,omitempty"`
}

// Placement is a ranked picture as computed by a reward strategy.
type Placement struct {
	Picture Picture `json:"picture"`
	Place   int     `json:"place"`
}

// ContestWinner records a final standing, one row per rewarded picture.
type ContestWinner struct {
	ID        uint      `json:"id"`
	ContestID uint      `json:"contest_id"`
	PictureID uint      `json:"picture_id"`
	UserID    uint      `json:"user_id"`
	Place     int       `json:"place"`
	VoteCount int       `json:"vote_count"`
	CreatedAt time.Time `json:"created_at"`
}
