package domain

import "time"

type Picture struct {
	ID        uint   `json:"id"`
	ContestID uint   `json:"contest_id"`
	UserID    uint   `json:"user_id"`
	URL       string `json:"url"`
	// DriveFileID is the reference handed back by the external blob store.
	DriveFileID string    `json:"-"`
	Votes       []Vote    `json:"votes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (p *Picture) HasVoteFrom(userID uint) bool {
	for _, v := range p.Votes {
		if v.UserID == userID {
			return true
		}
	}
	return false
}

type Vote struct {
	ID        uint      `json:"id"`
	PictureID uint      `json:"picture_id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PictureUpload is the raw file content handed in by the upload endpoint,
// before it is pushed to the blob store.
type PictureUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}
