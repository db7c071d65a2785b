package models

import "time"

// Transcript is the full chronological caption text of one video,
// segments already joined with whitespace. Read-only after creation.
type Transcript struct {
	VideoID   string    `json:"video_id"`
	Text      string    `json:"text"`
	FetchedAt time.Time `json:"fetched_at"`
}
