package models

import "time"

// MaterialKind selects which study-material template is used for generation.
type MaterialKind string

const (
	KindSummary   MaterialKind = "summary"
	KindKeyPoints MaterialKind = "key_points"
	KindQuestions MaterialKind = "questions"
)

// Kinds lists every supported material kind in display order.
func Kinds() []MaterialKind {
	return []MaterialKind{KindSummary, KindKeyPoints, KindQuestions}
}

// Valid reports whether k is one of the supported kinds.
func (k MaterialKind) Valid() bool {
	switch k {
	case KindSummary, KindKeyPoints, KindQuestions:
		return true
	}
	return false
}

// Filename returns the download file name for material of this kind.
func (k MaterialKind) Filename() string {
	return "youtube_" + string(k) + ".txt"
}

// GeneratedMaterial is the AI provider's text response for one request,
// kept verbatim, together with the kind that produced it.
type GeneratedMaterial struct {
	Kind        MaterialKind `json:"kind"`
	Content     string       `json:"content"`
	GeneratedAt time.Time    `json:"generated_at"`
}
