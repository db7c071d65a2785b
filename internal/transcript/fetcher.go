package transcript

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	ytwords "github.com/mjlefevre/yt-words-go/transcript"

	"github.com/felipe-jimenez-ai/mentoria/models"
)

// CaptionSource retrieves the joined caption text for a video ID. The
// production implementation is the yt-words-go client; tests substitute
// a stub so no fetch test touches YouTube.
type CaptionSource interface {
	GetTranscriptString(videoID string) (string, error)
}

// Fetcher turns a user-submitted video reference into a Transcript.
// Stateless apart from the underlying HTTP client.
type Fetcher struct {
	source CaptionSource
}

// NewFetcher returns a Fetcher backed by the YouTube caption endpoint.
func NewFetcher() *Fetcher {
	return &Fetcher{source: ytwords.NewClient()}
}

// NewFetcherWithSource returns a Fetcher using a custom caption source.
func NewFetcherWithSource(source CaptionSource) *Fetcher {
	return &Fetcher{source: source}
}

// Fetch validates the reference, then makes one caption request. The
// context is accepted for call-site symmetry; the underlying client
// manages its own request lifetime.
func (f *Fetcher) Fetch(ctx context.Context, ref string) (models.Transcript, error) {
	videoID, err := ParseVideoID(ref)
	if err != nil {
		return models.Transcript{}, err
	}

	if err := ctx.Err(); err != nil {
		return models.Transcript{}, fmt.Errorf("%w: %v", models.ErrNetwork, err)
	}

	text, err := f.source.GetTranscriptString(videoID)
	if err != nil {
		if isNetworkError(err) {
			return models.Transcript{}, fmt.Errorf("%w: fetching captions for %s: %v", models.ErrNetwork, videoID, err)
		}
		return models.Transcript{}, fmt.Errorf("%w: video %s: %v", models.ErrTranscriptUnavailable, videoID, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return models.Transcript{}, fmt.Errorf("%w: video %s has no caption text", models.ErrTranscriptUnavailable, videoID)
	}

	return models.Transcript{
		VideoID:   videoID,
		Text:      text,
		FetchedAt: time.Now(),
	}, nil
}

// isNetworkError reports whether err is a transport-level failure rather
// than a caption-availability failure.
func isNetworkError(err error) bool {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
