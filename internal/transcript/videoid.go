package transcript

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/felipe-jimenez-ai/mentoria/models"
)

// bareIDPattern matches a standalone 11-character YouTube video ID.
var bareIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// urlPatterns cover the accepted YouTube URL shapes. The capture group is
// always the video ID.
var urlPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?(?:[^#]*&)?v=([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/shorts/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/live/([A-Za-z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([A-Za-z0-9_-]{11})`),
}

// ParseVideoID extracts the 11-character video ID from a YouTube URL or a
// bare ID. It never touches the network; an unparseable reference fails
// with models.ErrInvalidReference.
func ParseVideoID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", fmt.Errorf("%w: empty reference", models.ErrInvalidReference)
	}

	if bareIDPattern.MatchString(ref) {
		return ref, nil
	}

	for _, p := range urlPatterns {
		if m := p.FindStringSubmatch(ref); m != nil {
			return m[1], nil
		}
	}

	return "", fmt.Errorf("%w: %q", models.ErrInvalidReference, ref)
}
