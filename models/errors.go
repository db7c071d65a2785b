package models

import "errors"

// Failure taxonomy for the whole pipeline. Every network-facing component
// wraps its underlying error with one of these sentinels so handlers can
// translate failures with errors.Is instead of string matching.
var (
	// ErrInvalidReference means the submitted string does not contain a
	// parseable YouTube video ID. Raised before any network call.
	ErrInvalidReference = errors.New("invalid video reference")

	// ErrTranscriptUnavailable means the video exists but captions are
	// disabled, or the video is private or does not exist.
	ErrTranscriptUnavailable = errors.New("transcript unavailable")

	// ErrNetwork covers transient transport failures against YouTube or
	// the AI provider. Not retried automatically.
	ErrNetwork = errors.New("network failure")

	// ErrEmptyTranscript means material generation was requested for an
	// empty transcript text.
	ErrEmptyTranscript = errors.New("empty transcript")

	// ErrInvalidKind means the requested material kind is not one of
	// summary, key_points, questions.
	ErrInvalidKind = errors.New("invalid material kind")

	// ErrAuthentication means the AI provider credential is missing or
	// rejected. Fatal for the session until the configuration is fixed.
	ErrAuthentication = errors.New("provider authentication failed")

	// ErrRateLimited means the AI provider throttled the request.
	ErrRateLimited = errors.New("provider rate limit exceeded")

	// ErrEmptyResponse means the AI provider returned no usable content.
	ErrEmptyResponse = errors.New("provider returned empty response")

	// ErrNotSet is returned when reading a session field that has not
	// been written yet.
	ErrNotSet = errors.New("not set")
)

// UserMessage converts a pipeline error into the plain-language message
// shown in the UI. Unrecognized errors get a generic message so internal
// details never leak to the browser.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidReference):
		return "That doesn't look like a YouTube video URL or ID. Paste a full video link or an 11-character video ID."
	case errors.Is(err, ErrTranscriptUnavailable):
		return "No transcript is available for this video. Captions may be disabled, or the video may be private or removed."
	case errors.Is(err, ErrNetwork):
		return "A network error occurred. Check your connection and try again."
	case errors.Is(err, ErrEmptyTranscript):
		return "The transcript is empty, so there is nothing to generate from."
	case errors.Is(err, ErrInvalidKind):
		return "Unknown material type. Choose summary, key points, or questions."
	case errors.Is(err, ErrAuthentication):
		return "The AI provider rejected the configured API key. Set GROQ_API_KEY and restart the server."
	case errors.Is(err, ErrRateLimited):
		return "The AI provider is throttling requests right now. Wait a moment and try again."
	case errors.Is(err, ErrEmptyResponse):
		return "The AI provider returned an empty response. Try again."
	case errors.Is(err, ErrNotSet):
		return "Fetch a transcript first."
	default:
		return "Something went wrong. Try again."
	}
}
