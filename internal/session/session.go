// Package session holds per-browser-session state: at most one transcript
// and one generated material at a time, plus the UI state machine position.
// Nothing here survives a process restart.
package session

import (
	"sync"
	"time"

	"github.com/felipe-jimenez-ai/mentoria/models"
)

// State is the UI state machine position for one session. The in-flight
// states exist only for the duration of a single synchronous request but
// are stored so the session endpoint can render them.
type State string

const (
	StateIdle               State = "idle"
	StateTranscriptLoading  State = "transcript_loading"
	StateTranscriptReady    State = "transcript_ready"
	StateMaterialGenerating State = "material_generating"
	StateMaterialReady      State = "material_ready"
	StateError              State = "error"
)

// Session is one user's isolated interaction context. Safe for concurrent
// use; a second browser tab sharing the cookie must not corrupt state.
type Session struct {
	mu         sync.Mutex
	id         string
	state      State
	transcript *models.Transcript
	material   *models.GeneratedMaterial
	errMessage string
	touchedAt  time.Time
}

// NewSession creates a detached session with the given token. The HTTP
// layer goes through Manager.Attach instead.
func NewSession(id string) *Session {
	return newSession(id)
}

func newSession(id string) *Session {
	return &Session{
		id:        id,
		state:     StateIdle,
		touchedAt: time.Now(),
	}
}

// ID returns the session token.
func (s *Session) ID() string {
	return s.id
}

// State returns the current state machine position.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// StartFetch begins a new video submission. The previous transcript and
// material are discarded entirely, whatever state the session was in.
func (s *Session) StartFetch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
	s.material = nil
	s.errMessage = ""
	s.state = StateTranscriptLoading
	s.touchedAt = time.Now()
}

// CompleteFetch stores the fetched transcript and moves to TranscriptReady.
func (s *Session) CompleteFetch(t models.Transcript) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = &t
	s.errMessage = ""
	s.state = StateTranscriptReady
	s.touchedAt = time.Now()
}

// StartGenerate begins material generation. It requires a fetched
// transcript; otherwise it fails with ErrNotSet and the state is untouched.
func (s *Session) StartGenerate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.transcript == nil {
		return models.ErrNotSet
	}
	s.errMessage = ""
	s.state = StateMaterialGenerating
	s.touchedAt = time.Now()
	return nil
}

// CompleteGenerate stores the generated material, overwriting any previous
// one, and moves to MaterialReady.
func (s *Session) CompleteGenerate(m models.GeneratedMaterial) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.material = &m
	s.errMessage = ""
	s.state = StateMaterialReady
	s.touchedAt = time.Now()
}

// Fail records a user-visible failure message and moves to the Error
// state. A transcript fetched earlier is kept so generation can be retried.
func (s *Session) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errMessage = message
	s.state = StateError
	s.touchedAt = time.Now()
}

// Transcript returns the held transcript, or ErrNotSet before the first
// successful fetch.
func (s *Session) Transcript() (models.Transcript, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.transcript == nil {
		return models.Transcript{}, models.ErrNotSet
	}
	return *s.transcript, nil
}

// Material returns the held generated material, or ErrNotSet before the
// first successful generation.
func (s *Session) Material() (models.GeneratedMaterial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.material == nil {
		return models.GeneratedMaterial{}, models.ErrNotSet
	}
	return *s.material, nil
}

// Snapshot is the JSON rendering of a session for the UI.
type Snapshot struct {
	State        State               `json:"state"`
	VideoID      string              `json:"video_id,omitempty"`
	Transcript   string              `json:"transcript,omitempty"`
	MaterialKind models.MaterialKind `json:"material_kind,omitempty"`
	Material     string              `json:"material,omitempty"`
	Error        string              `json:"error,omitempty"`
}

// Snapshot returns a consistent copy of the session for rendering.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{State: s.state, Error: s.errMessage}
	if s.transcript != nil {
		snap.VideoID = s.transcript.VideoID
		snap.Transcript = s.transcript.Text
	}
	if s.material != nil {
		snap.MaterialKind = s.material.Kind
		snap.Material = s.material.Content
	}
	return snap
}

func (s *Session) lastTouched() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.touchedAt
}
