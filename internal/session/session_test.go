package session

import (
	"errors"
	"testing"
	"time"

	"github.com/felipe-jimenez-ai/mentoria/models"
)

func TestSessionStartsEmpty(t *testing.T) {
	s := NewSession("test")

	if s.State() != StateIdle {
		t.Errorf("State() = %v, want idle", s.State())
	}
	if _, err := s.Transcript(); !errors.Is(err, models.ErrNotSet) {
		t.Errorf("Transcript() error = %v, want ErrNotSet", err)
	}
	if _, err := s.Material(); !errors.Is(err, models.ErrNotSet) {
		t.Errorf("Material() error = %v, want ErrNotSet", err)
	}
}

func TestSessionFetchFlow(t *testing.T) {
	s := NewSession("test")

	s.StartFetch()
	if s.State() != StateTranscriptLoading {
		t.Fatalf("State() = %v, want transcript_loading", s.State())
	}

	s.CompleteFetch(models.Transcript{VideoID: "dQw4w9WgXcQ", Text: "hello"})
	if s.State() != StateTranscriptReady {
		t.Fatalf("State() = %v, want transcript_ready", s.State())
	}

	got, err := s.Transcript()
	if err != nil {
		t.Fatalf("Transcript() error = %v", err)
	}
	if got.Text != "hello" {
		t.Errorf("Transcript().Text = %q, want hello", got.Text)
	}
}

func TestSessionGenerateRequiresTranscript(t *testing.T) {
	s := NewSession("test")
	if err := s.StartGenerate(); !errors.Is(err, models.ErrNotSet) {
		t.Errorf("StartGenerate() error = %v, want ErrNotSet", err)
	}
	if s.State() != StateIdle {
		t.Errorf("State() = %v, want idle after rejected generate", s.State())
	}
}

func TestSessionNewSubmissionDiscardsEverything(t *testing.T) {
	s := NewSession("test")
	s.CompleteFetch(models.Transcript{VideoID: "dQw4w9WgXcQ", Text: "old transcript"})
	s.CompleteGenerate(models.GeneratedMaterial{Kind: models.KindSummary, Content: "old material"})

	s.StartFetch()

	if _, err := s.Transcript(); !errors.Is(err, models.ErrNotSet) {
		t.Errorf("Transcript() after new submission error = %v, want ErrNotSet", err)
	}
	if _, err := s.Material(); !errors.Is(err, models.ErrNotSet) {
		t.Errorf("Material() after new submission error = %v, want ErrNotSet", err)
	}
}

func TestSessionMaterialOverwrite(t *testing.T) {
	s := NewSession("test")
	s.CompleteFetch(models.Transcript{VideoID: "dQw4w9WgXcQ", Text: "transcript"})
	s.CompleteGenerate(models.GeneratedMaterial{Kind: models.KindSummary, Content: "first"})
	s.CompleteGenerate(models.GeneratedMaterial{Kind: models.KindKeyPoints, Content: "second"})

	got, err := s.Material()
	if err != nil {
		t.Fatalf("Material() error = %v", err)
	}
	if got.Content != "second" || got.Kind != models.KindKeyPoints {
		t.Errorf("Material() = %+v, want the overwriting value", got)
	}
}

func TestSessionGenerationFailureKeepsTranscript(t *testing.T) {
	s := NewSession("test")
	s.CompleteFetch(models.Transcript{VideoID: "dQw4w9WgXcQ", Text: "transcript"})

	if err := s.StartGenerate(); err != nil {
		t.Fatalf("StartGenerate() error = %v", err)
	}
	s.Fail("provider is down")

	if s.State() != StateError {
		t.Errorf("State() = %v, want error", s.State())
	}
	if _, err := s.Transcript(); err != nil {
		t.Errorf("Transcript() after failure error = %v, want retained transcript", err)
	}
	// Retry path: generation must be possible again.
	if err := s.StartGenerate(); err != nil {
		t.Errorf("StartGenerate() retry error = %v", err)
	}
}

func TestSessionSnapshot(t *testing.T) {
	s := NewSession("test")
	s.CompleteFetch(models.Transcript{VideoID: "dQw4w9WgXcQ", Text: "transcript text"})
	s.CompleteGenerate(models.GeneratedMaterial{Kind: models.KindQuestions, Content: "Q1: why?"})

	snap := s.Snapshot()
	if snap.State != StateMaterialReady {
		t.Errorf("Snapshot().State = %v, want material_ready", snap.State)
	}
	if snap.VideoID != "dQw4w9WgXcQ" || snap.Transcript != "transcript text" {
		t.Errorf("Snapshot() transcript fields = %+v", snap)
	}
	if snap.MaterialKind != models.KindQuestions || snap.Material != "Q1: why?" {
		t.Errorf("Snapshot() material fields = %+v", snap)
	}
}

func TestManagerPrunesExpiredSessions(t *testing.T) {
	m := NewManager(time.Minute)

	stale := newSession("stale")
	stale.touchedAt = time.Now().Add(-2 * time.Minute)
	fresh := newSession("fresh")

	m.sessions[stale.id] = stale
	m.sessions[fresh.id] = fresh

	m.prune()

	if _, err := m.Lookup("stale"); err == nil {
		t.Errorf("stale session survived prune")
	}
	if _, err := m.Lookup("fresh"); err != nil {
		t.Errorf("fresh session was pruned: %v", err)
	}
}
