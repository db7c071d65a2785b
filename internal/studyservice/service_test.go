package studyservice

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipe-jimenez-ai/mentoria/internal/session"
	"github.com/felipe-jimenez-ai/mentoria/internal/transcript"
	"github.com/felipe-jimenez-ai/mentoria/models"
)

type stubCaptions struct {
	text string
	err  error
}

func (s stubCaptions) GetTranscriptString(videoID string) (string, error) {
	return s.text, s.err
}

type stubGenerator struct {
	calls   int
	prompts []string
	reply   func(promptText string) (string, error)
}

func (g *stubGenerator) Generate(ctx context.Context, promptText string) (string, error) {
	g.calls++
	g.prompts = append(g.prompts, promptText)
	if g.reply != nil {
		return g.reply(promptText)
	}
	return "generated: " + promptText[:min(40, len(promptText))], nil
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func newTestService(captions stubCaptions, gen *stubGenerator, chunkChars int) *Service {
	fetcher := transcript.NewFetcherWithSource(captions)
	return New(fetcher, gen, testLogger(), chunkChars)
}

func TestFetchThenGenerate(t *testing.T) {
	gen := &stubGenerator{}
	svc := newTestService(stubCaptions{text: "a short transcript about physics"}, gen, 4000)
	sess := session.NewSession("test")

	tr, err := svc.FetchTranscript(context.Background(), sess, "dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, session.StateTranscriptReady, sess.State())
	assert.NotEmpty(t, tr.Text)

	m, err := svc.GenerateMaterial(context.Background(), sess, models.KindKeyPoints)
	require.NoError(t, err)
	assert.Equal(t, session.StateMaterialReady, sess.State())
	assert.Equal(t, models.KindKeyPoints, m.Kind)
	assert.NotEmpty(t, m.Content)
	assert.Equal(t, 1, gen.calls, "short transcript should need exactly one provider call")

	stored, err := sess.Material()
	require.NoError(t, err)
	assert.Equal(t, m.Content, stored.Content)
}

func TestFetchFailureSetsErrorState(t *testing.T) {
	gen := &stubGenerator{}
	svc := newTestService(stubCaptions{err: errors.New("captions disabled")}, gen, 4000)
	sess := session.NewSession("test")

	_, err := svc.FetchTranscript(context.Background(), sess, "dQw4w9WgXcQ")
	assert.ErrorIs(t, err, models.ErrTranscriptUnavailable)
	assert.Equal(t, session.StateError, sess.State())

	_, err = sess.Transcript()
	assert.ErrorIs(t, err, models.ErrNotSet)
}

func TestInvalidReferenceLeavesTranscriptNotSet(t *testing.T) {
	gen := &stubGenerator{}
	svc := newTestService(stubCaptions{text: "never fetched"}, gen, 4000)
	sess := session.NewSession("test")

	_, err := svc.FetchTranscript(context.Background(), sess, "invalid!!!")
	assert.ErrorIs(t, err, models.ErrInvalidReference)
	assert.Equal(t, session.StateError, sess.State())

	_, err = sess.Transcript()
	assert.ErrorIs(t, err, models.ErrNotSet)
}

func TestGenerateWithoutTranscript(t *testing.T) {
	gen := &stubGenerator{}
	svc := newTestService(stubCaptions{}, gen, 4000)
	sess := session.NewSession("test")

	_, err := svc.GenerateMaterial(context.Background(), sess, models.KindSummary)
	assert.ErrorIs(t, err, models.ErrNotSet)
	assert.Zero(t, gen.calls)
}

func TestGenerateInvalidKind(t *testing.T) {
	gen := &stubGenerator{}
	svc := newTestService(stubCaptions{text: "transcript"}, gen, 4000)
	sess := session.NewSession("test")

	_, err := svc.FetchTranscript(context.Background(), sess, "dQw4w9WgXcQ")
	require.NoError(t, err)

	_, err = svc.GenerateMaterial(context.Background(), sess, models.MaterialKind("flashcards"))
	assert.ErrorIs(t, err, models.ErrInvalidKind)
	assert.Zero(t, gen.calls)
}

func TestGenerateChunksLongTranscript(t *testing.T) {
	long := strings.Repeat("An important fact worth remembering. ", 20) // ~740 chars
	gen := &stubGenerator{}
	svc := newTestService(stubCaptions{text: long}, gen, 300)
	sess := session.NewSession("test")

	_, err := svc.FetchTranscript(context.Background(), sess, "dQw4w9WgXcQ")
	require.NoError(t, err)

	m, err := svc.GenerateMaterial(context.Background(), sess, models.KindSummary)
	require.NoError(t, err)
	assert.NotEmpty(t, m.Content)

	// At least two chunk calls plus one combining call.
	assert.GreaterOrEqual(t, gen.calls, 3)
	last := gen.prompts[len(gen.prompts)-1]
	assert.Contains(t, last, "Combine the following summaries")
}

func TestGenerateFailureKeepsMaterialNotSet(t *testing.T) {
	gen := &stubGenerator{reply: func(string) (string, error) {
		return "", models.ErrAuthentication
	}}
	svc := newTestService(stubCaptions{text: "transcript"}, gen, 4000)
	sess := session.NewSession("test")

	_, err := svc.FetchTranscript(context.Background(), sess, "dQw4w9WgXcQ")
	require.NoError(t, err)

	_, err = svc.GenerateMaterial(context.Background(), sess, models.KindSummary)
	assert.ErrorIs(t, err, models.ErrAuthentication)
	assert.Equal(t, session.StateError, sess.State())

	_, err = sess.Material()
	assert.ErrorIs(t, err, models.ErrNotSet)
}
