// Package studyservice orchestrates the fetch → build prompt → generate
// pipeline and drives the session state machine through its transitions.
package studyservice

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/felipe-jimenez-ai/mentoria/internal/prompt"
	"github.com/felipe-jimenez-ai/mentoria/internal/session"
	"github.com/felipe-jimenez-ai/mentoria/models"
)

// TranscriptFetcher resolves a video reference into a transcript.
type TranscriptFetcher interface {
	Fetch(ctx context.Context, ref string) (models.Transcript, error)
}

// MaterialGenerator turns one prompt into one provider response.
type MaterialGenerator interface {
	Generate(ctx context.Context, promptText string) (string, error)
}

// Service wires the fetcher and generator together. Each user action runs
// one synchronous pipeline to completion; there are no background tasks.
type Service struct {
	fetcher    TranscriptFetcher
	generator  MaterialGenerator
	log        *logrus.Logger
	chunkChars int
}

// New creates a Service. chunkChars bounds the transcript length sent in a
// single prompt; longer transcripts are split and the results merged.
func New(fetcher TranscriptFetcher, generator MaterialGenerator, log *logrus.Logger, chunkChars int) *Service {
	return &Service{
		fetcher:    fetcher,
		generator:  generator,
		log:        log,
		chunkChars: chunkChars,
	}
}

// FetchTranscript runs the submit-video flow for one session: discard any
// previous state, fetch, and store the transcript. Failures land the
// session in the Error state with a user-visible message.
func (s *Service) FetchTranscript(ctx context.Context, sess *session.Session, ref string) (models.Transcript, error) {
	sess.StartFetch()

	t, err := s.fetcher.Fetch(ctx, ref)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session": sess.ID(),
			"ref":     ref,
		}).WithError(err).Warn("Transcript fetch failed")
		sess.Fail(models.UserMessage(err))
		return models.Transcript{}, err
	}

	sess.CompleteFetch(t)
	s.log.WithFields(logrus.Fields{
		"session":  sess.ID(),
		"video_id": t.VideoID,
		"chars":    len(t.Text),
	}).Info("Transcript fetched")
	return t, nil
}

// GenerateMaterial runs the generate flow for one session. Transcripts
// over the chunk limit are split at sentence boundaries, generated chunk
// by chunk, then merged with one final combining request. Every generator
// call is a single outbound request; nothing is retried.
func (s *Service) GenerateMaterial(ctx context.Context, sess *session.Session, kind models.MaterialKind) (models.GeneratedMaterial, error) {
	if !kind.Valid() {
		return models.GeneratedMaterial{}, models.ErrInvalidKind
	}

	transcript, err := sess.Transcript()
	if err != nil {
		return models.GeneratedMaterial{}, err
	}

	if err := sess.StartGenerate(); err != nil {
		return models.GeneratedMaterial{}, err
	}

	content, err := s.generate(ctx, transcript.Text, kind)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"session":  sess.ID(),
			"video_id": transcript.VideoID,
			"kind":     kind,
		}).WithError(err).Warn("Material generation failed")
		sess.Fail(models.UserMessage(err))
		return models.GeneratedMaterial{}, err
	}

	material := models.GeneratedMaterial{
		Kind:        kind,
		Content:     content,
		GeneratedAt: time.Now(),
	}
	sess.CompleteGenerate(material)
	s.log.WithFields(logrus.Fields{
		"session":  sess.ID(),
		"video_id": transcript.VideoID,
		"kind":     kind,
		"chars":    len(content),
	}).Info("Material generated")
	return material, nil
}

func (s *Service) generate(ctx context.Context, transcriptText string, kind models.MaterialKind) (string, error) {
	chunks := prompt.SplitChunks(transcriptText, s.chunkChars)

	results := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		p, err := prompt.Build(chunk, kind)
		if err != nil {
			return "", err
		}
		out, err := s.generator.Generate(ctx, p)
		if err != nil {
			return "", err
		}
		results = append(results, out)
	}

	if len(results) == 1 {
		return results[0], nil
	}

	combined, err := prompt.BuildCombine(kind, results)
	if err != nil {
		return "", err
	}
	return s.generator.Generate(ctx, combined)
}
