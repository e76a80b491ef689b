// Package describe asks a text-generation model for a short poetic
// description of the scene. Requests never fail from the caller's point of
// view: every error resolves to a fixed fallback sentence.
package describe

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"sanaa-nights/internal/logging"
)

const (
	// FallbackUnavailable is shown when no model could be reached.
	FallbackUnavailable = "Unable to connect to the architectural archives (API Key missing or invalid)."
	// FallbackEmpty is shown when the model answered with nothing.
	FallbackEmpty = "The mosque glows with a celestial warmth against the cooling twilight, a beacon of serenity constructed from light and stone."
)

// Prompt is sent verbatim with every request.
const Prompt = `You are an architectural historian viewing a voxel art recreation of a magnificent illuminated mosque at night, inspired by the Al-Sabeen Mosque in Sana'a, Yemen.

Describe the atmosphere of the scene. Mention the 'luminous minarets', the 'warm glow of the windows', the 'geometric harmony', and the contrast with the 'twilight mountains' in the background.

Keep the tone poetic, serene, and appreciative of Islamic architecture. Max 3 sentences.`

// ErrNoCredentials means no API key was configured.
var ErrNoCredentials = errors.New("describe: API key not configured")

// TextGenerator produces text for a prompt.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// Service issues description requests and publishes results to its State.
type Service struct {
	gen     TextGenerator
	timeout time.Duration
	log     logging.Logger
	state   *State

	inFlight atomic.Bool
	wg       sync.WaitGroup
}

// Option customizes a Service.
type Option func(*Service)

// WithTimeout bounds each request; zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logging.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// NewService wraps gen. A nil gen is allowed and behaves as missing credentials.
func NewService(gen TextGenerator, opts ...Option) *Service {
	s := &Service{
		gen:     gen,
		timeout: 30 * time.Second,
		log:     logging.NewNopLogger(),
		state:   &State{},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns the shared description state the overlay reads.
func (s *Service) State() *State { return s.state }

// InFlight reports whether an async request is running.
func (s *Service) InFlight() bool { return s.inFlight.Load() }

// RequestSceneDescription returns the model's description or a fallback.
func (s *Service) RequestSceneDescription(ctx context.Context) string {
	id := uuid.NewString()
	start := time.Now()

	text, err := s.generate(ctx)
	switch {
	case err != nil:
		s.log.Warnf("request %s failed after %s: %v", id, time.Since(start).Round(time.Millisecond), err)
		return FallbackUnavailable
	case strings.TrimSpace(text) == "":
		s.log.Warnf("request %s returned no text", id)
		return FallbackEmpty
	}
	s.log.Debugf("request %s answered in %s (%d bytes)", id, time.Since(start).Round(time.Millisecond), len(text))
	return strings.TrimSpace(text)
}

func (s *Service) generate(ctx context.Context) (string, error) {
	if s.gen == nil {
		return "", ErrNoCredentials
	}
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.gen.GenerateText(ctx, Prompt)
}

// RequestAsync starts a request in the background unless one is already
// running. It reports whether a request was started. The result lands in
// State when done.
func (s *Service) RequestAsync(ctx context.Context) bool {
	if !s.inFlight.CompareAndSwap(false, true) {
		return false
	}
	s.state.begin()
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		text := s.RequestSceneDescription(ctx)
		s.state.finish(text)
		s.inFlight.Store(false)
	}()
	return true
}

// Wait blocks until every started request has finished.
func (s *Service) Wait() {
	s.wg.Wait()
}
