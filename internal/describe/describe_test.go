package describe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sanaa-nights/internal/config"
	"sanaa-nights/internal/logging"
)

type fakeGenerator struct {
	text   string
	err    error
	block  chan struct{}
	prompt string
	calls  int
}

func (f *fakeGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return f.text, f.err
}

func TestNoCredentialsFallsBack(t *testing.T) {
	s := FromCredentials(context.Background(), config.Credentials{}, logging.NewNopLogger())
	assert.Equal(t, FallbackUnavailable, s.RequestSceneDescription(context.Background()))
}

func TestNewGeminiRequiresKey(t *testing.T) {
	g, err := NewGemini(context.Background(), "", "")
	assert.Nil(t, g)
	assert.ErrorIs(t, err, ErrNoCredentials)
}

func TestRequestSceneDescription(t *testing.T) {
	tests := []struct {
		name string
		gen  *fakeGenerator
		want string
	}{
		{"text", &fakeGenerator{text: "  Golden minarets rise.  "}, "Golden minarets rise."},
		{"empty", &fakeGenerator{text: ""}, FallbackEmpty},
		{"blank", &fakeGenerator{text: " \n\t"}, FallbackEmpty},
		{"error", &fakeGenerator{err: errors.New("403 forbidden")}, FallbackUnavailable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewService(tc.gen)
			assert.Equal(t, tc.want, s.RequestSceneDescription(context.Background()))
			assert.Equal(t, Prompt, tc.gen.prompt)
		})
	}
}

func TestTimeoutFallsBack(t *testing.T) {
	gen := &fakeGenerator{block: make(chan struct{}), text: "late"}
	s := NewService(gen, WithTimeout(10*time.Millisecond))
	assert.Equal(t, FallbackUnavailable, s.RequestSceneDescription(context.Background()))
}

func TestRequestAsyncSingleFlight(t *testing.T) {
	gen := &fakeGenerator{block: make(chan struct{}), text: "A serene glow."}
	s := NewService(gen)

	require.True(t, s.RequestAsync(context.Background()))
	assert.True(t, s.InFlight())
	assert.False(t, s.RequestAsync(context.Background()), "second request must be rejected")

	_, loading := s.State().Snapshot()
	assert.True(t, loading)

	close(gen.block)
	s.Wait()

	text, loading := s.State().Snapshot()
	assert.False(t, loading)
	assert.False(t, s.InFlight())
	assert.Equal(t, "A serene glow.", text)
	assert.Equal(t, 1, s.State().Received())
	assert.Equal(t, 1, gen.calls)

	// a new request is accepted once the previous one finished
	require.True(t, s.RequestAsync(context.Background()))
	s.Wait()
	assert.Equal(t, 2, s.State().Received())
}

func TestRequestAsyncCancelled(t *testing.T) {
	gen := &fakeGenerator{block: make(chan struct{})}
	s := NewService(gen)
	ctx, cancel := context.WithCancel(context.Background())

	require.True(t, s.RequestAsync(ctx))
	cancel()
	s.Wait()

	text, _ := s.State().Snapshot()
	assert.Equal(t, FallbackUnavailable, text)
}
