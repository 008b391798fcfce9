package app_test

import (
	"bytes"
	"context"
	"io"
	"iter"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/strata/internal/adapters/manifest"
	"go.trai.ch/strata/internal/adapters/registry"
	"go.trai.ch/strata/internal/app"
	"go.trai.ch/strata/internal/core/domain"
	"go.trai.ch/strata/internal/core/ports"
	"go.trai.ch/strata/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// fakeWatcher feeds scripted events into the watch loop.
type fakeWatcher struct {
	events  chan ports.WatchEvent
	started chan struct{}
}

func newFakeWatcher() *fakeWatcher {
	return &fakeWatcher{
		events:  make(chan ports.WatchEvent, 8),
		started: make(chan struct{}),
	}
}

func (w *fakeWatcher) Start(context.Context, string) error {
	close(w.started)
	return nil
}

func (w *fakeWatcher) Stop() error {
	close(w.events)
	return nil
}

func (w *fakeWatcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

// syncBuffer serializes writes from the watch loop goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var _ io.Writer = (*syncBuffer)(nil)

func TestEval_WatchReEvaluates(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		root := writeProject(t)

		ctrl := gomock.NewController(t)
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Info(gomock.Any()).AnyTimes()
		log.EXPECT().Error(gomock.Any()).AnyTimes()

		w := newFakeWatcher()
		application := app.New(manifest.NewLoader(log), registry.NewOpener(), w, log).WithWorkdir(root)

		ctx, cancel := context.WithCancel(context.Background())

		out := &syncBuffer{}
		done := make(chan error, 1)
		go func() {
			done <- application.Eval(ctx, out, app.EvalOptions{JSON: true, Watch: true})
		}()

		<-w.started
		synctest.Wait()

		// The initial evaluation has rendered once.
		require.Equal(t, 1, strings.Count(out.String(), `"platforms"`))

		// A manifest change triggers a debounced re-evaluation.
		w.events <- ports.WatchEvent{
			Path:      filepath.Join(root, domain.ManifestFileName),
			Operation: ports.OpWrite,
		}

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, 2, strings.Count(out.String(), `"platforms"`))

		// Irrelevant files are ignored.
		w.events <- ports.WatchEvent{
			Path:      filepath.Join(root, "README.md"),
			Operation: ports.OpWrite,
		}

		time.Sleep(time.Second)
		synctest.Wait()
		assert.Equal(t, 2, strings.Count(out.String(), `"platforms"`))

		cancel()
		require.NoError(t, <-done)
	})
}
