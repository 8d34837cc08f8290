package llm

import (
	"context"
	"sync"

	"github.com/ankitm/fintrack/internal/model"
	"github.com/ankitm/fintrack/internal/service"
)

// Runner executes summarization requests asynchronously so they never block
// ledger mutations. A new request supersedes the in-flight one: the prior
// request's context is canceled and its result, if it arrives anyway, is
// discarded. A caller therefore only ever observes insights for the latest
// ledger state it asked about.
type Runner struct {
	summarizer service.Summarizer
	cancel     context.CancelFunc
	generation uint64
	mu         sync.Mutex
}

// NewRunner creates a runner over the given summarizer.
func NewRunner(summarizer service.Summarizer) *Runner {
	return &Runner{summarizer: summarizer}
}

// Request starts a summarization for the given snapshot and returns a
// channel that yields the result. If the request is superseded before it
// completes, the channel is closed without a value.
func (r *Runner) Request(ctx context.Context, transactions []model.Transaction) <-chan string {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.generation++
	generation := r.generation
	r.mu.Unlock()

	out := make(chan string, 1)
	go func() {
		defer close(out)

		text := r.summarizer.Summarize(runCtx, transactions)

		r.mu.Lock()
		stale := generation != r.generation
		r.mu.Unlock()
		if stale || runCtx.Err() != nil {
			return
		}
		out <- text
	}()

	return out
}
