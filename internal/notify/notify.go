package notify

import (
	"io"
	"log"
	"sync"
)

// Notifier is the fire-and-forget toast channel. Signals surface success or
// failure of cart and wishlist operations to the presentation layer and have
// no effect on core state.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

type logNotifier struct {
	logger *log.Logger
}

// NewLog returns a Notifier that writes toasts to the given logger.
func NewLog(logger *log.Logger) Notifier {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &logNotifier{logger: logger}
}

func (n *logNotifier) Success(msg string) {
	n.logger.Printf("toast: success %q", msg)
}

func (n *logNotifier) Error(msg string) {
	n.logger.Printf("toast: error %q", msg)
}

// Recorder captures toasts for assertions in tests.
type Recorder struct {
	mu        sync.Mutex
	Successes []string
	Errors    []string
}

func (r *Recorder) Success(msg string) {
	r.mu.Lock()
	r.Successes = append(r.Successes, msg)
	r.mu.Unlock()
}

func (r *Recorder) Error(msg string) {
	r.mu.Lock()
	r.Errors = append(r.Errors, msg)
	r.mu.Unlock()
}
