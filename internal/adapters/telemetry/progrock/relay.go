package progrock

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/vito/progrock"
	"go.trai.ch/cxpack/internal/core/ports"
)

var _ progrock.Writer = (*Relay)(nil)

type logLine struct {
	stream progrock.LogStream
	text   string
}

// Relay is a progrock.Writer that reports each vertex through a ports.Logger
// once it completes. Vertex output is held back until then so lines of
// concurrent items do not interleave.
type Relay struct {
	logger ports.Logger

	mu      sync.Mutex
	pending map[string][]logLine
	done    map[string]bool
}

// NewRelay creates a Relay logging to logger.
func NewRelay(logger ports.Logger) *Relay {
	return &Relay{
		logger:  logger,
		pending: make(map[string][]logLine),
		done:    make(map[string]bool),
	}
}

// WriteStatus buffers vertex logs and reports completed vertices.
func (r *Relay) WriteStatus(update *progrock.StatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range update.Logs {
		for _, text := range strings.Split(strings.TrimRight(string(l.Data), "\n"), "\n") {
			if text == "" {
				continue
			}
			r.pending[l.Vertex] = append(r.pending[l.Vertex], logLine{stream: l.Stream, text: text})
		}
	}

	for _, v := range update.Vertexes {
		if v.Completed == nil || r.done[v.Id] {
			continue
		}
		r.done[v.Id] = true
		r.report(v)
	}
	return nil
}

func (r *Relay) report(v *progrock.Vertex) {
	var elapsed time.Duration
	if v.Started != nil {
		elapsed = v.Completed.AsTime().Sub(v.Started.AsTime()).Round(time.Millisecond)
	}

	switch {
	case v.Canceled:
		r.logger.Debug(fmt.Sprintf("Canceled %q after %s", v.Name, elapsed))
	case v.Error != nil:
		r.logger.Debug(fmt.Sprintf("Failed %q after %s: %s", v.Name, elapsed, *v.Error))
	default:
		r.logger.Debug(fmt.Sprintf("Finished %q in %s", v.Name, elapsed))
	}

	for _, line := range r.pending[v.Id] {
		msg := v.Name + ": " + line.text
		if line.stream == progrock.LogStream_STDERR {
			r.logger.Warn(msg)
			continue
		}
		r.logger.Debug(msg)
	}
	delete(r.pending, v.Id)
}

// Close drops output of vertices that never completed.
func (r *Relay) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clear(r.pending)
	return nil
}
