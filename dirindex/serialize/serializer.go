// Package serialize renders a completed hierarchy into the three output
// artifacts: JSON, XML and indented text. Serializers traverse the tree in
// its existing child order (already canonical, never re-sorted), never
// mutate it, and report progress at a coarser cadence than the builder
// because per-node work is cheaper. An empty tree always yields a
// syntactically valid, empty-but-well-formed artifact.
package serialize

import (
	"github.com/dirforge/dirindex/dirindex/index"
)

// DefaultBatchSize is the serializers' progress cadence in nodes visited.
const DefaultBatchSize = 500

// Serializer renders one completed tree into one text artifact.
type Serializer interface {
	Serialize(tree *index.Tree) ([]byte, error)
	// Extension is the artifact's file extension without the dot.
	Extension() string
}

// Options carries the progress configuration shared by all serializers.
type Options struct {
	BatchSize int
	Progress  index.ProgressFunc
}

func (o Options) batch() int {
	if o.BatchSize > 0 {
		return o.BatchSize
	}
	return DefaultBatchSize
}

// progressTracker counts visited nodes and fires notifications on batch
// boundaries, folding the last batch into the Done notification so counts
// stay strictly increasing.
type progressTracker struct {
	stage     string
	batch     int
	total     int
	processed int
	fn        index.ProgressFunc
}

func newProgressTracker(stage string, total int, opts Options) *progressTracker {
	return &progressTracker{
		stage: stage,
		batch: opts.batch(),
		total: total,
		fn:    opts.Progress,
	}
}

func (p *progressTracker) visit() {
	p.processed++
	if p.fn != nil && p.processed%p.batch == 0 && p.processed != p.total {
		p.fn(index.Progress{Stage: p.stage, Processed: p.processed, Total: p.total})
	}
}

func (p *progressTracker) finish() {
	if p.fn != nil {
		p.fn(index.Progress{Stage: p.stage, Processed: p.total, Total: p.total, Done: true})
	}
}
