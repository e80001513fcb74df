// Package indexer is the single shared entry point over the hierarchy
// engine. Every front-end (CLI, HTTP server) is a thin adapter calling this
// facade rather than duplicating the sort/build/serialize logic.
package indexer

import (
	"fmt"
	"log/slog"
	"time"

	internal "github.com/dirforge/dirindex/dirindex"
	"github.com/dirforge/dirindex/dirindex/index"
	"github.com/dirforge/dirindex/dirindex/serialize"

	"github.com/google/uuid"
)

// ArtifactBaseName is the conventional file name stem for all artifacts.
const ArtifactBaseName = "directory_index"

// Service runs the Sorter → Builder → Serializers pipeline for one flat
// entry list at a time. A run always executes to completion on a single
// goroutine; the in-progress tree is never shared across goroutines.
type Service struct {
	logger          *slog.Logger
	builderBatch    int
	serializerBatch int
	formats         []string
}

// Option allows for customization of the Service
type Option func(*Service)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithBatchSizes overrides the builder and serializer progress cadences
func WithBatchSizes(builder, serializer int) Option {
	return func(s *Service) {
		if builder > 0 {
			s.builderBatch = builder
		}
		if serializer > 0 {
			s.serializerBatch = serializer
		}
	}
}

// WithFormats restricts which artifacts are rendered ("json", "xml", "txt")
func WithFormats(formats ...string) Option {
	return func(s *Service) {
		if len(formats) > 0 {
			s.formats = formats
		}
	}
}

func New(opts ...Option) *Service {
	s := &Service{
		logger:          slog.Default(),
		builderBatch:    internal.DefaultBuilderBatchSize,
		serializerBatch: internal.DefaultSerializerBatchSize,
		formats:         []string{"json", "xml", "txt"},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Result is everything one indexing run produces. Artifacts are keyed by
// format extension and held in memory; writing them to disk or the wire is
// the adapter's job.
type Result struct {
	ID         uuid.UUID
	Root       string
	EntryCount int
	NodeCount  int
	Tree       *index.Tree
	Artifacts  map[string][]byte
	Duration   time.Duration
}

// ArtifactName returns the conventional file name for a format, e.g.
// "directory_index.json".
func ArtifactName(format string) string {
	return ArtifactBaseName + "." + format
}

// Run executes the full pipeline synchronously on the calling goroutine.
// The input slice is not modified; sorting happens on a copy. Progress
// notifications fire per stage at each stage's cadence, builder first, then
// one serializer at a time in format order.
func (s *Service) Run(root string, entries []index.Entry, progress index.ProgressFunc) (*Result, error) {
	start := time.Now()

	sorted := make([]index.Entry, len(entries))
	copy(sorted, entries)
	index.SortEntries(sorted)

	builder := index.NewBuilder(
		index.WithBatchSize(s.builderBatch),
		index.WithLogger(s.logger),
		index.WithProgress(progress),
	)
	tree, nodeCount, err := builder.Build(root, sorted)
	if err != nil {
		return nil, fmt.Errorf("build hierarchy: %w", err)
	}

	serializeOpts := serialize.Options{BatchSize: s.serializerBatch, Progress: progress}
	artifacts := make(map[string][]byte, len(s.formats))
	for _, format := range s.formats {
		ser, err := serializerFor(format, serializeOpts)
		if err != nil {
			return nil, err
		}
		out, err := ser.Serialize(tree)
		if err != nil {
			return nil, fmt.Errorf("render %s artifact: %w", format, err)
		}
		artifacts[ser.Extension()] = out
	}

	result := &Result{
		ID:         uuid.New(),
		Root:       root,
		EntryCount: len(entries),
		NodeCount:  nodeCount,
		Tree:       tree,
		Artifacts:  artifacts,
		Duration:   time.Since(start),
	}

	s.logger.Info("indexing run complete",
		"run_id", result.ID,
		"root", root,
		"entries", result.EntryCount,
		"nodes", result.NodeCount,
		"artifacts", len(result.Artifacts),
		"duration", result.Duration)

	return result, nil
}

// Outcome is the terminal message of an async run.
type Outcome struct {
	Result *Result
	Err    error
}

// RunAsync executes the whole pipeline on one dedicated goroutine and
// streams progress over a buffered channel. The progress channel is closed
// once the outcome has been sent; the outcome channel carries exactly one
// message. Callers must drain the progress channel until it closes:
// intermediate notifications are dropped when the buffer is full, but
// stage-completion notifications wait for the consumer.
func (s *Service) RunAsync(root string, entries []index.Entry) (<-chan index.Progress, <-chan Outcome) {
	progressCh := make(chan index.Progress, 64)
	outcomeCh := make(chan Outcome, 1)

	go func() {
		result, err := s.Run(root, entries, index.NotifyChannel(progressCh))
		outcomeCh <- Outcome{Result: result, Err: err}
		close(progressCh)
	}()

	return progressCh, outcomeCh
}

func serializerFor(format string, opts serialize.Options) (serialize.Serializer, error) {
	switch format {
	case "json":
		return serialize.NewJSONSerializer(opts), nil
	case "xml":
		return serialize.NewXMLSerializer(opts), nil
	case "txt":
		return serialize.NewTextSerializer(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
