package orchestrator

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-uitree/pkg/catalog"
	"github.com/goliatone/go-uitree/pkg/fallback"
	"github.com/goliatone/go-uitree/pkg/intent"
	"github.com/goliatone/go-uitree/pkg/tree"
	"github.com/goliatone/go-uitree/pkg/validate"
)

// Version is the engine version stamped into tree metadata.
const Version = "v0.8.0"

var (
	// ErrNilPayload flags caller misuse: a nil intent payload.
	ErrNilPayload = errors.New("orchestrator: payload is nil")
	// ErrNoUsableTree means validation failed while fallback was disabled;
	// no renderable tree exists and the caller must treat this as a hard
	// failure.
	ErrNoUsableTree = errors.New("orchestrator: validation failed and fallback is disabled")
)

// Document is the final output shape handed to the frontend consumer.
type Document struct {
	Intro  string       `json:"intro"`
	UITree *tree.UITree `json:"ui_tree"`
}

// Result carries the document together with the validation outcome.
type Result struct {
	Document        *Document    `json:"document,omitempty"`
	Intent          intent.Kind  `json:"intent"`
	Status          tree.Status  `json:"status"`
	Errors          []tree.Issue `json:"errors"`
	Warnings        []tree.Issue `json:"warnings"`
	FallbackApplied bool         `json:"fallback_applied,omitempty"`
}

// Formatter is the pipeline entry point. It is safe for concurrent use:
// every Format call works on request-local state and the catalog is
// read-only after construction.
type Formatter struct {
	catalog        *catalog.Registry
	mapper         intent.Mapper
	degrader       *fallback.Degrader
	logger         *zap.Logger
	enableFallback bool
	strict         bool
	version        string
	now            func() time.Time
}

// New constructs a Formatter with defaults: built-in catalog, default
// mapper, fallback enabled, no-op logger.
func New(options ...Option) *Formatter {
	f := &Formatter{
		catalog:        catalog.Default(),
		mapper:         intent.NewMapper(),
		degrader:       fallback.New(),
		logger:         zap.NewNop(),
		enableFallback: true,
		version:        Version,
		now:            time.Now,
	}
	for _, opt := range options {
		opt(f)
	}
	return f
}

// Format maps the payload to a draft tree, validates and repairs it, and
// assembles the final document. The returned error is non-nil only for
// caller misuse or when fallback is disabled and the tree could not be made
// renderable; malformed content alone never fails.
func (f *Formatter) Format(payload map[string]any) (*Result, error) {
	if payload == nil {
		return nil, ErrNilPayload
	}

	draft, kind := f.mapper.Map(payload)
	f.logger.Debug("mapped intent payload",
		zap.String("intent", string(kind)),
		zap.Int("elements", len(draft.Elements)))

	final, res, fallbackApplied := f.run(draft, payload)

	result := &Result{
		Intent:          kind,
		Status:          res.Status,
		Errors:          res.Errors,
		Warnings:        res.Warnings,
		FallbackApplied: fallbackApplied,
	}

	if final == nil {
		f.logger.Warn("no usable tree produced",
			zap.String("intent", string(kind)),
			zap.Int("errors", len(res.Errors)))
		return result, ErrNoUsableTree
	}

	final.Metadata = &tree.Metadata{
		Version:     f.version,
		Intent:      string(kind),
		TraceID:     uuid.NewString(),
		Status:      res.Status,
		Errors:      res.Errors,
		Warnings:    res.Warnings,
		GeneratedAt: f.now().UTC().Format(time.RFC3339),
	}
	result.Document = &Document{Intro: intent.Intro(kind), UITree: final}

	f.logger.Info("formatted ui tree",
		zap.String("intent", string(kind)),
		zap.String("status", string(res.Status)),
		zap.Int("warnings", len(res.Warnings)),
		zap.Bool("fallback", fallbackApplied))
	return result, nil
}

// run executes the validation rounds and the fallback policy. It returns
// the final tree (nil when no usable tree exists), the aggregated result,
// and whether whole-tree fallback was applied.
func (f *Formatter) run(t *tree.UITree, payload map[string]any) (*tree.UITree, *tree.Result, bool) {
	res := tree.NewResult()
	issues := validate.NewPipeline(f.catalog).Run(t)
	res.RecordAll(issues)

	degrade := false
	switch {
	case tree.HasFatal(issues):
		degrade = true
	default:
		// One rewrite cycle is the whole budget: verify the repairs held
		// instead of looping.
		if residual := validate.Verify(t); len(residual) > 0 {
			res.RecordAll(residual)
			res.Errors = append(res.Errors, res.Warnings...)
			res.Warnings = []tree.Issue{}
			degrade = true
		}
	}

	if degrade {
		if !f.enableFallback {
			res.Status = tree.StatusInvalid
			return nil, res, false
		}
		t = f.degrader.Degrade(t, payload, res.Errors)
		// The caller still receives renderable output, so the replacement
		// tree reports warning with the fatal issues retained in errors.
		res.Status = tree.StatusWarning
		if f.strict {
			res.Escalate()
		}
		return t, res, true
	}

	if f.strict {
		res.Escalate()
		if !f.enableFallback && len(res.Errors) > 0 {
			res.Status = tree.StatusInvalid
			return nil, res, false
		}
	}
	return t, res, false
}

// ValidateTree runs the validation rounds against an externally built tree,
// bypassing the intent mapper. The input is cloned; the returned tree is
// the repaired (or degraded) version.
func (f *Formatter) ValidateTree(t *tree.UITree) (*tree.UITree, *tree.Result, error) {
	if t == nil {
		return nil, nil, errors.New("orchestrator: tree is nil")
	}
	final, res, _ := f.run(t.Clone(), nil)
	if final == nil {
		return nil, res, ErrNoUsableTree
	}
	return final, res, nil
}

// FormatJSON decodes an intent payload from JSON and returns the final
// document encoded with indentation, mirroring the process-level surface.
func (f *Formatter) FormatJSON(data []byte) ([]byte, error) {
	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("orchestrator: decode payload: %w", err)
	}
	result, err := f.Format(payload)
	if err != nil {
		return nil, err
	}
	encoded, err := json.MarshalIndent(result.Document, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("orchestrator: encode document: %w", err)
	}
	return encoded, nil
}
