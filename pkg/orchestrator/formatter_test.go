package orchestrator

import (
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goliatone/go-uitree/pkg/fallback"
	"github.com/goliatone/go-uitree/pkg/intent"
	"github.com/goliatone/go-uitree/pkg/tree"
)

// staticMapper returns a prebuilt tree regardless of the payload, so tests
// can feed damaged trees through the full pipeline.
type staticMapper struct {
	tr   *tree.UITree
	kind intent.Kind
}

func (m *staticMapper) Map(map[string]any) (*tree.UITree, intent.Kind) {
	return m.tr.Clone(), m.kind
}

func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	}
}

func TestFormatNilPayload(t *testing.T) {
	_, err := New().Format(nil)
	if !errors.Is(err, ErrNilPayload) {
		t.Fatalf("err = %v, want ErrNilPayload", err)
	}
}

func TestFormatValidReply(t *testing.T) {
	f := New(WithClock(fixedClock()), WithVersion("v9.9.9-test"))
	result, err := f.Format(map[string]any{"intent": "reply", "content": "All good."})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}

	if result.Status != tree.StatusValid {
		t.Errorf("status = %s, want %s", result.Status, tree.StatusValid)
	}
	if len(result.Errors) != 0 || len(result.Warnings) != 0 {
		t.Errorf("issues on valid payload: %+v / %+v", result.Errors, result.Warnings)
	}
	if result.FallbackApplied {
		t.Error("fallback applied to a valid tree")
	}
	if result.Document == nil {
		t.Fatal("document missing")
	}
	if result.Document.Intro != "Here is the reply." {
		t.Errorf("intro = %q", result.Document.Intro)
	}

	final := result.Document.UITree
	if final.Root != "markdown_0" {
		t.Errorf("root = %s", final.Root)
	}
	meta := final.Metadata
	if meta == nil {
		t.Fatal("metadata missing")
	}
	if meta.Version != "v9.9.9-test" {
		t.Errorf("metadata version = %s", meta.Version)
	}
	if meta.Intent != "reply" {
		t.Errorf("metadata intent = %s", meta.Intent)
	}
	if meta.Status != tree.StatusValid {
		t.Errorf("metadata status = %s", meta.Status)
	}
	if meta.TraceID == "" {
		t.Error("trace id missing")
	}
	if meta.GeneratedAt != "2026-03-14T09:26:53Z" {
		t.Errorf("generated_at = %s", meta.GeneratedAt)
	}
}

func TestFormatRepairsAndReportsWarnings(t *testing.T) {
	damaged := &tree.UITree{
		Root: "x_0",
		Elements: map[string]*tree.Element{
			"x_0": {ID: "x_0", Type: "SparkleWidget", Children: []string{"ghost"}},
		},
	}
	f := New(WithMapper(&staticMapper{tr: damaged, kind: intent.KindReply}))

	result, err := f.Format(map[string]any{})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if result.Status != tree.StatusWarning {
		t.Errorf("status = %s, want %s", result.Status, tree.StatusWarning)
	}
	if result.FallbackApplied {
		t.Error("repairable damage must not trigger whole-tree fallback")
	}
	if len(result.Warnings) == 0 {
		t.Error("repairs not reported as warnings")
	}
	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors: %+v", result.Errors)
	}

	final := result.Document.UITree
	if got := final.Element("x_0").Type; got == "SparkleWidget" {
		t.Error("unknown type not rewritten")
	}
	if got := final.Element("x_0").Children; len(got) != 0 {
		t.Errorf("dangling reference survived: %v", got)
	}
}

func TestFormatFallbackOnFatal(t *testing.T) {
	broken := &tree.UITree{
		Root: "ghost",
		Elements: map[string]*tree.Element{
			"md_0": {ID: "md_0", Type: "Markdown", Props: map[string]any{"content": "salvage me"}},
		},
	}
	f := New(WithMapper(&staticMapper{tr: broken, kind: intent.KindReply}))

	result, err := f.Format(map[string]any{"content": "payload text"})
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	if !result.FallbackApplied {
		t.Fatal("fallback not applied on fatal issue")
	}
	if result.Status != tree.StatusWarning {
		t.Errorf("status = %s, want %s (output is still renderable)", result.Status, tree.StatusWarning)
	}
	if len(result.Errors) == 0 {
		t.Error("fatal issue not retained in errors")
	}

	final := result.Document.UITree
	if final.Root != fallback.FallbackRootID {
		t.Errorf("root = %s, want %s", final.Root, fallback.FallbackRootID)
	}
	content := final.Element(fallback.FallbackRootID).Props["content"].(string)
	if !strings.Contains(content, "salvage me") {
		t.Errorf("original text not salvaged:\n%s", content)
	}
}

func TestFormatWithoutFallbackFails(t *testing.T) {
	broken := &tree.UITree{Root: "ghost", Elements: map[string]*tree.Element{
		"a": {ID: "a", Type: "Card"},
	}}
	f := New(
		WithMapper(&staticMapper{tr: broken, kind: intent.KindReply}),
		WithoutFallback(),
	)

	result, err := f.Format(map[string]any{})
	if !errors.Is(err, ErrNoUsableTree) {
		t.Fatalf("err = %v, want ErrNoUsableTree", err)
	}
	if result == nil {
		t.Fatal("result should accompany the error for reporting")
	}
	if result.Status != tree.StatusInvalid {
		t.Errorf("status = %s, want %s", result.Status, tree.StatusInvalid)
	}
	if result.Document != nil {
		t.Error("document produced despite hard failure")
	}
}

func TestFormatStrictEscalatesWarnings(t *testing.T) {
	damaged := &tree.UITree{
		Root: "x_0",
		Elements: map[string]*tree.Element{
			"x_0": {ID: "x_0", Type: "SparkleWidget"},
		},
	}
	f := New(
		WithMapper(&staticMapper{tr: damaged, kind: intent.KindReply}),
		WithStrictValidation(),
	)

	result, err := f.Format(map[string]any{})
	if err != nil {
		t.Fatalf("Format: %v (strict alone keeps repaired output)", err)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("warnings survive strict mode: %+v", result.Warnings)
	}
	if len(result.Errors) == 0 {
		t.Error("strict mode did not escalate the repair report")
	}
	// the repair itself still happened
	if got := result.Document.UITree.Element("x_0").Type; got == "SparkleWidget" {
		t.Error("repair skipped in strict mode")
	}
}

func TestFormatStrictWithoutFallbackIsHardFailure(t *testing.T) {
	damaged := &tree.UITree{
		Root: "x_0",
		Elements: map[string]*tree.Element{
			"x_0": {ID: "x_0", Type: "SparkleWidget"},
		},
	}
	f := New(
		WithMapper(&staticMapper{tr: damaged, kind: intent.KindReply}),
		WithStrictValidation(),
		WithoutFallback(),
	)

	result, err := f.Format(map[string]any{})
	if !errors.Is(err, ErrNoUsableTree) {
		t.Fatalf("err = %v, want ErrNoUsableTree", err)
	}
	if result.Status != tree.StatusInvalid {
		t.Errorf("status = %s, want %s", result.Status, tree.StatusInvalid)
	}
}

func TestValidateTreeDoesNotMutateInput(t *testing.T) {
	input := &tree.UITree{
		Root: "card_0",
		Elements: map[string]*tree.Element{
			"card_0": {ID: "card_0", Type: "Card", Children: []string{"ghost"}},
		},
	}
	repaired, res, err := New().ValidateTree(input)
	if err != nil {
		t.Fatalf("ValidateTree: %v", err)
	}
	if res.Status != tree.StatusWarning {
		t.Errorf("status = %s, want %s", res.Status, tree.StatusWarning)
	}
	if len(repaired.Element("card_0").Children) != 0 {
		t.Error("repaired tree still has the dangling reference")
	}
	if len(input.Elements["card_0"].Children) != 1 {
		t.Error("input tree mutated")
	}
}

func TestValidateTreeNil(t *testing.T) {
	if _, _, err := New().ValidateTree(nil); err == nil {
		t.Fatal("nil tree accepted")
	}
}

func TestFormatJSON(t *testing.T) {
	out, err := New().FormatJSON([]byte(`{"intent": "reply", "content": "hi"}`))
	if err != nil {
		t.Fatalf("FormatJSON: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(out, &doc); err != nil {
		t.Fatalf("output not valid JSON: %v", err)
	}
	if doc.UITree == nil || doc.UITree.Root != "markdown_0" {
		t.Errorf("unexpected document: %+v", doc)
	}

	if _, err := New().FormatJSON([]byte(`{not json`)); err == nil {
		t.Error("malformed payload accepted")
	}
}

func TestFormatterConcurrentUse(t *testing.T) {
	f := New()
	payloads := []map[string]any{
		{"intent": "reply", "content": "a"},
		{"intent": "progress", "value": 10},
		{"intent": "error", "message": "boom"},
		{"intent": "form", "fields": []any{map[string]any{"name": "x"}}},
	}

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		payload := payloads[i%len(payloads)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := f.Format(payload)
			if err != nil {
				t.Errorf("Format: %v", err)
				return
			}
			if result.Document == nil {
				t.Error("document missing")
			}
		}()
	}
	wg.Wait()
}
