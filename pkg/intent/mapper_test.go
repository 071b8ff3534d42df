package intent

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-uitree/pkg/tree"
)

func mapOne(t *testing.T, payload map[string]any) (*tree.Element, Kind) {
	t.Helper()
	tr, kind := NewMapper().Map(payload)
	require.NotNil(t, tr)
	require.NotEmpty(t, tr.Root)
	elem := tr.Element(tr.Root)
	require.NotNil(t, elem)
	require.Len(t, tr.Elements, 1, "draft trees are flat")
	assert.Empty(t, elem.Children)
	return elem, kind
}

func TestMapReply(t *testing.T) {
	elem, kind := mapOne(t, map[string]any{"intent": "reply", "content": "Hello **there**"})
	assert.Equal(t, KindReply, kind)
	assert.Equal(t, "Markdown", elem.Type)
	assert.Equal(t, "markdown_0", elem.ID)
	assert.Equal(t, "Hello **there**", elem.Props["content"])
}

func TestMapCode(t *testing.T) {
	elem, kind := mapOne(t, map[string]any{
		"intent":   "code",
		"code":     "fmt.Println(1)",
		"language": "go",
	})
	assert.Equal(t, KindCode, kind)
	assert.Equal(t, "Markdown", elem.Type)
	content := elem.Props["content"].(string)
	assert.True(t, strings.HasPrefix(content, "```go\n"), "content: %s", content)
	assert.Contains(t, content, "fmt.Println(1)")
}

func TestMapCodeExtractsFence(t *testing.T) {
	elem, _ := mapOne(t, map[string]any{
		"intent": "code",
		"code":   "Some prose\n```python\nprint(1)\n```\ntrailing",
	})
	content := elem.Props["content"].(string)
	assert.True(t, strings.HasPrefix(content, "```python\n"), "fence language wins: %s", content)
	assert.Contains(t, content, "print(1)")
	assert.NotContains(t, content, "Some prose")
}

func TestMapForm(t *testing.T) {
	elem, kind := mapOne(t, map[string]any{
		"intent": "form",
		"title":  "Sign up",
		"fields": []any{
			map[string]any{"name": "email", "type": "email", "label": "Email", "required": true},
			map[string]any{"label": "Nameless"},
		},
	})
	assert.Equal(t, KindForm, kind)
	assert.Equal(t, "Form", elem.Type)
	assert.Equal(t, "Sign up", elem.Props["title"])

	fields := elem.Props["fields"].([]any)
	require.Len(t, fields, 2)
	first := fields[0].(map[string]any)
	assert.Equal(t, "email", first["name"])
	assert.Equal(t, true, first["required"], "passthrough key kept")
	second := fields[1].(map[string]any)
	assert.Equal(t, "field_1", second["name"], "missing name synthesized")
	assert.Equal(t, "text", second["type"], "missing type defaults to text")

	actions := elem.Props["actions"].([]any)
	require.Len(t, actions, 1, "default submit action injected")
	submit := actions[0].(map[string]any)
	assert.Equal(t, "Submit", submit["label"])
	assert.Equal(t, "primary", submit["variant"])
}

func TestMapConfirm(t *testing.T) {
	elem, kind := mapOne(t, map[string]any{
		"intent":      "confirm",
		"title":       "Delete item?",
		"description": "This cannot be undone.",
	})
	assert.Equal(t, KindConfirm, kind)
	assert.Equal(t, "Card", elem.Type)
	assert.Equal(t, "Delete item?", elem.Props["title"])
	assert.Equal(t, "This cannot be undone.", elem.Props["content"])

	actions := elem.Props["actions"].([]any)
	require.Len(t, actions, 2, "default confirm/cancel pair")
	assert.Equal(t, "primary", actions[0].(map[string]any)["variant"])
	assert.Equal(t, "outline", actions[1].(map[string]any)["variant"])
}

func TestMapSelectWidgetChoice(t *testing.T) {
	makeOptions := func(n int) []any {
		options := make([]any, n)
		for i := range options {
			options[i] = map[string]any{"value": string(rune('a' + i))}
		}
		return options
	}

	elem, _ := mapOne(t, map[string]any{"intent": "select", "question": "Pick", "options": makeOptions(3)})
	field := elem.Props["fields"].([]any)[0].(map[string]any)
	assert.Equal(t, "radio", field["type"], "few options render as radio")

	elem, _ = mapOne(t, map[string]any{"intent": "select", "question": "Pick", "options": makeOptions(8)})
	field = elem.Props["fields"].([]any)[0].(map[string]any)
	assert.Equal(t, "select", field["type"])
	_, searchable := field["searchable"]
	assert.False(t, searchable)

	elem, _ = mapOne(t, map[string]any{"intent": "select", "question": "Pick", "options": makeOptions(12)})
	field = elem.Props["fields"].([]any)[0].(map[string]any)
	assert.Equal(t, "select", field["type"])
	assert.Equal(t, true, field["searchable"], "long lists become searchable")

	elem, _ = mapOne(t, map[string]any{"intent": "select", "question": "Pick", "options": makeOptions(3), "multiple": true})
	field = elem.Props["fields"].([]any)[0].(map[string]any)
	assert.Equal(t, "checkbox", field["type"], "multiple select renders checkboxes")
}

func TestMapAlertSeverities(t *testing.T) {
	cases := []struct {
		intent string
		want   string
	}{
		{"alert", "info"},
		{"warn", "warning"},
		{"error", "error"},
		{"success", "success"},
	}
	for _, tc := range cases {
		elem, _ := mapOne(t, map[string]any{"intent": tc.intent, "message": "m"})
		assert.Equal(t, "Alert", elem.Type)
		assert.Equal(t, tc.want, elem.Props["type"], "intent %s", tc.intent)
	}
}

func TestMapProgress(t *testing.T) {
	elem, kind := mapOne(t, map[string]any{"intent": "progress", "value": 60, "label": "Uploading"})
	assert.Equal(t, KindProgress, kind)
	assert.Equal(t, "Progress", elem.Type)
	assert.Equal(t, 60.0, elem.Props["value"])
	assert.Equal(t, 100.0, elem.Props["max"])
}

func TestMapMedia(t *testing.T) {
	elem, _ := mapOne(t, map[string]any{"intent": "media", "media_type": "video", "src": "v.mp4"})
	assert.Equal(t, "VideoPlayer", elem.Type)
	assert.Equal(t, "v.mp4", elem.Props["src"])

	elem, _ = mapOne(t, map[string]any{"intent": "media", "media_type": "audio", "src": "a.mp3"})
	assert.Equal(t, "AudioPlayer", elem.Type)

	elem, _ = mapOne(t, map[string]any{"intent": "media", "sources": []any{"1.png", "2.png"}})
	assert.Equal(t, "ImageGallery", elem.Type)
	images := elem.Props["images"].([]any)
	require.Len(t, images, 2)
	assert.Equal(t, "1.png", images[0].(map[string]any)["src"])

	elem, _ = mapOne(t, map[string]any{"intent": "media", "src": "only.png"})
	assert.Equal(t, 1.0, elem.Props["columns"], "single image renders one column")
}

func TestMapData(t *testing.T) {
	elem, kind := mapOne(t, map[string]any{
		"intent": "data",
		"title":  "Scores",
		"columns": []any{
			map[string]any{"key": "name", "title": "Name"},
			map[string]any{"key": "score"},
		},
		"data": []any{
			map[string]any{"name": "amy", "score": 10.0},
			map[string]any{"name": "bo", "score": 7.5},
		},
	})
	assert.Equal(t, KindData, kind)
	assert.Equal(t, "Markdown", elem.Type)

	content := elem.Props["content"].(string)
	assert.Contains(t, content, "## Scores")
	assert.Contains(t, content, "| Name | score |")
	assert.Contains(t, content, "| --- | --- |")
	assert.Contains(t, content, "| amy | 10 |")
	assert.Contains(t, content, "| bo | 7.5 |")
}

func TestMapDataWithoutRows(t *testing.T) {
	elem, _ := mapOne(t, map[string]any{"intent": "data"})
	assert.Equal(t, "Markdown", elem.Type)
	assert.Equal(t, "No data", elem.Props["content"])
}

func TestMapApp(t *testing.T) {
	elem, kind := mapOne(t, map[string]any{
		"intent": "app",
		"id":     "app-1",
		"title":  "My App",
	})
	assert.Equal(t, KindApp, kind)
	assert.Equal(t, "AppCard", elem.Type)
	assert.Equal(t, "appcard_0", elem.ID)
	assert.Equal(t, "app-1", elem.Props["id"])
}

func TestMapUnknownDumpsPayload(t *testing.T) {
	elem, kind := mapOne(t, map[string]any{"mystery": "blob"})
	assert.Equal(t, KindUnknown, kind)
	assert.Equal(t, "Markdown", elem.Type)
	assert.Contains(t, elem.Props["content"], `"mystery":"blob"`)
}

func TestMapperIDPrefix(t *testing.T) {
	tr, _ := NewMapper(WithIDPrefix("req1-")).Map(map[string]any{"intent": "reply", "content": "x"})
	assert.Equal(t, "req1-markdown_0", tr.Root)
}
