package intent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/goliatone/go-uitree/pkg/catalog"
)

// fieldPassthroughKeys are the inline form field keys copied verbatim from
// the payload when present.
var fieldPassthroughKeys = []string{
	"placeholder", "defaultValue", "required", "disabled", "helperText",
	"options", "min", "max", "minLength", "maxLength", "pattern",
	"multiple", "searchable", "rows", "showToggle", "validation", "visibleWhen",
}

func handleReply(payload map[string]any) component {
	return component{
		typ:   catalog.TypeMarkdown,
		props: map[string]any{"content": getString(payload, "content")},
	}
}

func handleCode(payload map[string]any) component {
	code := getString(payload, "code")
	if code == "" {
		code = getString(payload, "content")
	}
	language := getString(payload, "language")
	if language == "" {
		language = "text"
	}
	if strings.Contains(code, "```") {
		code, language = extractFencedBlock(code, language)
	}
	return component{
		typ: catalog.TypeMarkdown,
		props: map[string]any{
			"content": fmt.Sprintf("```%s\n%s\n```", language, code),
			"codeOptions": map[string]any{
				"copyable":        getBoolDefault(payload, "copyable", true),
				"showLineNumbers": getBoolDefault(payload, "showLineNumbers", true),
			},
		},
	}
}

// extractFencedBlock pulls the first fenced code block out of markdown,
// preferring the fence's language tag over the payload one.
func extractFencedBlock(markdown, language string) (string, string) {
	lines := strings.Split(markdown, "\n")
	for i, line := range lines {
		if !strings.HasPrefix(line, "```") {
			continue
		}
		if lang := strings.TrimSpace(line[3:]); lang != "" {
			language = lang
		}
		for j := i + 1; j < len(lines); j++ {
			if strings.HasPrefix(lines[j], "```") {
				return strings.Join(lines[i+1:j], "\n"), language
			}
		}
		break
	}
	return markdown, language
}

func handleForm(payload map[string]any) component {
	fields := getSlice(payload, "fields")
	normalized := make([]any, 0, len(fields))
	for _, raw := range fields {
		src, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		field := map[string]any{
			"name":  getStringDefault(src, "name", fmt.Sprintf("field_%d", len(normalized))),
			"type":  getStringDefault(src, "type", string(catalog.FieldText)),
			"label": getString(src, "label"),
		}
		for _, key := range fieldPassthroughKeys {
			if value, ok := src[key]; ok {
				field[key] = value
			}
		}
		normalized = append(normalized, field)
	}

	actions := getSlice(payload, "actions")
	if len(actions) == 0 {
		actions = []any{map[string]any{"label": "Submit", "type": "submit", "variant": "primary"}}
	}

	props := map[string]any{
		"title":       getString(payload, "title"),
		"description": getString(payload, "description"),
		"layout":      getStringDefault(payload, "layout", "vertical"),
		"fields":      normalized,
		"actions":     normalizeFormActions(actions),
	}
	if submit, ok := payload["submitAction"]; ok {
		props["submitAction"] = submit
	}
	return component{typ: catalog.TypeForm, props: props}
}

func normalizeFormActions(actions []any) []any {
	normalized := make([]any, 0, len(actions))
	for _, raw := range actions {
		src, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		actionType := getStringDefault(src, "type", "submit")
		variant := getString(src, "variant")
		if variant == "" {
			variant = "secondary"
			if actionType == "submit" || actionType == "confirm" {
				variant = "primary"
			}
		}
		out := map[string]any{
			"label":   getStringDefault(src, "label", "Submit"),
			"type":    actionType,
			"variant": variant,
		}
		if action, ok := src["action"]; ok {
			out["action"] = action
		}
		if disabled, _ := src["disabled"].(bool); disabled {
			out["disabled"] = true
		}
		normalized = append(normalized, out)
	}
	return normalized
}

func handleConfirm(payload map[string]any) component {
	content := getString(payload, "description")
	if content == "" {
		content = getString(payload, "content")
	}
	actions := getSlice(payload, "actions")
	if len(actions) == 0 {
		actions = []any{
			map[string]any{"label": "Confirm", "variant": "primary"},
			map[string]any{"label": "Cancel", "variant": "outline"},
		}
	}

	normalized := make([]any, 0, len(actions))
	for _, raw := range actions {
		src, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		variant := getString(src, "variant")
		if variant == "" {
			switch getString(src, "type") {
			case "confirm", "submit":
				variant = "primary"
			case "danger", "delete":
				variant = "danger"
			default:
				variant = "outline"
			}
		}
		out := map[string]any{"label": getString(src, "label"), "variant": variant}
		if action, ok := src["action"]; ok {
			out["action"] = action
		}
		normalized = append(normalized, out)
	}

	return component{
		typ: catalog.TypeCard,
		props: map[string]any{
			"title":    getStringDefault(payload, "title", "Confirm"),
			"content":  content,
			"actions":  normalized,
			"bordered": true,
		},
	}
}

func handleSelect(payload map[string]any) component {
	question := getStringDefault(payload, "question", "Please select")
	options := getSlice(payload, "options")
	multiple, _ := payload["multiple"].(bool)

	fieldType := catalog.FieldSelect
	switch {
	case multiple:
		fieldType = catalog.FieldCheckbox
	case len(options) <= 5:
		fieldType = catalog.FieldRadio
	}

	field := map[string]any{
		"name":     "selection",
		"type":     string(fieldType),
		"label":    question,
		"options":  options,
		"required": true,
	}
	if fieldType == catalog.FieldSelect && len(options) > 10 {
		field["searchable"] = true
	}

	actions := getSlice(payload, "actions")
	if len(actions) == 0 {
		actions = []any{map[string]any{"label": "OK", "type": "submit", "variant": "primary"}}
	}

	return component{
		typ: catalog.TypeForm,
		props: map[string]any{
			"fields":  []any{field},
			"actions": normalizeFormActions(actions),
		},
	}
}

func handleAlert(payload map[string]any, alertType string) component {
	message := getString(payload, "message")
	if message == "" {
		message = getString(payload, "content")
	}
	return component{
		typ: "Alert",
		props: map[string]any{
			"type":        alertType,
			"message":     message,
			"description": getString(payload, "description"),
			"showIcon":    getBoolDefault(payload, "showIcon", true),
			"closable":    getBoolDefault(payload, "closable", false),
			"actions":     getSlice(payload, "actions"),
		},
	}
}

func handleProgress(payload map[string]any) component {
	return component{
		typ: "Progress",
		props: map[string]any{
			"value":     getNumberDefault(payload, "value", 0),
			"max":       getNumberDefault(payload, "max", 100),
			"type":      getStringDefault(payload, "type", "linear"),
			"label":     getString(payload, "label"),
			"showValue": getBoolDefault(payload, "showValue", true),
			"status":    getStringDefault(payload, "status", "normal"),
		},
	}
}

func handleMedia(payload map[string]any) component {
	mediaType := strings.ToLower(getStringDefault(payload, "media_type", "image"))
	sources := getSlice(payload, "sources")
	if len(sources) == 0 {
		if src := getString(payload, "src"); src != "" {
			sources = []any{src}
		}
	}
	first := ""
	if len(sources) > 0 {
		first, _ = sources[0].(string)
	}

	switch mediaType {
	case "video":
		return component{
			typ: "VideoPlayer",
			props: map[string]any{
				"src":      first,
				"poster":   getString(payload, "poster"),
				"controls": getBoolDefault(payload, "controls", true),
				"title":    getString(payload, "title"),
			},
		}
	case "audio":
		return component{
			typ: "AudioPlayer",
			props: map[string]any{
				"src":      first,
				"controls": getBoolDefault(payload, "controls", true),
				"title":    getString(payload, "title"),
			},
		}
	default:
		images := make([]any, 0, len(sources))
		for _, src := range sources {
			if s, ok := src.(string); ok {
				images = append(images, map[string]any{"src": s})
			} else {
				images = append(images, src)
			}
		}
		columns := float64(3)
		if len(images) == 1 {
			columns = 1
		}
		return component{
			typ: "ImageGallery",
			props: map[string]any{
				"images":         images,
				"columns":        getNumberDefault(payload, "columns", columns),
				"enableLightbox": getBoolDefault(payload, "enableLightbox", true),
			},
		}
	}
}

// handleData renders tabular payloads as a Markdown table.
func handleData(payload map[string]any) component {
	rows := getSlice(payload, "data")
	columns := getSlice(payload, "columns")
	title := getString(payload, "title")

	if len(rows) == 0 || len(columns) == 0 {
		content := title
		if content == "" {
			content = "No data"
		}
		return component{typ: catalog.TypeMarkdown, props: map[string]any{"content": content}}
	}

	headers := make([]string, 0, len(columns))
	keys := make([]string, 0, len(columns))
	for _, raw := range columns {
		col, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		key := getString(col, "key")
		header := getStringDefault(col, "title", key)
		headers = append(headers, header)
		keys = append(keys, key)
	}

	var lines []string
	if title != "" {
		lines = append(lines, "## "+title+"\n")
	}
	lines = append(lines, "| "+strings.Join(headers, " | ")+" |")
	separators := make([]string, len(headers))
	for i := range separators {
		separators[i] = "---"
	}
	lines = append(lines, "| "+strings.Join(separators, " | ")+" |")

	for _, raw := range rows {
		row, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		cells := make([]string, len(keys))
		for i, key := range keys {
			cells[i] = stringify(row[key])
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
	}

	return component{typ: catalog.TypeMarkdown, props: map[string]any{"content": strings.Join(lines, "\n")}}
}

func handleApp(payload map[string]any) component {
	return component{
		typ: "AppCard",
		props: map[string]any{
			"id":          getString(payload, "id"),
			"title":       getString(payload, "title"),
			"url":         getString(payload, "url"),
			"description": getString(payload, "description"),
			"avatar":      getString(payload, "avatar"),
			"thumbnail":   getString(payload, "thumbnail"),
			"author_name": getString(payload, "author_name"),
			"type":        getString(payload, "type"),
			"view_count":  getNumberDefault(payload, "view_count", 0),
			"like_count":  getNumberDefault(payload, "like_count", 0),
		},
	}
}

// handleUnknown falls back to a Markdown dump of whatever the payload
// carried.
func handleUnknown(payload map[string]any) component {
	content := getString(payload, "content")
	if content == "" {
		if encoded, err := json.Marshal(payload); err == nil {
			content = string(encoded)
		}
	}
	return component{typ: catalog.TypeMarkdown, props: map[string]any{"content": content}}
}

func getString(payload map[string]any, key string) string {
	value, _ := payload[key].(string)
	return value
}

func getStringDefault(payload map[string]any, key, fallback string) string {
	if value, ok := payload[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

func getBoolDefault(payload map[string]any, key string, fallback bool) bool {
	if value, ok := payload[key].(bool); ok {
		return value
	}
	return fallback
}

func getNumberDefault(payload map[string]any, key string, fallback float64) float64 {
	switch value := payload[key].(type) {
	case float64:
		return value
	case int:
		return float64(value)
	default:
		return fallback
	}
}

func getSlice(payload map[string]any, key string) []any {
	value, _ := payload[key].([]any)
	return value
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%g", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
