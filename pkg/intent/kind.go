package intent

import "strings"

// Kind is the recognised intent class of a payload.
type Kind string

const (
	KindReply    Kind = "reply"
	KindCode     Kind = "code"
	KindForm     Kind = "form"
	KindConfirm  Kind = "confirm"
	KindSelect   Kind = "select"
	KindAlert    Kind = "alert"
	KindWarn     Kind = "warn"
	KindError    Kind = "error"
	KindSuccess  Kind = "success"
	KindData     Kind = "data"
	KindMedia    Kind = "media"
	KindProgress Kind = "progress"
	KindApp      Kind = "app"
	KindUnknown  Kind = "unknown"
)

// aliases maps accepted intent strings onto canonical kinds.
var aliases = map[string]Kind{
	"reply":    KindReply,
	"text":     KindReply,
	"message":  KindReply,
	"code":     KindCode,
	"form":     KindForm,
	"input":    KindForm,
	"confirm":  KindConfirm,
	"select":   KindSelect,
	"choose":   KindSelect,
	"alert":    KindAlert,
	"info":     KindAlert,
	"warn":     KindWarn,
	"warning":  KindWarn,
	"error":    KindError,
	"success":  KindSuccess,
	"data":     KindData,
	"media":    KindMedia,
	"progress": KindProgress,
	"app":      KindApp,
	"skill":    KindApp,
	"work":     KindApp,
	"ai_work":  KindApp,
}

// Parse classifies a payload: the explicit intent field wins, then the
// payload shape is inspected.
func Parse(payload map[string]any) Kind {
	if raw, ok := payload["intent"].(string); ok {
		if kind, ok := aliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
			return kind
		}
	}

	if content, ok := payload["content"].(string); ok {
		if strings.Contains(content, "```") || payload["language"] != nil {
			return KindCode
		}
		return KindReply
	}
	if _, ok := payload["fields"]; ok {
		return KindForm
	}
	if _, ok := payload["question"]; ok {
		if _, ok := payload["options"]; ok {
			return KindSelect
		}
	}
	if _, ok := payload["title"]; ok {
		if _, ok := payload["actions"]; ok {
			return KindConfirm
		}
	}
	if _, ok := payload["message"]; ok {
		switch payload["type"] {
		case "info", "warning", "error", "success":
			return KindAlert
		}
	}
	return KindUnknown
}

// intros holds the one-line introduction attached to the final document per
// intent kind.
var intros = map[Kind]string{
	KindReply:    "Here is the reply.",
	KindCode:     "Here is the code.",
	KindForm:     "Please fill in the form below.",
	KindConfirm:  "Please confirm the action below.",
	KindSelect:   "Please make a selection.",
	KindAlert:    "Heads up:",
	KindWarn:     "Warning:",
	KindError:    "Something went wrong:",
	KindSuccess:  "Done:",
	KindData:     "Here is the data.",
	KindMedia:    "Here is the media.",
	KindProgress: "Progress update:",
	KindApp:      "Here is the app.",
	KindUnknown:  "",
}

// Intro returns the introduction line for a kind; empty when none applies.
func Intro(kind Kind) string {
	return intros[kind]
}
