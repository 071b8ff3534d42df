// Package action defines the user-interaction action schema carried inside
// element props: API calls, navigation, events, modal control, and form
// reset. The validation engine treats action values as opaque payloads; this
// package exists so mappers and callers can construct well-formed ones.
package action

// Kind enumerates the six action types.
type Kind string

const (
	KindAPICall    Kind = "api_call"
	KindNavigate   Kind = "navigate"
	KindEmitEvent  Kind = "emit_event"
	KindOpenModal  Kind = "open_modal"
	KindCloseModal Kind = "close_modal"
	KindReset      Kind = "reset"
)

// API configures an api_call action.
type API struct {
	Endpoint    string `json:"endpoint"`
	Method      string `json:"method"`
	BodyMapping any    `json:"bodyMapping,omitempty"`
}

// Confirm configures an optional confirmation dialog shown before the
// action runs.
type Confirm struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"` // info | warning | danger
}

// Feedback configures user-visible completion messages.
type Feedback struct {
	SuccessText string `json:"successText,omitempty"`
	ErrorText   string `json:"errorText,omitempty"`
}

// Callbacks chains follow-up actions and feedback to an action's outcome.
type Callbacks struct {
	OnSuccess []Schema  `json:"onSuccess,omitempty"`
	OnError   []Schema  `json:"onError,omitempty"`
	Feedback  *Feedback `json:"feedback,omitempty"`
}

// Schema is one action value as embedded in props. Only the fields relevant
// to the Kind are populated.
type Schema struct {
	Type Kind `json:"type"`

	// api_call
	API *API `json:"api,omitempty"`

	// navigate
	URL    string `json:"url,omitempty"`
	Target string `json:"target,omitempty"` // _self | _blank

	// emit_event
	Event   string         `json:"event,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`

	// open_modal / close_modal
	ModalID string `json:"modalId,omitempty"`

	Confirm   *Confirm   `json:"confirm,omitempty"`
	Callbacks *Callbacks `json:"callbacks,omitempty"`
}

// APICall builds an api_call action with optional success redirect and
// feedback text.
func APICall(endpoint, method string, opts ...Option) Schema {
	if method == "" {
		method = "POST"
	}
	schema := Schema{
		Type: KindAPICall,
		API:  &API{Endpoint: endpoint, Method: method, BodyMapping: "auto"},
	}
	for _, opt := range opts {
		opt(&schema)
	}
	return schema
}

// Navigate builds a navigation action. Target defaults to "_self".
func Navigate(url string, opts ...Option) Schema {
	schema := Schema{Type: KindNavigate, URL: url, Target: "_self"}
	for _, opt := range opts {
		opt(&schema)
	}
	return schema
}

// EmitEvent builds an event emission action.
func EmitEvent(event string, payload map[string]any) Schema {
	return Schema{Type: KindEmitEvent, Event: event, Payload: payload}
}

// OpenModal builds an open_modal action.
func OpenModal(modalID string) Schema {
	return Schema{Type: KindOpenModal, ModalID: modalID}
}

// CloseModal builds a close_modal action.
func CloseModal(modalID string) Schema {
	return Schema{Type: KindCloseModal, ModalID: modalID}
}

// Reset builds a form reset action.
func Reset() Schema {
	return Schema{Type: KindReset}
}

// Option mutates an action under construction.
type Option func(*Schema)

// WithTarget sets the navigation target.
func WithTarget(target string) Option {
	return func(s *Schema) { s.Target = target }
}

// WithConfirm attaches a confirmation dialog.
func WithConfirm(title, message, confirmType string) Option {
	return func(s *Schema) {
		s.Confirm = &Confirm{Title: title, Message: message, Type: confirmType}
	}
}

// WithSuccessRedirect chains a navigate action onto success.
func WithSuccessRedirect(url string) Option {
	return func(s *Schema) {
		if s.Callbacks == nil {
			s.Callbacks = &Callbacks{}
		}
		s.Callbacks.OnSuccess = append(s.Callbacks.OnSuccess, Navigate(url))
	}
}

// WithSuccessText attaches success feedback text.
func WithSuccessText(text string) Option {
	return func(s *Schema) {
		if s.Callbacks == nil {
			s.Callbacks = &Callbacks{}
		}
		if s.Callbacks.Feedback == nil {
			s.Callbacks.Feedback = &Feedback{}
		}
		s.Callbacks.Feedback.SuccessText = text
	}
}

// DeleteWithConfirm builds the common destructive-delete action: DELETE call
// guarded by a danger confirmation, optionally redirecting on success.
func DeleteWithConfirm(endpoint, redirect, message string) Schema {
	if message == "" {
		message = "Are you sure you want to delete? This action cannot be undone."
	}
	opts := []Option{
		WithConfirm("Confirm Delete", message, "danger"),
		WithSuccessText("Deleted successfully"),
	}
	if redirect != "" {
		opts = append(opts, WithSuccessRedirect(redirect))
	}
	return APICall(endpoint, "DELETE", opts...)
}
