package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPICall(t *testing.T) {
	a := APICall("/api/items", "")
	assert.Equal(t, KindAPICall, a.Type)
	require.NotNil(t, a.API)
	assert.Equal(t, "/api/items", a.API.Endpoint)
	assert.Equal(t, "POST", a.API.Method, "method defaults to POST")
	assert.Equal(t, "auto", a.API.BodyMapping)

	put := APICall("/api/items/1", "PUT")
	assert.Equal(t, "PUT", put.API.Method)
}

func TestNavigate(t *testing.T) {
	a := Navigate("/home")
	assert.Equal(t, KindNavigate, a.Type)
	assert.Equal(t, "/home", a.URL)
	assert.Equal(t, "_self", a.Target, "target defaults to _self")

	blank := Navigate("https://example.com", WithTarget("_blank"))
	assert.Equal(t, "_blank", blank.Target)
}

func TestEmitEvent(t *testing.T) {
	a := EmitEvent("item:selected", map[string]any{"id": "42"})
	assert.Equal(t, KindEmitEvent, a.Type)
	assert.Equal(t, "item:selected", a.Event)
	assert.Equal(t, "42", a.Payload["id"])
}

func TestModalActions(t *testing.T) {
	open := OpenModal("settings")
	assert.Equal(t, KindOpenModal, open.Type)
	assert.Equal(t, "settings", open.ModalID)

	closed := CloseModal("settings")
	assert.Equal(t, KindCloseModal, closed.Type)

	reset := Reset()
	assert.Equal(t, KindReset, reset.Type)
}

func TestCallbackOptions(t *testing.T) {
	a := APICall("/api/save", "POST",
		WithSuccessText("Saved"),
		WithSuccessRedirect("/done"),
	)
	require.NotNil(t, a.Callbacks)
	require.NotNil(t, a.Callbacks.Feedback)
	assert.Equal(t, "Saved", a.Callbacks.Feedback.SuccessText)
	require.Len(t, a.Callbacks.OnSuccess, 1)
	assert.Equal(t, KindNavigate, a.Callbacks.OnSuccess[0].Type)
	assert.Equal(t, "/done", a.Callbacks.OnSuccess[0].URL)
}

func TestDeleteWithConfirm(t *testing.T) {
	a := DeleteWithConfirm("/api/items/9", "/items", "")
	assert.Equal(t, KindAPICall, a.Type)
	assert.Equal(t, "DELETE", a.API.Method)
	require.NotNil(t, a.Confirm)
	assert.Equal(t, "danger", a.Confirm.Type)
	assert.Contains(t, a.Confirm.Message, "cannot be undone")
	require.NotNil(t, a.Callbacks)
	require.Len(t, a.Callbacks.OnSuccess, 1)
	assert.Equal(t, "/items", a.Callbacks.OnSuccess[0].URL)
	assert.Equal(t, "Deleted successfully", a.Callbacks.Feedback.SuccessText)
}

func TestSchemaJSONOmitsIrrelevantFields(t *testing.T) {
	data, err := json.Marshal(Navigate("/home"))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "navigate", decoded["type"])
	assert.NotContains(t, decoded, "api")
	assert.NotContains(t, decoded, "event")
	assert.NotContains(t, decoded, "modalId")
}
