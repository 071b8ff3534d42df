// Command build-intent interactively assembles an intent payload and prints
// it as JSON, ready to pipe into `uitree format`. Handy for exercising the
// formatter without hand-writing payloads.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
)

func main() {
	payload, err := buildPayload()
	if err != nil {
		fmt.Fprintf(os.Stderr, "build-intent: %v\n", err)
		os.Exit(1)
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "build-intent: encode payload: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(encoded))
}

func buildPayload() (map[string]any, error) {
	var kind string
	if err := survey.AskOne(&survey.Select{
		Message: "Intent kind:",
		Options: []string{"reply", "code", "form", "confirm", "select", "alert", "warn", "error", "success", "progress", "media", "app"},
		Default: "reply",
	}, &kind); err != nil {
		return nil, err
	}

	payload := map[string]any{"intent": kind}

	switch kind {
	case "reply":
		return payload, askText(payload, "content", "Reply content (markdown):")
	case "code":
		if err := askText(payload, "code", "Code:"); err != nil {
			return nil, err
		}
		return payload, askInput(payload, "language", "Language:", "text")
	case "form":
		return buildFormPayload(payload)
	case "confirm":
		if err := askInput(payload, "title", "Title:", "Confirm"); err != nil {
			return nil, err
		}
		return payload, askText(payload, "description", "Description:")
	case "select":
		return buildSelectPayload(payload)
	case "alert", "warn", "error", "success":
		return payload, askText(payload, "message", "Message:")
	case "progress":
		var value int
		if err := survey.AskOne(&survey.Input{Message: "Value (0-100):", Default: "0"}, &value); err != nil {
			return nil, err
		}
		payload["value"] = value
		return payload, askInput(payload, "label", "Label:", "")
	case "media":
		var mediaType string
		if err := survey.AskOne(&survey.Select{
			Message: "Media type:",
			Options: []string{"image", "video", "audio"},
			Default: "image",
		}, &mediaType); err != nil {
			return nil, err
		}
		payload["media_type"] = mediaType
		return payload, askInput(payload, "src", "Source URL:", "")
	case "app":
		if err := askInput(payload, "id", "App id:", ""); err != nil {
			return nil, err
		}
		return payload, askInput(payload, "title", "App title:", "")
	default:
		return payload, nil
	}
}

func buildFormPayload(payload map[string]any) (map[string]any, error) {
	if err := askInput(payload, "title", "Form title:", ""); err != nil {
		return nil, err
	}

	var fields []any
	for {
		more := false
		if err := survey.AskOne(&survey.Confirm{Message: "Add a field?", Default: len(fields) == 0}, &more); err != nil {
			return nil, err
		}
		if !more {
			break
		}

		questions := []*survey.Question{
			{Name: "name", Prompt: &survey.Input{Message: "Field name:"}, Validate: survey.Required},
			{Name: "type", Prompt: &survey.Select{
				Message: "Field type:",
				Options: []string{"text", "email", "password", "number", "textarea", "select", "date", "checkbox", "radio", "switch", "slider", "file"},
				Default: "text",
			}},
			{Name: "label", Prompt: &survey.Input{Message: "Label:"}},
			{Name: "required", Prompt: &survey.Confirm{Message: "Required?"}},
		}
		answers := struct {
			Name     string
			Type     string
			Label    string
			Required bool
		}{}
		if err := survey.Ask(questions, &answers); err != nil {
			return nil, err
		}

		field := map[string]any{"name": answers.Name, "type": answers.Type}
		if answers.Label != "" {
			field["label"] = answers.Label
		}
		if answers.Required {
			field["required"] = true
		}
		fields = append(fields, field)
	}
	payload["fields"] = fields
	return payload, nil
}

func buildSelectPayload(payload map[string]any) (map[string]any, error) {
	if err := askInput(payload, "question", "Question:", "Please select"); err != nil {
		return nil, err
	}

	var options []any
	for {
		var value string
		if err := survey.AskOne(&survey.Input{Message: "Option (empty to finish):"}, &value); err != nil {
			return nil, err
		}
		if value == "" {
			break
		}
		options = append(options, map[string]any{"value": value, "label": value})
	}
	payload["options"] = options

	var multiple bool
	if err := survey.AskOne(&survey.Confirm{Message: "Allow multiple selections?"}, &multiple); err != nil {
		return nil, err
	}
	if multiple {
		payload["multiple"] = true
	}
	return payload, nil
}

func askText(payload map[string]any, key, message string) error {
	var value string
	if err := survey.AskOne(&survey.Multiline{Message: message}, &value); err != nil {
		return err
	}
	payload[key] = value
	return nil
}

func askInput(payload map[string]any, key, message, defaultValue string) error {
	var value string
	if err := survey.AskOne(&survey.Input{Message: message, Default: defaultValue}, &value); err != nil {
		return err
	}
	if value != "" {
		payload[key] = value
	}
	return nil
}
