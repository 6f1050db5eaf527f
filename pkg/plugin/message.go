package plugin

import "encoding/json"

// Inbound event types.
const (
	EventReady           = "ready"
	EventGenerateCode    = "generate-code"
	EventSelectionChange = "selectionchange"
	EventThemeChange     = "themechange"
)

// Outbound message types.
const (
	MessageHTML       = "html"
	MessageCode       = "code"
	MessageCodeOutput = "code-output"
	MessageTheme      = "theme"
)

// Event is a notification from the host or from the UI peer.
type Event struct {
	Type  string `json:"type"`
	Theme string `json:"theme,omitempty"`
}

// Message is sent to the UI peer. The legacy code-output message carries its
// payload under "code"; every other type uses "content".
type Message struct {
	Type    string
	Content string
}

func (m Message) MarshalJSON() ([]byte, error) {
	if m.Type == MessageCodeOutput {
		return json.Marshal(struct {
			Type string `json:"type"`
			Code string `json:"code"`
		}{m.Type, m.Content})
	}
	return json.Marshal(struct {
		Type    string `json:"type"`
		Content string `json:"content"`
	}{m.Type, m.Content})
}

func (m *Message) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type    string  `json:"type"`
		Content *string `json:"content"`
		Code    *string `json:"code"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.Type = raw.Type
	switch {
	case raw.Content != nil:
		m.Content = *raw.Content
	case raw.Code != nil:
		m.Content = *raw.Code
	default:
		m.Content = ""
	}
	return nil
}
