package plugin

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/mholzen/bootstrapgen/pkg/document"
	"github.com/mholzen/bootstrapgen/pkg/shape"
	"github.com/mholzen/bootstrapgen/pkg/tokens"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHost struct {
	mu           sync.Mutex
	selection    []*shape.Shape
	selectionErr error
	set          *tokens.Set
	tokensErr    error
	tokenCalls   int
	// block, when set, holds the first token request until it is closed
	block   chan struct{}
	blocked chan struct{}
}

func (h *fakeHost) Selection(context.Context) ([]*shape.Shape, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.selection, h.selectionErr
}

func (h *fakeHost) DesignTokens(context.Context) (*tokens.Set, error) {
	h.mu.Lock()
	h.tokenCalls++
	first := h.tokenCalls == 1
	h.mu.Unlock()
	if first && h.block != nil {
		close(h.blocked)
		<-h.block
	}
	return h.set, h.tokensErr
}

type recorder struct {
	mu       sync.Mutex
	messages []Message
	err      error
}

func (r *recorder) Send(_ context.Context, msg Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, msg)
	return nil
}

func (r *recorder) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var types []string
	for _, m := range r.messages {
		types = append(types, m.Type)
	}
	return types
}

func hiShape() *shape.Shape {
	hi := "Hi"
	return &shape.Shape{
		Type:       "text",
		FontSize:   50,
		FontWeight: shape.NewWeight(800),
		Align:      "center",
		Characters: &hi,
		Fills:      []shape.Fill{{FillColor: "#0d6efd"}},
	}
}

func TestHandleEvent_ReadyWithSelection(t *testing.T) {
	host := &fakeHost{selection: []*shape.Shape{hiShape()}}
	sender := &recorder{}
	p := New(host, sender, DefaultConfig())

	require.NoError(t, p.HandleEvent(context.Background(), Event{Type: EventReady}))

	require.Len(t, sender.messages, 1)
	assert.Equal(t, MessageHTML, sender.messages[0].Type)
	assert.Equal(t,
		"\n    &lt;div class=\"fw-bold fs-1 text-center text-primary\"&gt;<br/>&nbsp;&nbsp;Hi<br/>&lt;/div&gt;",
		sender.messages[0].Content)
}

func TestHandleEvent_PreviewWithoutSelectionSendsNothing(t *testing.T) {
	for _, ev := range []string{EventReady, EventSelectionChange} {
		t.Run(ev, func(t *testing.T) {
			sender := &recorder{}
			p := New(&fakeHost{}, sender, DefaultConfig())

			require.NoError(t, p.HandleEvent(context.Background(), Event{Type: ev}))
			assert.Empty(t, sender.messages)
		})
	}
}

func TestHandleEvent_SelectionChangeUsesPrimaryShape(t *testing.T) {
	second := &shape.Shape{Type: "ellipse"}
	host := &fakeHost{selection: []*shape.Shape{{Type: "svg-raw"}, second}}
	sender := &recorder{}
	p := New(host, sender, DefaultConfig())

	require.NoError(t, p.HandleEvent(context.Background(), Event{Type: EventSelectionChange}))

	require.Len(t, sender.messages, 1)
	assert.Equal(t, "\n    &lt;div class=\"\"&gt;&lt;/div&gt;", sender.messages[0].Content)
}

func TestHandleEvent_ThemeChange(t *testing.T) {
	sender := &recorder{}
	p := New(&fakeHost{}, sender, DefaultConfig())

	require.NoError(t, p.HandleEvent(context.Background(), Event{Type: EventThemeChange, Theme: "dark"}))

	assert.Equal(t, []Message{{Type: MessageTheme, Content: "dark"}}, sender.messages)
}

func TestHandleEvent_UnknownIsIgnored(t *testing.T) {
	sender := &recorder{}
	p := New(&fakeHost{}, sender, DefaultConfig())

	assert.NoError(t, p.HandleEvent(context.Background(), Event{Type: "resize"}))
	assert.Empty(t, sender.messages)
}

func TestHandleEvent_GenerateCode(t *testing.T) {
	host := &fakeHost{
		selection: []*shape.Shape{hiShape()},
		set:       &tokens.Set{Color: []tokens.Token{{Name: "Brand", Value: "#111111"}}},
	}
	sender := &recorder{}
	p := New(host, sender, DefaultConfig())

	require.NoError(t, p.HandleEvent(context.Background(), Event{Type: EventGenerateCode}))

	require.Equal(t, []string{MessageCode, MessageCodeOutput}, sender.types())
	code := sender.messages[0].Content
	assert.Equal(t, code, sender.messages[1].Content)
	assert.Contains(t, code, `<div class="fw-bold fs-1 text-center text-primary">Hi</div>`)
	assert.Contains(t, code, "  --pp-color-brand: #111111;\n")
}

func TestGenerateCode_WithoutLegacyOutput(t *testing.T) {
	sender := &recorder{}
	cfg := DefaultConfig()
	cfg.LegacyCodeOutput = false
	p := New(&fakeHost{}, sender, cfg)

	require.NoError(t, p.HandleEvent(context.Background(), Event{Type: EventGenerateCode}))

	assert.Equal(t, []string{MessageCode}, sender.types())
}

func TestGenerateFinalCode_FailuresDegrade(t *testing.T) {
	host := &fakeHost{
		selectionErr: errors.New("selection api gone"),
		tokensErr:    errors.New("tokens api gone"),
	}
	p := New(host, &recorder{}, DefaultConfig())

	code := p.GenerateFinalCode(context.Background())

	assert.Contains(t, code, document.Placeholder)
	assert.Contains(t, code, "<style>\n:root {\n}\n\n</style>")
}

func TestGenerateFinalCode_EmptySelection(t *testing.T) {
	p := New(&fakeHost{selection: []*shape.Shape{}}, &recorder{}, DefaultConfig())

	code := p.GenerateFinalCode(context.Background())

	assert.Contains(t, code, document.Placeholder)
	assert.Contains(t, code, ":root {\n}\n")
}

func TestHandleEvent_SendFailureIsReturned(t *testing.T) {
	sender := &recorder{err: errors.New("peer closed")}
	p := New(&fakeHost{}, sender, DefaultConfig())

	assert.ErrorContains(t, p.HandleEvent(context.Background(), Event{Type: EventThemeChange}), "peer closed")
}

func TestSendFinalCode_LatestRequestWins(t *testing.T) {
	host := &fakeHost{
		selection: []*shape.Shape{hiShape()},
		block:     make(chan struct{}),
		blocked:   make(chan struct{}),
	}
	sender := &recorder{}
	p := New(host, sender, DefaultConfig())
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, p.SendFinalCode(ctx))
	}()
	<-host.blocked

	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, p.SendFinalCode(ctx))
		}()
	}
	require.Eventually(t, func() bool { return p.generations.seq.Load() == 3 }, time.Second, time.Millisecond)

	close(host.block)
	wg.Wait()

	assert.Equal(t, []string{MessageCode, MessageCodeOutput}, sender.types())
	assert.Equal(t, 2, host.tokenCalls)
}

func TestMessageJSON(t *testing.T) {
	b, err := json.Marshal(Message{Type: MessageCodeOutput, Content: "<html>"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"code-output","code":"<html>"}`, string(b))

	b, err = json.Marshal(Message{Type: MessageHTML})
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"html","content":""}`, string(b))

	var m Message
	require.NoError(t, json.NewDecoder(strings.NewReader(`{"type":"code-output","code":"x"}`)).Decode(&m))
	assert.Equal(t, Message{Type: MessageCodeOutput, Content: "x"}, m)
}

func TestRequestID(t *testing.T) {
	assert.Equal(t, "", RequestID(context.Background()))
	assert.Equal(t, "01J", RequestID(WithRequestID(context.Background(), "01J")))
}
