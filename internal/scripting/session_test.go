package scripting

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dshills/scriptlsp/internal/editor"
	"github.com/dshills/scriptlsp/internal/logging"
	"github.com/dshills/scriptlsp/internal/lsp"
	"github.com/dshills/scriptlsp/internal/regions"
)

type message struct {
	method string
	params gjson.Result
}

type fakeClient struct {
	mu        sync.Mutex
	notes     []message
	calls     []message
	responses map[string]string
	err       error
}

func newFakeClient() *fakeClient {
	return &fakeClient{responses: make(map[string]string)}
}

func (c *fakeClient) record(list *[]message, method string, params any) error {
	data, err := json.Marshal(params)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	*list = append(*list, message{method: method, params: gjson.ParseBytes(data)})
	return nil
}

func (c *fakeClient) Notify(_ context.Context, method string, params any) error {
	if c.err != nil {
		return c.err
	}
	return c.record(&c.notes, method, params)
}

func (c *fakeClient) Call(_ context.Context, method string, params, result any) error {
	if err := c.record(&c.calls, method, params); err != nil {
		return err
	}
	if c.err != nil {
		return c.err
	}
	resp, ok := c.responses[method]
	if !ok {
		resp = "null"
	}
	return json.Unmarshal([]byte(resp), result)
}

func (c *fakeClient) lastNote() message {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.notes[len(c.notes)-1]
}

const script = "import pandas as pd\npd.rea"

func openSession(t *testing.T, client Client, opts ...SessionOption) (*Session, *editor.TextModel) {
	t.Helper()
	model := editor.NewTextModel("python", script, editor.WithURI("inmemory://model/1"))
	opts = append([]SessionOption{WithLogger(logging.Discard())}, opts...)
	s, err := Open(context.Background(), client, model, opts...)
	require.NoError(t, err)
	return s, model
}

func TestOpen(t *testing.T) {
	client := newFakeClient()
	openSession(t, client)

	require.Len(t, client.notes, 1)
	note := client.notes[0]
	assert.Equal(t, lsp.MethodDidOpen, note.method)
	assert.Equal(t, "inmemory://model/1", note.params.Get("textDocument.uri").String())
	assert.Equal(t, "python", note.params.Get("textDocument.languageId").String())
	assert.Equal(t, int64(1), note.params.Get("textDocument.version").Int())
	assert.Equal(t, script, note.params.Get("textDocument.text").String())
}

func TestOpen_NotifyError(t *testing.T) {
	client := newFakeClient()
	client.err = errors.New("broken pipe")

	_, err := Open(context.Background(), client, editor.NewTextModel("python", ""), WithLogger(logging.Discard()))
	assert.ErrorContains(t, err, lsp.MethodDidOpen)
	assert.ErrorIs(t, err, client.err)
}

func TestSession_Complete(t *testing.T) {
	client := newFakeClient()
	client.responses[lsp.MethodCompletion] = `{
		"isIncomplete": true,
		"items": [
			{"label": "read_csv", "kind": 3, "detail": "def read_csv(path)", "documentation": {"kind": "markdown", "value": "Read a **CSV**."}},
			{"label": "read_json", "kind": 3, "insertText": "read_json($1)", "insertTextFormat": 2}
		]
	}`
	s, _ := openSession(t, client)

	pos := editor.Position{LineNumber: 2, Column: 7}
	result, err := s.Complete(context.Background(), pos, editor.CompletionContext{
		TriggerKind: editor.CompletionTriggerKindInvoke,
	})
	require.NoError(t, err)

	require.Len(t, client.calls, 1)
	call := client.calls[0]
	assert.Equal(t, lsp.MethodCompletion, call.method)
	assert.Equal(t, int64(1), call.params.Get("position.line").Int())
	assert.Equal(t, int64(6), call.params.Get("position.character").Int())
	assert.Equal(t, int64(1), call.params.Get("context.triggerKind").Int())

	assert.True(t, result.Incomplete)
	require.Len(t, result.Suggestions, 2)

	first := result.Suggestions[0]
	assert.Equal(t, "read_csv", first.Label)
	assert.Equal(t, editor.CompletionItemKindFunction, first.Kind)
	assert.Equal(t, "read_csv", first.InsertText)
	require.NotNil(t, first.Documentation)
	assert.Equal(t, editor.DocumentationKindMarkdown, first.Documentation.Kind)
	assert.Equal(t, editor.Range{StartLineNumber: 2, StartColumn: 4, EndLineNumber: 2, EndColumn: 7}, first.Range)

	second := result.Suggestions[1]
	assert.Equal(t, "read_json($1)", second.InsertText)
	assert.True(t, second.InsertTextRules.Has(editor.InsertTextRuleInsertAsSnippet))
	assert.Equal(t, first.Range, second.Range)
}

func TestSession_Complete_Errors(t *testing.T) {
	t.Run("invalid position", func(t *testing.T) {
		client := newFakeClient()
		s, _ := openSession(t, client)

		_, err := s.Complete(context.Background(), editor.Position{LineNumber: -1, Column: 1}, editor.CompletionContext{})
		assert.ErrorIs(t, err, lsp.ErrInvalidCoordinate)
		assert.Empty(t, client.calls)
	})

	t.Run("unknown trigger kind", func(t *testing.T) {
		client := newFakeClient()
		s, _ := openSession(t, client)

		_, err := s.Complete(context.Background(), editor.Position{LineNumber: 1, Column: 1}, editor.CompletionContext{TriggerKind: 42})
		assert.ErrorIs(t, err, lsp.ErrUnreachableEnumValue)
	})

	t.Run("transport error", func(t *testing.T) {
		client := newFakeClient()
		s, _ := openSession(t, client)
		client.err = context.DeadlineExceeded

		_, err := s.Complete(context.Background(), editor.Position{LineNumber: 1, Column: 1}, editor.CompletionContext{})
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.ErrorContains(t, err, lsp.MethodCompletion)
	})

	t.Run("malformed response", func(t *testing.T) {
		client := newFakeClient()
		client.responses[lsp.MethodCompletion] = `"nope"`
		s, _ := openSession(t, client)

		_, err := s.Complete(context.Background(), editor.Position{LineNumber: 1, Column: 1}, editor.CompletionContext{})
		assert.ErrorIs(t, err, lsp.ErrInvalidResponse)
	})
}

func TestSession_SignatureHelp(t *testing.T) {
	client := newFakeClient()
	client.responses[lsp.MethodSignatureHelp] = `{
		"signatures": [{"label": "read_csv(path, sep)", "parameters": [{"label": "path"}, {"label": "sep"}]}],
		"activeSignature": 0,
		"activeParameter": 1
	}`
	s, _ := openSession(t, client)

	result, err := s.SignatureHelp(context.Background(), editor.Position{LineNumber: 2, Column: 7}, editor.SignatureHelpContext{
		TriggerKind:      editor.SignatureHelpTriggerKindTriggerCharacter,
		TriggerCharacter: "(",
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, 1, result.ActiveParameter)
	require.Len(t, result.Signatures, 1)
	assert.Equal(t, "read_csv(path, sep)", result.Signatures[0].Label)

	call := client.calls[0]
	assert.Equal(t, lsp.MethodSignatureHelp, call.method)
	assert.Equal(t, int64(2), call.params.Get("context.triggerKind").Int())
	assert.Equal(t, "(", call.params.Get("context.triggerCharacter").String())
}

func TestSession_SignatureHelp_Null(t *testing.T) {
	s, _ := openSession(t, newFakeClient())

	result, err := s.SignatureHelp(context.Background(), editor.Position{LineNumber: 1, Column: 1}, editor.SignatureHelpContext{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestSession_DidChange(t *testing.T) {
	client := newFakeClient()
	s, model := openSession(t, client)

	event, err := model.ApplyEdits([]editor.ContentChange{{
		Range: editor.Range{StartLineNumber: 2, StartColumn: 7, EndLineNumber: 2, EndColumn: 7},
		Text:  "d_csv()",
	}})
	require.NoError(t, err)
	require.NoError(t, s.DidChange(context.Background(), event))

	note := client.lastNote()
	assert.Equal(t, lsp.MethodDidChange, note.method)
	assert.Equal(t, int64(2), note.params.Get("textDocument.version").Int())
	assert.Equal(t, "d_csv()", note.params.Get("contentChanges.0.text").String())
	assert.Equal(t, int64(6), note.params.Get("contentChanges.0.range.start.character").Int())
}

func TestSession_Edit(t *testing.T) {
	tpl := &regions.Template{Sections: []regions.Section{
		{Editable: false, Content: "import pandas as pd\n"},
		{Editable: true, Content: "df = None"},
		{Editable: false, Content: "\nprint(df)"},
	}}
	model, ranges := OpenTemplate(tpl, "python")

	client := newFakeClient()
	s, err := Open(context.Background(), client, model, WithRegions(ranges), WithLogger(logging.Discard()))
	require.NoError(t, err)

	event, err := s.Edit(context.Background(), []editor.ContentChange{{
		Range: editor.Range{StartLineNumber: 2, StartColumn: 6, EndLineNumber: 2, EndColumn: 10},
		Text:  "pd.read_csv('a.csv')",
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, event.VersionID)
	assert.Equal(t, "import pandas as pd\ndf = pd.read_csv('a.csv')\nprint(df)", model.Value())
	assert.Equal(t, lsp.MethodDidChange, client.lastNote().method)
	assert.Equal(t, 26, s.Ranges()[1].EndColumn)

	_, err = s.Edit(context.Background(), []editor.ContentChange{{
		Range: editor.Range{StartLineNumber: 1, StartColumn: 1, EndLineNumber: 1, EndColumn: 7},
		Text:  "",
	}})
	assert.ErrorIs(t, err, regions.ErrReadOnly)
	assert.Equal(t, 2, model.VersionID(), "rejected edits leave the model untouched")
	assert.Len(t, client.notes, 2)
}

func TestSession_DidChange_Regions(t *testing.T) {
	tpl := &regions.Template{Sections: []regions.Section{
		{Editable: false, Content: "HEAD\n"},
		{Editable: true, Content: "body"},
		{Editable: false, Content: "\nTAIL"},
	}}
	model, ranges := OpenTemplate(tpl, "python")

	client := newFakeClient()
	s, err := Open(context.Background(), client, model, WithRegions(ranges), WithLogger(logging.Discard()))
	require.NoError(t, err)

	event, err := model.ApplyEdits([]editor.ContentChange{{
		Range: editor.Range{StartLineNumber: 2, StartColumn: 5, EndLineNumber: 2, EndColumn: 5},
		Text:  "\nx\ny",
	}})
	require.NoError(t, err)
	require.Equal(t, "HEAD\nbody\nx\ny\nTAIL", model.Value())
	require.NoError(t, s.DidChange(context.Background(), event))
	assert.Len(t, client.notes, 2)

	got := s.Ranges()
	require.Len(t, got, 3)
	full := model.FullRange()
	assert.Equal(t, full.Start(), got[0].Range().Start())
	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1].Range().End(), got[i].Range().Start(), "range %d", i)
	}
	assert.Equal(t, full.End(), got[len(got)-1].Range().End())
	assert.Equal(t, regions.ConstrainedRange{StartLineNumber: 2, StartColumn: 1, EndLineNumber: 4, EndColumn: 2}, got[1])
	assert.Equal(t, "body\nx\ny", model.ValueInRange(got[1].Range()))
	assert.Equal(t, "\nTAIL", model.ValueInRange(got[2].Range()))

	_, err = s.Edit(context.Background(), []editor.ContentChange{{
		Range: editor.Range{StartLineNumber: 4, StartColumn: 1, EndLineNumber: 4, EndColumn: 2},
		Text:  "z",
	}})
	require.NoError(t, err)
	assert.Equal(t, "HEAD\nbody\nx\nz\nTAIL", model.Value())

	_, err = s.Edit(context.Background(), []editor.ContentChange{{
		Range: editor.Range{StartLineNumber: 5, StartColumn: 1, EndLineNumber: 5, EndColumn: 3},
		Text:  "",
	}})
	assert.ErrorIs(t, err, regions.ErrReadOnly)
	assert.Equal(t, "HEAD\nbody\nx\nz\nTAIL", model.Value())
}

func TestSession_DidChange_ReadOnly(t *testing.T) {
	tpl := &regions.Template{Sections: []regions.Section{
		{Editable: false, Content: "HEAD\n"},
		{Editable: true, Content: "body"},
	}}
	model, ranges := OpenTemplate(tpl, "python")

	client := newFakeClient()
	s, err := Open(context.Background(), client, model, WithRegions(ranges), WithLogger(logging.Discard()))
	require.NoError(t, err)

	err = s.DidChange(context.Background(), editor.ContentChangedEvent{
		VersionID: 2,
		Changes: []editor.ContentChange{{
			Range: editor.Range{StartLineNumber: 1, StartColumn: 1, EndLineNumber: 1, EndColumn: 3},
			Text:  "",
		}},
	})
	assert.ErrorIs(t, err, regions.ErrReadOnly)
	assert.Len(t, client.notes, 1, "rejected changes are not forwarded")
	assert.Equal(t, ranges, s.Ranges())
}

func TestSession_EditAfterClose(t *testing.T) {
	client := newFakeClient()
	s, model := openSession(t, client)
	require.NoError(t, s.Close(context.Background()))

	_, err := s.Edit(context.Background(), []editor.ContentChange{{
		Range: editor.Range{StartLineNumber: 1, StartColumn: 1, EndLineNumber: 1, EndColumn: 1},
		Text:  "x",
	}})
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.Equal(t, 1, model.VersionID())
	assert.Equal(t, lsp.MethodDidClose, client.lastNote().method)
}

func TestSession_Edit_NotEditable(t *testing.T) {
	client := newFakeClient()
	model := editor.NewTextModel("python", "x")
	s, err := Open(context.Background(), client, readOnlyModel{model}, WithLogger(logging.Discard()))
	require.NoError(t, err)

	_, err = s.Edit(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotEditable)
}

type readOnlyModel struct {
	editor.Model
}

func TestSession_Close(t *testing.T) {
	client := newFakeClient()
	s, _ := openSession(t, client)

	require.NoError(t, s.Close(context.Background()))
	require.NoError(t, s.Close(context.Background()))

	assert.Len(t, client.notes, 2)
	note := client.lastNote()
	assert.Equal(t, lsp.MethodDidClose, note.method)
	assert.Equal(t, "inmemory://model/1", note.params.Get("textDocument.uri").String())

	_, err := s.Complete(context.Background(), editor.Position{LineNumber: 1, Column: 1}, editor.CompletionContext{})
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.ErrorIs(t, s.DidChange(context.Background(), editor.ContentChangedEvent{}), ErrSessionClosed)
}

func TestOpenTemplate(t *testing.T) {
	tpl := &regions.Template{Sections: []regions.Section{
		{Content: "x = "},
		{Editable: true, Content: "1"},
	}}

	model, ranges := OpenTemplate(tpl, "r", editor.WithScheme("knime"))
	assert.Equal(t, "r", model.LanguageID())
	assert.Equal(t, "x = 1", model.Value())
	assert.Len(t, ranges, 2)
	assert.Contains(t, model.URI(), "knime://model/")

	tpl.LanguageID = "python"
	model, _ = OpenTemplate(tpl, "r")
	assert.Equal(t, "python", model.LanguageID())
}
