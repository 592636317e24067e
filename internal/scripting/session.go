package scripting

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dshills/scriptlsp/internal/editor"
	"github.com/dshills/scriptlsp/internal/logging"
	"github.com/dshills/scriptlsp/internal/lsp"
	"github.com/dshills/scriptlsp/internal/regions"
)

// DefaultTimeout bounds each request when no other timeout is configured.
const DefaultTimeout = 5 * time.Second

// editableModel is a Model that can apply edits, such as *editor.TextModel.
type editableModel interface {
	editor.Model
	ApplyEdits(changes []editor.ContentChange) (editor.ContentChangedEvent, error)
}

// Session is one open document on a language server.
type Session struct {
	mu      sync.Mutex
	client  Client
	model   editor.Model
	ranges  []regions.ConstrainedRange
	logger  *slog.Logger
	timeout time.Duration
	closed  bool
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithTimeout sets the per-request timeout. Zero disables it.
func WithTimeout(d time.Duration) SessionOption {
	return func(s *Session) {
		s.timeout = d
	}
}

// WithRegions restricts Edit to the editable ranges given.
func WithRegions(ranges []regions.ConstrainedRange) SessionOption {
	return func(s *Session) {
		s.ranges = ranges
	}
}

// Open sends textDocument/didOpen for model and returns the session.
func Open(ctx context.Context, client Client, model editor.Model, opts ...SessionOption) (*Session, error) {
	s := &Session{
		client:  client,
		model:   model,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.Logger()
	}
	s.logger = s.logger.With("uri", model.URI())

	params := lsp.BuildDidOpenParams(model)
	if err := client.Notify(ctx, lsp.MethodDidOpen, params); err != nil {
		return nil, fmt.Errorf("%s: %w", lsp.MethodDidOpen, err)
	}

	s.logger.Debug("document opened", "languageId", params.TextDocument.LanguageID, "version", params.TextDocument.Version)
	return s, nil
}

// Model returns the session document.
func (s *Session) Model() editor.Model {
	return s.model
}

// Ranges returns the constrained ranges the session enforces, if any.
func (s *Session) Ranges() []regions.ConstrainedRange {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ranges
}

// DidChange forwards a content change event that was already applied to
// the model. When the session has constrained ranges they follow the
// change, and a change outside every editable range is rejected with
// regions.ErrReadOnly before anything is sent.
func (s *Session) DidChange(ctx context.Context, event editor.ContentChangedEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}

	ranges, err := s.trackChanges(event.Changes)
	if err != nil {
		return err
	}
	s.ranges = ranges
	return s.notifyChange(ctx, event)
}

// trackChanges returns the constrained ranges after changes, applied in
// order. s.mu must be held.
func (s *Session) trackChanges(changes []editor.ContentChange) ([]regions.ConstrainedRange, error) {
	ranges := s.ranges
	if ranges == nil {
		return nil, nil
	}
	for _, change := range changes {
		var err error
		if ranges, err = regions.ApplyEdit(ranges, change); err != nil {
			return nil, err
		}
	}
	return ranges, nil
}

func (s *Session) notifyChange(ctx context.Context, event editor.ContentChangedEvent) error {
	params, err := lsp.BuildDidChangeParams(s.model, event)
	if err != nil {
		return fmt.Errorf("%s: %w", lsp.MethodDidChange, err)
	}
	if err := s.client.Notify(ctx, lsp.MethodDidChange, params); err != nil {
		return fmt.Errorf("%s: %w", lsp.MethodDidChange, err)
	}

	s.logger.Debug("document changed", "version", event.VersionID, "changes", len(event.Changes))
	return nil
}

// Edit applies changes to the model and forwards them. When the session
// has constrained ranges, every change must lie inside an editable one and
// the ranges follow the edit.
func (s *Session) Edit(ctx context.Context, changes []editor.ContentChange) (editor.ContentChangedEvent, error) {
	if err := s.checkOpen(); err != nil {
		return editor.ContentChangedEvent{}, err
	}

	model, ok := s.model.(editableModel)
	if !ok {
		return editor.ContentChangedEvent{}, ErrNotEditable
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return editor.ContentChangedEvent{}, ErrSessionClosed
	}

	ranges, err := s.trackChanges(changes)
	if err != nil {
		return editor.ContentChangedEvent{}, err
	}

	event, err := model.ApplyEdits(changes)
	if err != nil {
		return editor.ContentChangedEvent{}, err
	}
	s.ranges = ranges
	if len(event.Changes) == 0 {
		return event, nil
	}
	return event, s.notifyChange(ctx, event)
}

// Complete requests completions at pos and maps them to editor suggestions.
func (s *Session) Complete(ctx context.Context, pos editor.Position, cctx editor.CompletionContext) (editor.CompletionResult, error) {
	if err := s.checkOpen(); err != nil {
		return editor.CompletionResult{}, err
	}

	params, err := lsp.BuildCompletionParams(s.model, pos, cctx)
	if err != nil {
		return editor.CompletionResult{}, fmt.Errorf("%s: %w", lsp.MethodCompletion, err)
	}

	var raw json.RawMessage
	if err := s.call(ctx, lsp.MethodCompletion, params, &raw); err != nil {
		return editor.CompletionResult{}, err
	}

	result, err := lsp.MapCompletionResult(raw, s.model, pos)
	if err != nil {
		return editor.CompletionResult{}, fmt.Errorf("%s: %w", lsp.MethodCompletion, err)
	}

	s.logger.Debug("completion", "position", pos, "suggestions", len(result.Suggestions), "incomplete", result.Incomplete)
	return result, nil
}

// SignatureHelp requests signature help at pos. A nil result means the
// server has nothing to show.
func (s *Session) SignatureHelp(ctx context.Context, pos editor.Position, sctx editor.SignatureHelpContext) (*editor.SignatureHelpResult, error) {
	if err := s.checkOpen(); err != nil {
		return nil, err
	}

	params, err := lsp.BuildSignatureHelpParams(s.model, pos, sctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", lsp.MethodSignatureHelp, err)
	}

	var raw json.RawMessage
	if err := s.call(ctx, lsp.MethodSignatureHelp, params, &raw); err != nil {
		return nil, err
	}

	result, err := lsp.MapSignatureHelpResult(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", lsp.MethodSignatureHelp, err)
	}

	s.logger.Debug("signature help", "position", pos, "found", result != nil)
	return result, nil
}

// Close sends textDocument/didClose. Closing twice is a no-op. Once Close
// has marked the session closed no further didChange is sent.
func (s *Session) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	if err := s.client.Notify(ctx, lsp.MethodDidClose, lsp.BuildDidCloseParams(s.model)); err != nil {
		return fmt.Errorf("%s: %w", lsp.MethodDidClose, err)
	}

	s.logger.Debug("document closed")
	return nil
}

func (s *Session) checkOpen() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	return nil
}

func (s *Session) call(ctx context.Context, method string, params, result any) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	err := s.client.Call(ctx, method, params, result)
	if err != nil {
		s.logger.Warn("request failed", "method", method, "error", err)
		return fmt.Errorf("%s: %w", method, err)
	}

	s.logger.Debug("request", "method", method, "elapsed", time.Since(start))
	return nil
}
