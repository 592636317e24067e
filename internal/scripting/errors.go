package scripting

import "errors"

var (
	// ErrSessionClosed is returned by every Session method after Close.
	ErrSessionClosed = errors.New("session closed")

	// ErrNotEditable indicates Edit on a model that cannot apply edits.
	ErrNotEditable = errors.New("model does not support edits")
)
