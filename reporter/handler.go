// Copyright 2026 The Tau Authors
// SPDX-License-Identifier: Apache-2.0

package reporter

// Reporter receives errors and warnings as they are discovered. Returning a
// non-nil error from HandleError marks the Handler aborted: later errors are
// still counted but no longer passed to the Reporter. Returning nil keeps
// every later error flowing to the Reporter. The grammar engine and the
// emitter keep going after a reported error either way.
type Reporter interface {
	HandleError(err ErrorWithPos) error
	HandleWarning(err ErrorWithPos)
}

// NewReporter builds a Reporter from plain functions, for callers that don't
// want to implement the interface directly.
func NewReporter(handleError func(ErrorWithPos) error, handleWarning func(ErrorWithPos)) Reporter {
	return funcReporter{handleError: handleError, handleWarning: handleWarning}
}

type funcReporter struct {
	handleError   func(ErrorWithPos) error
	handleWarning func(ErrorWithPos)
}

func (f funcReporter) HandleError(err ErrorWithPos) error {
	if f.handleError == nil {
		return err
	}
	return f.handleError(err)
}

func (f funcReporter) HandleWarning(err ErrorWithPos) {
	if f.handleWarning != nil {
		f.handleWarning(err)
	}
}

// Handler tracks error/warning counts for one compilation and forwards each
// diagnostic to its Reporter. HandleError's return value says whether the
// Reporter asked to stop; the grammar engine and emitter do not check it,
// so callers read the outcome from Error() after the pass.
type Handler struct {
	reporter  Reporter
	errCount  int
	warnCount int
	aborted   bool
}

// NewHandler builds a Handler that delegates to r. A nil r uses a default
// reporter that aborts on the first error and ignores warnings.
func NewHandler(r Reporter) *Handler {
	if r == nil {
		r = NewReporter(nil, nil)
	}
	return &Handler{reporter: r}
}

// HandleErrorf reports a formatted error at pos. It returns the error the
// caller should propagate (non-nil means "stop now").
func (h *Handler) HandleErrorf(pos Pos, format string, args ...interface{}) error {
	return h.HandleError(Errorf(pos, format, args...))
}

func (h *Handler) HandleError(err ErrorWithPos) error {
	h.errCount++
	if h.aborted {
		return err
	}
	if rerr := h.reporter.HandleError(err); rerr != nil {
		h.aborted = true
		return rerr
	}
	return nil
}

func (h *Handler) HandleWarningf(pos Pos, format string, args ...interface{}) {
	h.HandleWarning(Errorf(pos, format, args...))
}

func (h *Handler) HandleWarning(err ErrorWithPos) {
	h.warnCount++
	h.reporter.HandleWarning(err)
}

// ErrorCount reports how many errors have been handled so far, regardless of
// whether the configured Reporter chose to abort.
func (h *Handler) ErrorCount() int {
	return h.errCount
}

// Error returns ErrInvalidSource if any error was reported, else nil.
func (h *Handler) Error() error {
	if h.errCount > 0 {
		return ErrInvalidSource
	}
	return nil
}

// SubHandler returns a new Handler sharing this one's Reporter, for a nested
// compilation unit whose error count should be tracked separately.
func (h *Handler) SubHandler() *Handler {
	return NewHandler(h.reporter)
}
