package calculator

import "calc-engine/internal/expr"

// Session is one calculator: an expression buffer, its history and the
// error from the last failed commit. A Session is not safe for concurrent
// use; Store serialises access per session.
type Session struct {
	ID       string
	strategy expr.Strategy
	buf      Buffer
	history  *History
	err      error
}

// NewSession returns an empty session evaluating with strategy and keeping
// up to historyCapacity entries.
func NewSession(id string, strategy expr.Strategy, historyCapacity int) *Session {
	return &Session{
		ID:       id,
		strategy: strategy,
		history:  NewHistory(historyCapacity),
	}
}

// Commit describes an "=" that ran the evaluator.
type Commit struct {
	Expression string
	Result     float64
	Err        error
}

// Press applies one key. It returns a non-nil Commit when the key was "="
// and the buffer held an expression to evaluate. Any key clears the error
// left by a previous failed commit.
func (s *Session) Press(k Key) *Commit {
	s.err = nil

	switch k.Kind {
	case KeyDigit:
		s.buf.Digit(k.Char)
	case KeyPoint:
		s.buf.Point()
	case KeyOperator:
		s.buf.Operator(k.Char)
	case KeyClear:
		s.buf.Clear()
	case KeyClearEntry:
		s.buf.ClearEntry()
	case KeyDelete:
		s.buf.Delete()
	case KeyEquals:
		return s.commit()
	}
	return nil
}

func (s *Session) commit() *Commit {
	expression, result, ok, err := s.buf.Commit(s.strategy.Eval)
	if !ok {
		return nil
	}
	if err != nil {
		s.err = err
		return &Commit{Expression: expression, Err: err}
	}

	s.history.Append(Entry{Expression: expression, Result: result})
	return &Commit{Expression: expression, Result: result}
}

// ClearHistory empties the history log.
func (s *Session) ClearHistory() {
	s.history.Clear()
}

// Strategy reports the evaluator this session uses.
func (s *Session) Strategy() expr.Strategy { return s.strategy }

// Err returns the error from the last commit, or nil once another key has
// been pressed.
func (s *Session) Err() error { return s.err }

// Expression returns the raw buffer text.
func (s *Session) Expression() string { return s.buf.Text() }

// Display returns the display text, never empty.
func (s *Session) Display() string { return s.buf.Display() }

// History returns the formatted history lines, oldest first.
func (s *Session) History() []string { return s.history.Lines() }

// View snapshots the session for rendering.
func (s *Session) View() SessionView {
	v := SessionView{
		ID:         s.ID,
		Expression: s.buf.Text(),
		Display:    s.buf.Display(),
		History:    s.history.Lines(),
	}
	if s.err != nil {
		v.Error = s.err.Error()
		v.ErrorKind = expr.KindOf(s.err).String()
	}
	return v
}
