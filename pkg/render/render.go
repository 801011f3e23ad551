// Package render evaluates compiled templates against per-event variables.
// Rendering is pure: it never logs, locks, or fails.
package render

import (
	"strings"

	"github.com/arthur-debert/chatstyle/pkg/node"
)

// Context maps variable names to already formatted values. Build a fresh one
// per event.
type Context map[string]string

// ResultKind tells the caller what to do with an event
type ResultKind int

const (
	// Absent means no override is configured; keep the default behaviour
	Absent ResultKind = iota
	// Suppress means the event must not be delivered
	Suppress
	// Text carries replacement output
	Text
)

func (k ResultKind) String() string {
	switch k {
	case Suppress:
		return "suppress"
	case Text:
		return "text"
	default:
		return "absent"
	}
}

// Result is the outcome of rendering a slot
type Result struct {
	Kind ResultKind
	Text string
}

// TextResult wraps s as a Text result
func TextResult(s string) Result { return Result{Kind: Text, Text: s} }

// SuppressResult returns the Suppress result
func SuppressResult() Result { return Result{Kind: Suppress} }

// AbsentResult returns the Absent result
func AbsentResult() Result { return Result{Kind: Absent} }

// Blank decides what an explicitly blank (Empty) slot means
type Blank func(ctx Context) Result

// Suppressing is the Blank rule for message slots: drop the event
func Suppressing() Blank {
	return func(Context) Result { return SuppressResult() }
}

// PassThrough is the Blank rule for slots whose blank value means "use the
// unmodified input", taken from ctx[variable]
func PassThrough(variable string) Blank {
	return func(ctx Context) Result { return TextResult(ctx[variable]) }
}

// Render produces the text of n. Missing variables render as "".
func Render(n node.Node, ctx Context) string {
	var b strings.Builder
	write(&b, n, ctx)
	return b.String()
}

func write(b *strings.Builder, n node.Node, ctx Context) {
	switch v := n.(type) {
	case *node.Literal:
		b.WriteString(v.Text)
	case *node.Sequence:
		for _, c := range v.Children {
			write(b, c, ctx)
		}
	case *node.Placeholder:
		b.WriteString(ctx[v.Name])
	}
}

// RenderSlot renders the node configured for a slot. A nil node is Absent
// and is never rendered; Empty defers to blank.
func RenderSlot(n node.Node, ctx Context, blank Blank) Result {
	if n == nil {
		return AbsentResult()
	}
	if node.IsEmpty(n) {
		if blank == nil {
			return SuppressResult()
		}
		return blank(ctx)
	}
	return TextResult(Render(n, ctx))
}
