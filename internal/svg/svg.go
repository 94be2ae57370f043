// Package svg is a small element-tree builder for SVG documents.
//
// Renderers compose Elements and call Document to serialize them. Attribute
// values and text content are XML-escaped on output, so callers can pass
// user-supplied strings straight through.
package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
)

// Namespace is the SVG XML namespace declared on every root element.
const Namespace = "http://www.w3.org/2000/svg"

// Attr is a single name="value" pair. Order is preserved on output.
type Attr struct {
	Name  string
	Value string
}

// Element is one node in the tree. An element with neither text nor
// children serializes self-closed.
type Element struct {
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element

	// raw is written verbatim; only used for <style> bodies.
	raw string
}

// El creates an element with attributes given as alternating name/value
// pairs. Values may be strings, ints or float64s.
func El(name string, kv ...any) *Element {
	e := &Element{Name: name}
	e.Set(kv...)
	return e
}

// Group is shorthand for El("g", kv...).
func Group(kv ...any) *Element { return El("g", kv...) }

// Text creates a <text> element with escaped content.
func Text(content string, kv ...any) *Element {
	e := El("text", kv...)
	e.Text = content
	return e
}

// Span creates a <tspan> for differently styled runs inside a <text>.
func Span(content string, kv ...any) *Element {
	e := El("tspan", kv...)
	e.Text = content
	return e
}

// Style creates a <style> element whose body is written as CDATA.
func Style(css string) *Element {
	return &Element{Name: "style", raw: css}
}

// Set appends attributes given as alternating name/value pairs.
func (e *Element) Set(kv ...any) *Element {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("svg: odd attribute list for <%s>", e.Name))
	}
	for i := 0; i < len(kv); i += 2 {
		name, ok := kv[i].(string)
		if !ok {
			panic(fmt.Sprintf("svg: attribute name %v is not a string", kv[i]))
		}
		e.Attrs = append(e.Attrs, Attr{Name: name, Value: formatValue(kv[i+1])})
	}
	return e
}

// Add appends children, skipping nils so optional sections can be passed
// unconditionally.
func (e *Element) Add(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// Attr returns the value of the named attribute and whether it was set.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Find returns every descendant (including e) whose name matches.
func (e *Element) Find(name string) []*Element {
	var out []*Element
	e.walk(func(n *Element) {
		if n.Name == name {
			out = append(out, n)
		}
	})
	return out
}

func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.walk(fn)
	}
}

// Document wraps children in a root <svg> sized width×height and returns
// the serialized bytes.
func Document(width, height int, children ...*Element) []byte {
	root := El("svg",
		"xmlns", Namespace,
		"width", width,
		"height", height,
		"viewBox", fmt.Sprintf("0 0 %d %d", width, height),
		"role", "img",
	)
	root.Add(children...)
	var buf bytes.Buffer
	root.encode(&buf)
	return buf.Bytes()
}

// encode serializes the element and its subtree into buf.
func (e *Element) encode(buf *bytes.Buffer) {
	buf.WriteByte('<')
	buf.WriteString(e.Name)
	for _, a := range e.Attrs {
		buf.WriteByte(' ')
		buf.WriteString(a.Name)
		buf.WriteString(`="`)
		escape(buf, a.Value)
		buf.WriteByte('"')
	}
	if e.Text == "" && e.raw == "" && len(e.Children) == 0 {
		buf.WriteString("/>")
		return
	}
	buf.WriteByte('>')
	if e.raw != "" {
		buf.WriteString("<![CDATA[")
		buf.WriteString(e.raw)
		buf.WriteString("]]>")
	}
	escape(buf, e.Text)
	for _, c := range e.Children {
		c.encode(buf)
	}
	buf.WriteString("</")
	buf.WriteString(e.Name)
	buf.WriteByte('>')
}

// String returns the serialized subtree.
func (e *Element) String() string {
	var buf bytes.Buffer
	e.encode(&buf)
	return buf.String()
}

func escape(buf *bytes.Buffer, s string) {
	if s == "" {
		return
	}
	// EscapeText only fails on writer errors; bytes.Buffer never returns one.
	_ = xml.EscapeText(buf, []byte(s))
}

func formatValue(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	case float64:
		return Num(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// Num formats a coordinate with at most two decimals and no trailing zeros.
func Num(f float64) string {
	s := strconv.FormatFloat(f, 'f', 2, 64)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	s = trimDot(s)
	if s == "-0" {
		return "0"
	}
	return s
}

func trimDot(s string) string {
	if len(s) > 0 && s[len(s)-1] == '.' {
		return s[:len(s)-1]
	}
	return s
}
