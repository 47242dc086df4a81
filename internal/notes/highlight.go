package notes

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// highlightTermKey carries the search term through a parser.Context.
var highlightTermKey = parser.NewContextKey()

var kindMark = ast.NewNodeKind("Mark")

// markNode wraps text matching the search term.
type markNode struct {
	ast.BaseInline
}

func (n *markNode) Kind() ast.NodeKind { return kindMark }

func (n *markNode) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

// searchHighlight marks case-insensitive matches of the term found in the
// parser context. Code spans and code blocks are left untouched.
type searchHighlight struct{}

func (searchHighlight) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithASTTransformers(
		util.Prioritized(highlightTransformer{}, 999),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(markRenderer{}, 500),
	))
}

type highlightTransformer struct{}

func (highlightTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	term, _ := pc.Get(highlightTermKey).(string)
	if term == "" {
		return
	}
	needle := bytes.ToLower([]byte(term))
	source := reader.Source()

	var texts []*ast.Text
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.CodeSpan:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			texts = append(texts, n)
		}
		return ast.WalkContinue, nil
	})

	for _, t := range texts {
		markText(t, source, needle)
	}
}

// markText splits t around matches of needle, inserting a markNode per match.
// t itself keeps the tail so its line break flags survive. Text holding
// escapes or entities is skipped: a match could cut through one.
func markText(t *ast.Text, source, needle []byte) {
	if t.IsRaw() {
		return
	}
	value := t.Segment.Value(source)
	if bytes.ContainsAny(value, `\&`) {
		return
	}
	lower := bytes.ToLower(value)
	if len(lower) != len(value) || !bytes.Contains(lower, needle) {
		return
	}

	parent := t.Parent()
	start := t.Segment.Start
	pos := 0
	for {
		i := bytes.Index(lower[pos:], needle)
		if i < 0 {
			break
		}
		i += pos
		if i > pos {
			parent.InsertBefore(parent, t, ast.NewTextSegment(text.NewSegment(start+pos, start+i)))
		}
		mark := &markNode{}
		mark.AppendChild(mark, ast.NewTextSegment(text.NewSegment(start+i, start+i+len(needle))))
		parent.InsertBefore(parent, t, mark)
		pos = i + len(needle)
	}
	t.Segment = t.Segment.WithStart(start + pos)
}

type markRenderer struct{}

func (markRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(kindMark, renderMark)
}

func renderMark(w util.BufWriter, _ []byte, _ ast.Node, entering bool) (ast.WalkStatus, error) {
	if entering {
		_, _ = w.WriteString("<mark>")
	} else {
		_, _ = w.WriteString("</mark>")
	}
	return ast.WalkContinue, nil
}
