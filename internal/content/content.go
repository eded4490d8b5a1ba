// Package content turns the short markdown fragments used for card bodies
// into flat paragraphs a slide text box can hold.
//
// Only block structure survives: list items become bullet paragraphs and
// every source line of a plain paragraph becomes its own paragraph (hard
// wraps). Inline emphasis, code spans and links are flattened to their text.
package content

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// Bullet is the glyph prefixed to list item paragraphs.
const Bullet = "•"

// Paragraph is one line of body text.
type Paragraph struct {
	Text   string
	Bullet bool
	Level  int // list nesting depth, 0 outside lists
}

// String renders the paragraph as it appears on the slide.
func (p Paragraph) String() string {
	if !p.Bullet {
		return p.Text
	}
	return strings.Repeat("  ", max(p.Level-1, 0)) + Bullet + " " + p.Text
}

// Parser converts markdown fragments using goldmark.
type Parser struct {
	md goldmark.Markdown
}

// NewParser creates a Parser with GFM extensions (strikethrough and
// autolinks are flattened like any other inline).
func NewParser() *Parser {
	return &Parser{md: goldmark.New(goldmark.WithExtensions(extension.GFM))}
}

var defaultParser = NewParser()

// Parse converts src with the default parser.
func Parse(src string) []Paragraph {
	return defaultParser.Parse(src)
}

// asciiPunct is the set CommonMark lets a backslash escape.
const asciiPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Escape backslash-escapes every ASCII punctuation character of s, so Parse
// gives back each line of s verbatim as a plain paragraph. Use it for text
// that may start a line with a list or heading marker, such as "+ extras".
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	for _, r := range s {
		if strings.ContainsRune(asciiPunct, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Lines is Parse followed by Paragraph.String for each result.
func Lines(src string) []string {
	paras := Parse(src)
	lines := make([]string, len(paras))
	for i, p := range paras {
		lines[i] = p.String()
	}
	return lines
}

// Parse converts src into paragraphs in document order.
func (p *Parser) Parse(src string) []Paragraph {
	source := []byte(src)
	doc := p.md.Parser().Parse(text.NewReader(source))

	c := &collector{source: source}
	_ = ast.Walk(doc, c.visit)
	c.flush()
	return c.out
}

// collector accumulates inline text until a line or block boundary.
type collector struct {
	source  []byte
	out     []Paragraph
	line    strings.Builder
	depth   int
	bullet  bool // next flushed line opens a list item
	hasText bool
}

func (c *collector) visit(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.List:
		if entering {
			c.depth++
		} else {
			c.depth--
		}
	case *ast.ListItem:
		if entering {
			c.flush()
			c.bullet = true
		} else {
			c.flush()
		}
	case *ast.Paragraph, *ast.TextBlock, *ast.Heading:
		if !entering {
			c.flush()
		}
	case *ast.Text:
		if entering {
			c.write(util.UnescapePunctuations(node.Segment.Value(c.source)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				c.flush()
			}
		}
	case *ast.String:
		if entering {
			c.write(node.Value)
		}
	case *ast.AutoLink:
		if entering {
			c.write(node.Label(c.source))
		}
		return ast.WalkSkipChildren, nil
	}
	return ast.WalkContinue, nil
}

func (c *collector) write(b []byte) {
	if len(b) == 0 {
		return
	}
	c.line.Write(b)
	c.hasText = true
}

// flush emits the pending line. Continuation lines of a list item are
// emitted without a bullet at the item's depth.
func (c *collector) flush() {
	if !c.hasText {
		return
	}
	txt := strings.TrimSpace(c.line.String())
	c.line.Reset()
	c.hasText = false
	if txt == "" {
		return
	}
	c.out = append(c.out, Paragraph{Text: txt, Bullet: c.bullet, Level: c.depth})
	c.bullet = false
}
