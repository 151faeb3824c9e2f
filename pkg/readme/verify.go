package readme

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Outline is the heading and in-page link structure of a Markdown document.
type Outline struct {
	// Headings holds generated heading ids in document order.
	Headings []string
	// Anchors holds in-page link targets (without '#') in document order.
	Anchors []string
}

// StructureError lists table-of-contents anchors that do not resolve.
type StructureError struct {
	Missing []string
}

func (e *StructureError) Error() string {
	return fmt.Sprintf("readme: unresolved table of contents anchors: %s", strings.Join(e.Missing, ", "))
}

var markdown = goldmark.New(goldmark.WithParserOptions(parser.WithAutoHeadingID()))

// Inspect parses doc and collects its outline.
func Inspect(doc []byte) Outline {
	root := markdown.Parser().Parse(text.NewReader(doc))

	var outline Outline
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Heading:
			if id, ok := node.AttributeString("id"); ok {
				if b, ok := id.([]byte); ok {
					outline.Headings = append(outline.Headings, string(b))
				}
			}
		case *ast.Link:
			dest := string(node.Destination)
			if strings.HasPrefix(dest, "#") {
				outline.Anchors = append(outline.Anchors, strings.TrimPrefix(dest, "#"))
			}
		}
		return ast.WalkContinue, nil
	})
	return outline
}

// Verify checks that every table-of-contents entry is linked, in order, and
// that each link lands on a heading. User content that swallows headings,
// such as an unclosed code fence, is reported as a *StructureError.
func Verify(doc []byte) error {
	outline := Inspect(doc)

	headings := make(map[string]struct{}, len(outline.Headings))
	for _, id := range outline.Headings {
		headings[id] = struct{}{}
	}

	var missing []string
	next := 0
	for _, anchor := range tocAnchors() {
		linked := false
		for i := next; i < len(outline.Anchors); i++ {
			if outline.Anchors[i] == anchor {
				linked = true
				next = i + 1
				break
			}
		}
		_, hasHeading := headings[anchor]
		if !linked || !hasHeading {
			missing = append(missing, anchor)
		}
	}

	if len(missing) > 0 {
		return &StructureError{Missing: missing}
	}
	return nil
}
