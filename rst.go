package pelican

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// docutilsBinaries lists docutils front-end binaries in preference order.
// Both the html5 and the html4css1 writer front ends are understood.
var docutilsBinaries = []string{"rst2html5", "rst2html", "rst2html5.py", "rst2html.py"}

// docutilsAvailable is the feature probe for the reStructuredText reader.
func docutilsAvailable() bool {
	return firstOnPath(docutilsBinaries...) != ""
}

// abbreviationPattern splits "TERM (explanation)" abbreviation text.
var abbreviationPattern = regexp.MustCompile(`^(.*\S)\s+\((.+)\)$`)

// rstReader renders reStructuredText through an external docutils engine
// and extracts metadata from the rendered document's docinfo block.
type rstReader struct {
	baseReader
	runner commandRunner
	binary string
}

func newRSTReader(settings Settings) *rstReader {
	return &rstReader{
		baseReader: newBaseReader(settings),
		runner:     execRunner{},
		binary:     firstOnPath(docutilsBinaries...),
	}
}

// Read renders the document, walks the rendered tree for docinfo fields,
// and coerces each field by name. Title defaults to the document's own
// title node when no explicit title field exists.
func (r *rstReader) Read(ctx context.Context, path string) (string, Metadata, error) {
	if r.binary == "" {
		return "", nil, fmt.Errorf("%w: docutils (rst2html)", ErrEngineNotFound)
	}

	stdout, stderr, err := r.runner.Run(ctx, r.binary, "--initial-header-level=2", path)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %s: %v", ErrEngineFailed, strings.TrimSpace(stderr), err)
	}

	doc, err := html.Parse(strings.NewReader(stdout))
	if err != nil {
		return "", nil, fmt.Errorf("%w: %v", ErrEngineFailed, err)
	}

	parts := parseRenderedRST(doc)

	metadata := Metadata{}
	for _, field := range parts.fields {
		name := strings.ToLower(field.name)
		value, err := r.processMetadata(name, field.value)
		if err != nil {
			return "", nil, err
		}
		metadata[name] = value
	}
	if _, ok := metadata["title"]; !ok {
		metadata["title"] = parts.title
	}

	return parts.body, metadata, nil
}

// rstField is one raw docinfo name/value pair. The summary field keeps its
// rendered markup; every other field is captured as plain text.
type rstField struct {
	name  string
	value string
}

type rstParts struct {
	title  string
	fields []rstField
	body   string
}

// parseRenderedRST dissects a rendered docutils document into title,
// docinfo fields, and body. Abbreviations written as "TERM (explanation)"
// are rewritten to title-attributed abbr tags before the body is captured.
func parseRenderedRST(doc *html.Node) rstParts {
	container := findNode(doc, func(n *html.Node) bool {
		return n.Type == html.ElementNode && (n.Data == "main" || hasClass(n, "document"))
	})
	if container == nil {
		container = findNode(doc, func(n *html.Node) bool {
			return n.Type == html.ElementNode && n.Data == "body"
		})
	}
	if container == nil {
		return rstParts{}
	}

	rewriteAbbreviations(container)

	titleNode := findNode(container, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "title")
	})
	docinfoNode := findNode(container, func(n *html.Node) bool {
		return n.Type == html.ElementNode && hasClass(n, "docinfo")
	})

	parts := rstParts{}
	if titleNode != nil {
		parts.title = strings.TrimSpace(textContent(titleNode))
	}
	if docinfoNode != nil {
		parts.fields = docinfoFields(docinfoNode)
	}
	parts.body = renderChildren(container, func(n *html.Node) bool {
		return n == titleNode || n == docinfoNode
	})

	return parts
}

// docinfoFields extracts name/value pairs from a docinfo node. The html5
// writer emits a dl with dt/dd pairs; the html4css1 writer emits a table
// with th/td rows. Both shapes are handled.
func docinfoFields(docinfo *html.Node) []rstField {
	var fields []rstField

	var name string
	haveName := false
	walkElements(docinfo, func(n *html.Node) {
		switch n.Data {
		case "dt", "th":
			name = fieldName(n)
			haveName = true
		case "dd", "td":
			if !haveName {
				return
			}
			fields = append(fields, rstField{name: name, value: fieldValue(name, n)})
			haveName = false
		}
	})

	return fields
}

// fieldName reads a field's name from its dt/th node, dropping the colon
// the writer appends.
func fieldName(n *html.Node) string {
	text := strings.TrimSpace(textContent(n))
	return strings.TrimSuffix(text, ":")
}

// fieldValue captures a field's body. The summary field is rendered as a
// content fragment with the field wrapper suppressed; all other fields
// collapse to plain text.
func fieldValue(name string, n *html.Node) string {
	if strings.EqualFold(name, "summary") {
		return strings.TrimSpace(renderChildren(n, nil))
	}
	return strings.TrimSpace(textContent(n))
}

// rewriteAbbreviations gives abbr elements written as "TERM (explanation)"
// a title attribute holding the explanation, leaving only the term as text.
func rewriteAbbreviations(root *html.Node) {
	walkElements(root, func(n *html.Node) {
		if n.Data != "abbr" || attrValue(n, "title") != "" {
			return
		}
		match := abbreviationPattern.FindStringSubmatch(strings.TrimSpace(textContent(n)))
		if match == nil {
			return
		}

		n.Attr = append(n.Attr, html.Attribute{Key: "title", Val: match[2]})
		for n.FirstChild != nil {
			n.RemoveChild(n.FirstChild)
		}
		n.AppendChild(&html.Node{Type: html.TextNode, Data: match[1]})
	})
}

// findNode returns the first node in depth-first order satisfying pred.
func findNode(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if pred(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// walkElements visits every element node under n in depth-first order.
func walkElements(n *html.Node, visit func(*html.Node)) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			visit(c)
		}
		walkElements(c, visit)
	}
}

// textContent concatenates the text nodes of a subtree, skipping text that
// only punctuates the markup (the writer's colon spans are plain text too,
// so callers trim what they need).
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

// renderChildren serializes n's children, omitting those matched by skip.
func renderChildren(n *html.Node, skip func(*html.Node) bool) string {
	var buf bytes.Buffer
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if skip != nil && skip(c) {
			continue
		}
		if err := html.Render(&buf, c); err != nil {
			continue
		}
	}
	return strings.TrimSpace(buf.String())
}

// hasClass reports whether the element's class attribute contains the
// given token.
func hasClass(n *html.Node, class string) bool {
	for _, token := range strings.Fields(attrValue(n, "class")) {
		if token == class {
			return true
		}
	}
	return false
}

// attrValue returns the value of the named attribute, or "".
func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
