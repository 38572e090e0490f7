package goquery

import (
	stdhtml "html"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docset"
)

var _ docset.Filter = (*CleanHTML)(nil)

// languageRe extracts the language hint from highlighter class names like
// "language-js" or "highlight-source-python".
var languageRe = regexp.MustCompile(`(?:language|lang|highlight-source)-([\w-]+)`)

// CleanHTML strips presentation noise from a page: script/style/comment
// nodes, class and style attributes, known wrapper containers, and
// highlighter markup inside code blocks.
type CleanHTML struct {
	// RemoveSelectors are removed with their contents.
	RemoveSelectors []string

	// UnwrapSelectors are replaced by their children.
	UnwrapSelectors []string
}

// NewCleanHTML creates a CleanHTML filter with the default selectors.
func NewCleanHTML() *CleanHTML {
	return &CleanHTML{
		RemoveSelectors: []string{"script", "style", "noscript", "link", "iframe"},
		UnwrapSelectors: []string{"section", "div.section", "div.row"},
	}
}

// Apply returns the cleaned HTML. Parse failures fall back to the
// unmodified input.
func (f *CleanHTML) Apply(html string, ctx *docset.FilterContext) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docset.Errorf(docset.EINVALID, "failed to parse HTML: %v", err)
	}

	if len(f.RemoveSelectors) > 0 {
		doc.Find(strings.Join(f.RemoveSelectors, ", ")).Remove()
	}

	// Comment nodes are not addressable by selector; walk element contents.
	doc.Find("*").Contents().Each(func(_ int, sel *goquery.Selection) {
		if goquery.NodeName(sel) == "#comment" {
			sel.Remove()
		}
	})

	f.normalizeCodeBlocks(doc)

	for _, selector := range f.UnwrapSelectors {
		// Innermost first so nested wrappers collapse completely.
		nodes := doc.Find(selector).Nodes
		for i := len(nodes) - 1; i >= 0; i-- {
			sel := doc.FindNodes(nodes[i])
			inner, err := sel.Html()
			if err != nil {
				continue
			}
			sel.ReplaceWithHtml(inner)
		}
	}

	doc.Find("[class]").RemoveAttr("class")
	doc.Find("[style]").RemoveAttr("style")

	out, err := doc.Find("body").Html()
	if err != nil || out == "" {
		return html, nil
	}
	return out, nil
}

// normalizeCodeBlocks collapses token-highlighted pre blocks into a single
// code node tagged with the detected language.
func (f *CleanHTML) normalizeCodeBlocks(doc *goquery.Document) {
	doc.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		lang := detectLanguage(pre)

		var text string
		if lines := pre.Find(".token-line, .line"); lines.Length() > 0 {
			var parts []string
			lines.Each(func(_ int, line *goquery.Selection) {
				parts = append(parts, line.Text())
			})
			text = strings.Join(parts, "\n")
		} else {
			text = pre.Text()
		}

		code := "<code>" + stdhtml.EscapeString(strings.TrimRight(text, "\n")) + "</code>"
		pre.SetHtml(code)
		if lang != "" {
			pre.SetAttr("data-language", lang)
		}
	})
}

// detectLanguage looks for a language hint on the pre element or any of its
// descendants.
func detectLanguage(pre *goquery.Selection) string {
	if class, ok := pre.Attr("class"); ok {
		if m := languageRe.FindStringSubmatch(class); m != nil {
			return m[1]
		}
	}
	found := ""
	pre.Find("[class]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		class, _ := sel.Attr("class")
		if m := languageRe.FindStringSubmatch(class); m != nil {
			found = m[1]
			return false
		}
		return true
	})
	return found
}

// Entries is implemented to satisfy docset.Filter; cleaning emits none.
func (f *CleanHTML) Entries(html string, ctx *docset.FilterContext) []docset.IndexEntry {
	return nil
}
