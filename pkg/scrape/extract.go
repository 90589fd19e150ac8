package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelector matches elements whose text never belongs to an article body.
// Removal, not skipping: descendant text of these nodes must not leak through.
const noiseSelector = `script, style, header, footer, nav, [role="navigation"], .popup, #popup`

// ExtractText strips boilerplate elements from HTML markup and returns the
// remaining visible text, one trimmed fragment per line. Malformed markup is
// tolerated; the worst case is an empty string.
func ExtractText(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return ""
	}

	doc.Find(noiseSelector).Remove()

	var fragments []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		// Layouts often concatenate headlines with double-space runs;
		// split those into lines of their own.
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				fragments = append(fragments, phrase)
			}
		}
	}

	return strings.Join(fragments, "\n")
}
