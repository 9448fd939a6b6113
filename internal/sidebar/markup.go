// internal/sidebar/markup.go
package sidebar

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
	codePattern = regexp.MustCompile(`<code>(.*?)</code>`)
	tickPattern = regexp.MustCompile("`([^`]+)`")
)

// PlainDescription returns the description with inline markup removed and
// HTML entities decoded, suitable for plain terminal output.
func (e Entry) PlainDescription() string {
	s := tagPattern.ReplaceAllString(e.Description, "")
	s = strings.ReplaceAll(s, "`", "")
	return strings.TrimSpace(html.UnescapeString(s))
}

// CrossRefs returns the symbol paths the description links to: the contents
// of inline code spans that name another item, e.g.
// "ClosestPoint::closest_point()". Plain code spans that do not reference a
// path are skipped.
func (e Entry) CrossRefs() []string {
	var refs []string
	collect := func(matches [][]string) {
		for _, m := range matches {
			ref := strings.TrimSpace(html.UnescapeString(m[1]))
			if strings.Contains(ref, "::") {
				refs = append(refs, ref)
			}
		}
	}
	collect(codePattern.FindAllStringSubmatch(e.Description, -1))
	collect(tickPattern.FindAllStringSubmatch(e.Description, -1))
	return refs
}
