package feed

import (
	"regexp"
	"strings"
)

// Item is one raw entry pulled out of a feed document. Fields the document
// does not supply stay empty; items without a link are dropped by the caller.
type Item struct {
	Title       string
	Link        string
	Description string
	PublishedAt string
}

var (
	itemOpenRegex = regexp.MustCompile(`(?i)<(item|entry)[\s>]`)
	itemEndRegex  = regexp.MustCompile(`(?i)</(item|entry)>`)

	titleRegex    = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	linkTagRegex  = regexp.MustCompile(`(?is)<link[^>]*>(.*?)</link>`)
	linkHrefRegex = regexp.MustCompile(`(?i)<link[^>]*href="([^"]*)"`)
	descRegex     = regexp.MustCompile(`(?is)<(?:description|summary|content)[^>]*>(.*?)</(?:description|summary|content)>`)
	dateRegex     = regexp.MustCompile(`(?is)<(?:pubDate|published|updated|dc:date)[^>]*>(.*?)</(?:pubDate|published|updated|dc:date)>`)

	cdataRegex  = regexp.MustCompile(`(?is)<!\[CDATA\[(.*?)\]\]>`)
	anyTagRegex = regexp.MustCompile(`(?s)<[^>]*>`)
)

// ParseItems scans a raw feed document for item/entry blocks and extracts
// title, link, description and publish date from each one.
//
// This is deliberately a tolerant text scanner, not a conforming XML parser:
// real-world job feeds ship broken markup (unclosed tags, stray attributes,
// unescaped text) that would make a strict parser reject the whole document.
// A malformed item degrades to empty fields instead of failing its siblings.
// Items appear in document order. No I/O, deterministic.
func ParseItems(raw string) []Item {
	if raw == "" {
		return nil
	}

	starts := itemOpenRegex.FindAllStringIndex(raw, -1)
	if len(starts) == 0 {
		return nil
	}

	items := make([]Item, 0, len(starts))
	for i, start := range starts {
		//block runs to the next item open tag when the closing tag is missing
		end := len(raw)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		block := raw[start[0]:end]
		if loc := itemEndRegex.FindStringIndex(block); loc != nil {
			block = block[:loc[0]]
		}
		items = append(items, Item{
			Title:       extractField(block, titleRegex),
			Link:        extractLink(block),
			Description: extractField(block, descRegex),
			PublishedAt: extractField(block, dateRegex),
		})
	}
	return items
}

func extractField(block string, re *regexp.Regexp) string {
	m := re.FindStringSubmatch(block)
	if m == nil {
		return ""
	}
	return cleanText(m[1])
}

// extractLink handles both RSS (<link>url</link>) and Atom (<link href="url"/>)
// link shapes, preferring whichever yields a non-empty value.
func extractLink(block string) string {
	if m := linkTagRegex.FindStringSubmatch(block); m != nil {
		if link := cleanText(m[1]); link != "" {
			return link
		}
	}
	if m := linkHrefRegex.FindStringSubmatch(block); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// cleanText strips CDATA wrappers and residual markup, decodes the handful of
// entities feeds actually use, and collapses surrounding whitespace.
func cleanText(s string) string {
	if m := cdataRegex.FindStringSubmatch(s); m != nil {
		s = m[1]
	}
	s = anyTagRegex.ReplaceAllString(s, " ")
	s = entityReplacer.Replace(s)
	return strings.TrimSpace(strings.Join(strings.Fields(s), " "))
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&nbsp;", " ",
)
