package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseItems(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected []Item
	}{
		{
			name: "Well formed RSS",
			raw: `<?xml version="1.0"?><rss><channel>
				<item>
					<title>Frontend Dev</title>
					<link>https://jobs.example/1</link>
					<description>Build a website</description>
					<pubDate>Mon, 02 Jan 2026 15:04:05 GMT</pubDate>
				</item>
				<item>
					<title>React Engineer</title>
					<link>https://jobs.example/2</link>
				</item>
			</channel></rss>`,
			expected: []Item{
				{Title: "Frontend Dev", Link: "https://jobs.example/1", Description: "Build a website", PublishedAt: "Mon, 02 Jan 2026 15:04:05 GMT"},
				{Title: "React Engineer", Link: "https://jobs.example/2"},
			},
		},
		{
			name: "Atom entry with href link",
			raw: `<feed><entry>
				<title type="html">Web3 Gig</title>
				<link rel="alternate" href="https://jobs.example/3"/>
				<summary>dApp work</summary>
				<published>2026-01-05</published>
			</entry></feed>`,
			expected: []Item{
				{Title: "Web3 Gig", Link: "https://jobs.example/3", Description: "dApp work", PublishedAt: "2026-01-05"},
			},
		},
		{
			name: "CDATA and embedded markup",
			raw: `<rss><item>
				<title><![CDATA[Solidity & React]]></title>
				<link>https://jobs.example/4</link>
				<description><![CDATA[<p>Smart contract UI</p>  <b>remote</b>]]></description>
			</item></rss>`,
			expected: []Item{
				{Title: "Solidity & React", Link: "https://jobs.example/4", Description: "Smart contract UI remote"},
			},
		},
		{
			name: "Missing closing item tag",
			raw: `<rss>
				<item><title>First</title><link>https://jobs.example/5</link>
				<item><title>Second</title><link>https://jobs.example/6</link></item>
			</rss>`,
			expected: []Item{
				{Title: "First", Link: "https://jobs.example/5"},
				{Title: "Second", Link: "https://jobs.example/6"},
			},
		},
		{
			name: "Malformed item degrades to empty fields",
			raw: `<rss>
				<item><title>Broken
				</item>
				<item><title>Fine</title><link>https://jobs.example/7</link></item>
			</rss>`,
			expected: []Item{
				{},
				{Title: "Fine", Link: "https://jobs.example/7"},
			},
		},
		{
			name:     "No items",
			raw:      `<rss><channel><title>Empty feed</title></channel></rss>`,
			expected: nil,
		},
		{
			name:     "Empty document",
			raw:      "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseItems(tt.raw))
		})
	}
}

func TestParseItemsDocumentOrder(t *testing.T) {
	raw := `<rss>
		<item><link>https://jobs.example/c</link></item>
		<item><link>https://jobs.example/a</link></item>
		<item><link>https://jobs.example/b</link></item>
	</rss>`

	items := ParseItems(raw)
	links := make([]string, 0, len(items))
	for _, it := range items {
		links = append(links, it.Link)
	}
	assert.Equal(t, []string{"https://jobs.example/c", "https://jobs.example/a", "https://jobs.example/b"}, links)
}
