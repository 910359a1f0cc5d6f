package notify

import (
	"strings"
	"testing"

	"go-gigradar/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestHTTPClientCarriesDeadline(t *testing.T) {
	//a zero timeout would let one dead connection hold a delivery open
	//indefinitely and starve every later poll cycle
	client := newHTTPClient()
	assert.Equal(t, sendTimeout, client.Timeout)
	assert.NotZero(t, client.Timeout)
}

func TestCardTextEscapesFields(t *testing.T) {
	job := &model.JobPosting{
		Title:   `Dev <b>now</b>`,
		Company: "A & B",
		Tags:    "React",
		Source:  "feed",
		Score:   2,
		Link:    `https://jobs.example/1?a=1&b="x"`,
	}

	text := cardText(job)

	assert.Contains(t, text, "Dev &lt;b&gt;now&lt;/b&gt;")
	assert.Contains(t, text, "A &amp; B")
	//link must be attribute-safe: no raw quotes or ampersands inside href
	assert.Contains(t, text, `href="https://jobs.example/1?a=1&amp;b=&#34;x&#34;"`)
	assert.NotContains(t, text, `b="x"`)
}

func TestCardTextFallbacks(t *testing.T) {
	job := &model.JobPosting{Title: "Dev", Link: "https://jobs.example/2"}

	text := cardText(job)

	assert.Equal(t, 2, strings.Count(text, "N/A")) //company and tags
}
