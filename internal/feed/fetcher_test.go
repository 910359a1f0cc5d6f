package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFetchReturnsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<rss>ok</rss>"))
	}))
	defer srv.Close()

	f := NewFetcher()
	assert.Equal(t, "<rss>ok</rss>", f.Fetch(context.Background(), srv.URL))
}

func TestFetchSwallowsFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	f := NewFetcher()

	//non-2xx status
	assert.Equal(t, "", f.Fetch(context.Background(), srv.URL))

	//unreachable host
	assert.Equal(t, "", f.Fetch(context.Background(), "http://127.0.0.1:1"))

	//unparseable URL
	assert.Equal(t, "", f.Fetch(context.Background(), "://not-a-url"))
}
