// Package opengraph fetches a page and reads its Open Graph meta tags.
package opengraph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ErrNotHTML is returned when the server declares a content type that cannot hold meta tags.
var ErrNotHTML = errors.New("opengraph: response is not html")

// Metadata holds the og:* values found on a page. Missing tags are empty strings.
type Metadata struct {
	Title       string
	Description string
	Image       string
}

type Client struct {
	http      *http.Client
	userAgent string
}

type Option func(*Client)

// WithHTTPClient replaces the default client, e.g. to use a test server's client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

func WithUserAgent(ua string) Option {
	return func(cl *Client) { cl.userAgent = ua }
}

// NewClient returns a Client whose requests give up after timeout. Redirects
// follow net/http defaults.
func NewClient(timeout time.Duration, opts ...Option) *Client {
	c := &Client{http: &http.Client{Timeout: timeout}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch downloads rawURL and extracts og:title, og:description and og:image.
// Every call performs a fresh request.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Metadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("opengraph: build request: %w", err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("opengraph: fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("opengraph: fetch %s: unexpected status %d", rawURL, resp.StatusCode)
	}
	if !isMarkup(resp.Header.Get("Content-Type")) {
		return nil, fmt.Errorf("%w: %s", ErrNotHTML, resp.Header.Get("Content-Type"))
	}

	return Parse(resp.Body)
}

// Parse reads Open Graph values from an HTML document.
func Parse(r io.Reader) (*Metadata, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("opengraph: parse: %w", err)
	}

	return &Metadata{
		Title:       property(doc, "title"),
		Description: property(doc, "description"),
		Image:       property(doc, "image"),
	}, nil
}

// property returns the content of the first meta[property='og:<name>'].
func property(doc *goquery.Document, name string) string {
	content, _ := doc.Find(fmt.Sprintf("meta[property='og:%s']", name)).First().Attr("content")
	return content
}

// isMarkup accepts a missing content type, html and any xml flavour.
func isMarkup(contentType string) bool {
	if contentType == "" {
		return true
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return strings.Contains(mediaType, "html") || strings.Contains(mediaType, "xml")
}
