// Package extract maps markup fragments of fetched documents into typed
// draft records. Selector logic sits behind the Extractor interface so the
// orchestrator can be tested without real markup or network access.
package extract

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/talentboard/harvester/internal/models"
)

// ErrNotSupported marks content types whose extraction is an explicit
// placeholder rather than quietly-empty success.
var ErrNotSupported = errors.New("content type not supported")

// Query describes one search-endpoint request.
type Query struct {
	Location string
	Keyword  string
	Offset   int
	// DatePosted optionally filters by posting age: "past-day",
	// "past-week", or "past-month".
	DatePosted string
}

// Extractor turns fetched documents of one content type into drafts.
type Extractor interface {
	// ContentType names the entity kind this extractor produces.
	ContentType() models.ContentType
	// SearchURL builds the paginated search endpoint for a query.
	SearchURL(q Query) string
	// Candidates pulls detail-page URLs from a search results document.
	Candidates(doc *goquery.Document) []string
	// Detail maps one detail document into a draft. A missing required
	// fragment is an extraction error; the candidate is dropped.
	Detail(doc *goquery.Document, sourceURL string, now time.Time) (models.Draft, error)
}

// Parse builds a goquery document from raw markup.
func Parse(markup []byte) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("parse markup: %w", err)
	}
	return doc, nil
}

// For returns the extractor registered for a content type. The second
// return is false for placeholder types; callers surface ErrNotSupported
// instead of treating the gap as an empty result.
func For(contentType models.ContentType, baseURL string) (Extractor, bool) {
	if contentType == models.ContentJob {
		return NewJobExtractor(baseURL), true
	}
	return nil, false
}
