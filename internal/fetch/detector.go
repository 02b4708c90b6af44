package fetch

import (
	"bytes"
	"strings"
)

// Detector decides whether a plain HTTP body needs a headless re-fetch.
type Detector struct {
	BodyLengthThreshold int
}

// NewDetector creates a Detector. A zero threshold falls back to 2048 bytes.
func NewDetector(threshold int) *Detector {
	if threshold == 0 {
		threshold = 2048
	}
	return &Detector{BodyLengthThreshold: threshold}
}

// spaMarkers indicate a script-rendered shell document.
var spaMarkers = [][]byte{
	[]byte("__next"),
	[]byte(`id="root"`),
	[]byte(`id="app"`),
	[]byte("data-reactroot"),
}

// ShouldRender reports whether the body looks like a script-rendered shell
// rather than server-rendered listing markup.
func (d *Detector) ShouldRender(res Result) bool {
	if res.Rendered || res.StatusCode != 200 {
		return false
	}
	if len(res.Body) == 0 {
		return true
	}
	if len(res.Body) < d.BodyLengthThreshold && scriptDensityHigh(res.Body) {
		return true
	}
	for _, marker := range spaMarkers {
		if bytes.Contains(res.Body, marker) {
			return true
		}
	}
	return false
}

// scriptDensityHigh reports whether script tags cover at least a quarter of
// the document.
func scriptDensityHigh(body []byte) bool {
	lower := strings.ToLower(string(body))
	total := len(lower)
	if total == 0 {
		return false
	}

	const (
		openTag  = "<script"
		closeTag = "</script>"
	)
	coverage := 0
	pos := 0
	for {
		rel := strings.Index(lower[pos:], openTag)
		if rel == -1 {
			break
		}
		start := pos + rel

		tagClose := strings.IndexByte(lower[start:], '>')
		if tagClose == -1 {
			coverage += total - start
			break
		}
		contentStart := start + tagClose + 1

		relEnd := strings.Index(lower[contentStart:], closeTag)
		var next int
		if relEnd == -1 {
			next = total
		} else {
			next = contentStart + relEnd + len(closeTag)
		}
		coverage += next - start
		pos = next
	}

	if coverage == 0 {
		return false
	}
	return coverage*100/total >= 25
}
