// Package imageref extracts canonical image URLs from raw signature-cell
// text. Cell contents may embed a Drive file reference, an already-usable
// image URL, or a JSON blob carrying a url field; the extractor applies an
// ordered matcher chain and memoizes hits.
package imageref

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync/atomic"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// cacheSize bounds the memoization cache. Signature cell contents form a
	// small, slow-changing value space, so evictions are rare in practice.
	cacheSize = 4096

	thumbnailURLFormat = "https://drive.google.com/thumbnail?id=%s&sz=w200-h100"
)

var (
	driveLinkPattern = regexp.MustCompile(`(?:drive\.google\.com/file/d/|drive\.google\.com/open\?id=|[?&]id=)([a-zA-Z0-9_-]{25,})`)
	bareFileIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]{25,}$`)

	imageURLPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://[^\s]+\.(?:jpg|jpeg|png|gif|webp|bmp)`),
		regexp.MustCompile(`(?i)https?://drive\.google\.com/thumbnail\?[^\s]+`),
	}

	userContentPattern = regexp.MustCompile(`https://lh\d+\.googleusercontent\.com/[a-zA-Z0-9_-]+`)

	hostingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)https?://imgur\.com/[a-zA-Z0-9]+`),
		regexp.MustCompile(`(?i)https?://[^\s]*\.s3\.[^\s]*\.amazonaws\.com/[^\s]+`),
		regexp.MustCompile(`(?i)https?://[^\s]*\.blob\.core\.windows\.net/[^\s]+`),
	}
)

// Extractor resolves raw cell text to image URLs with an LRU memoization
// cache. The zero value is not usable; construct with NewExtractor.
type Extractor struct {
	cache         *lru.Cache[string, string]
	logger        *slog.Logger
	cooldown      time.Duration
	cooldownUntil atomic.Int64
	now           func() time.Time
}

// NewExtractor builds an extractor with the default quota cooldown window.
func NewExtractor(logger *slog.Logger) *Extractor {
	// lru.New only errors on a non-positive size.
	cache, _ := lru.New[string, string](cacheSize)
	return &Extractor{
		cache:    cache,
		logger:   logger,
		cooldown: time.Minute,
		now:      time.Now,
	}
}

// ExtractURL returns the canonical image URL embedded in text, or "" when no
// matcher applies. A miss is never an error.
func (e *Extractor) ExtractURL(text string) string {
	if text == "" {
		return ""
	}
	if cached, ok := e.cache.Get(text); ok {
		return cached
	}

	url := matchImageURL(text)
	if url != "" {
		e.cache.Add(text, url)
	}
	return url
}

// ClearCache drops all memoized results. Escape hatch for when signature
// assets are replaced upstream.
func (e *Extractor) ClearCache() {
	e.cache.Purge()
	e.logger.Info("image URL cache cleared")
}

// CacheLen reports how many raw-text values are currently memoized.
func (e *Extractor) CacheLen() int {
	return e.cache.Len()
}

func matchImageURL(text string) string {
	// 1. Drive file reference, embedded in a link or as a bare id.
	if m := driveLinkPattern.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf(thumbnailURLFormat, m[1])
	}
	if trimmed := strings.TrimSpace(text); bareFileIDPattern.MatchString(trimmed) {
		return fmt.Sprintf(thumbnailURLFormat, trimmed)
	}

	// 2. Already-canonical image URL.
	for _, p := range imageURLPatterns {
		if m := p.FindString(text); m != "" {
			return m
		}
	}

	// 3. Google user-content link.
	if m := userContentPattern.FindString(text); m != "" {
		return m
	}

	// 4. Other known hosting services.
	for _, p := range hostingPatterns {
		if m := p.FindString(text); m != "" {
			return m
		}
	}

	// 5. JSON blob with an embedded url field.
	if strings.HasPrefix(strings.TrimSpace(text), "{") {
		var blob struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal([]byte(text), &blob); err == nil && blob.URL != "" {
			if nested := matchImageURL(blob.URL); nested != "" {
				return nested
			}
			if strings.HasPrefix(blob.URL, "http://") || strings.HasPrefix(blob.URL, "https://") {
				return blob.URL
			}
		}
	}

	return ""
}
