package parser

import (
	"context"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

const (
	// At most 500 rendered articles are kept in memory.
	cacheCapacity = 500
	cacheTTL      = 30 * time.Minute
)

// Service renders article Markdown to HTML and strips everything outside the
// editorial allow-list. The same policy is applied to HTML that authors paste
// in directly.
type Service struct {
	mdParser goldmark.Markdown
	policy   *bluemonday.Policy

	// Render results are cached by content hash: the public detail page hits
	// the same published articles over and over.
	htmlCache     *LRUCache
	sanitizeCache *LRUCache
}

// NewService creates a new parser service instance.
func NewService() *Service {
	mdParser := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM, extension.Typographer, extension.Linkify, extension.Strikethrough,
		),
		goldmark.WithParserOptions(gmparser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(gmhtml.WithXHTML(), gmhtml.WithUnsafe()),
	)

	// The editorial allow-list: basic text markup, headings, links, images,
	// lists, quotes and code. Nothing interactive survives sanitization.
	policy := bluemonday.NewPolicy()
	policy.AllowElements(
		"p", "br", "em", "i", "strong", "b", "u", "s", "del",
		"h1", "h2", "h3", "h4", "h5", "h6",
		"a", "img", "ul", "ol", "li", "blockquote", "code", "pre",
	)
	policy.AllowAttrs("href").OnElements("a")
	policy.AllowAttrs("src").OnElements("img")
	policy.AllowAttrs("alt", "title").OnElements("img", "a")
	policy.AllowAttrs("class").Matching(bluemonday.SpaceSeparatedTokens).OnElements(
		"p", "a", "img", "ul", "ol", "li", "blockquote", "code", "pre",
		"h1", "h2", "h3", "h4", "h5", "h6",
	)
	policy.AllowAttrs("target", "rel").OnElements("a")
	policy.AllowStandardURLs()
	policy.RequireNoFollowOnLinks(false)

	return &Service{
		mdParser:      mdParser,
		policy:        policy,
		htmlCache:     NewLRUCache(cacheCapacity, cacheTTL),
		sanitizeCache: NewLRUCache(cacheCapacity, cacheTTL),
	}
}

// ToHTML converts Markdown into sanitized HTML, serving repeated conversions
// of the same content from cache.
func (s *Service) ToHTML(ctx context.Context, content string) (string, error) {
	cacheKey := computeCacheKey(content)

	if cached, hit := s.htmlCache.Get(cacheKey); hit {
		return cached, nil
	}

	var buf strings.Builder
	if err := s.mdParser.Convert([]byte(content), &buf); err != nil {
		return "", err
	}

	safeHTML := s.policy.Sanitize(buf.String())

	s.htmlCache.Set(cacheKey, safeHTML)

	return safeHTML, nil
}

// SanitizeHTML applies the allow-list to an HTML string without any Markdown
// conversion.
func (s *Service) SanitizeHTML(htmlContent string) string {
	cacheKey := computeCacheKey(htmlContent)

	if cached, hit := s.sanitizeCache.Get(cacheKey); hit {
		return cached
	}

	safeHTML := s.policy.Sanitize(htmlContent)

	s.sanitizeCache.Set(cacheKey, safeHTML)

	return safeHTML
}

// PlainText strips all markup from an HTML string, keeping only the text
// content. Used to build excerpts for the feed.
func (s *Service) PlainText(htmlContent string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(htmlContent))
	var b strings.Builder
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			text := strings.TrimSpace(string(tokenizer.Text()))
			if text == "" {
				continue
			}
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(text)
		}
	}
	return b.String()
}

// ClearCaches drops both render caches.
func (s *Service) ClearCaches() {
	s.htmlCache.Clear()
	s.sanitizeCache.Clear()
}
