package scraper

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html/charset"

	"seoagent/config"
	"seoagent/types"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Extract strips markup from fetched HTML and returns the page's readable
// structure. Pages with no usable title or with less than
// config.MinContentLength characters of text fail with *types.ParseError.
func Extract(html, pageURL string) (types.PageContent, error) {
	data := toUTF8([]byte(html))

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return types.PageContent{}, &types.ParseError{URL: pageURL, Reason: err.Error()}
	}

	// Drop chrome and non-content elements before any text extraction
	doc.Find("script,noscript,style,nav,footer,header,aside,iframe").Each(func(i int, s *goquery.Selection) {
		s.Remove()
	})

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = strings.TrimSpace(doc.Find("h1").First().Text())
	}
	if title == "" {
		return types.PageContent{}, &types.ParseError{URL: pageURL, Reason: "no title found"}
	}

	var headings []string
	doc.Find("h1,h2,h3,h4").Each(func(i int, s *goquery.Selection) {
		if len(headings) >= config.MaxHeadings {
			return
		}
		t := strings.TrimSpace(s.Text())
		if len(t) > 3 {
			headings = append(headings, t)
		}
	})

	body := mainText(doc)
	if rt := readableText(data, pageURL); len(rt) > len(body) {
		body = rt
	}
	if len(body) < config.MinContentLength {
		return types.PageContent{}, &types.ParseError{URL: pageURL, Reason: "no meaningful content found"}
	}

	return types.PageContent{
		URL:      pageURL,
		Title:    title,
		BodyText: body,
		Headings: headings,
	}, nil
}

// mainText prefers a semantic content container, falling back to the whole
// document.
func mainText(doc *goquery.Document) string {
	for _, sel := range []string{"main", "article", `div[class*="content"]`, `div[class*="main"]`} {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			if t := foldSpace(s.Text()); len(t) >= config.MinContentLength {
				return t
			}
		}
	}
	return foldSpace(doc.Find("body").Text())
}

// readableText runs readability over the raw document. Errors are ignored:
// the goquery fallback already produced a candidate.
func readableText(data []byte, pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	article, err := readability.FromReader(bytes.NewReader(data), u)
	if err != nil {
		return ""
	}
	return foldSpace(article.TextContent)
}

func foldSpace(s string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(s, " "))
}

func toUTF8(data []byte) []byte {
	enc, _, _ := charset.DetermineEncoding(data, "")
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil || !utf8.Valid(decoded) {
		return data
	}
	return decoded
}
