package scraper

import (
	"errors"
	"strings"
	"testing"

	"seoagent/types"
)

const pageURL = "https://experienceleague.adobe.com/en/docs/experience-manager-cloud-service/content/forms/validation"

func contentPage(title, body string) string {
	return `<!DOCTYPE html>
<html><head><title>` + title + `</title>
<script>window.tracker = "should never appear";</script>
<style>.hidden { display: none; }</style>
</head><body>
<nav>Home | Docs | Pricing</nav>
<header>Site chrome header</header>
<main>
<h1>` + title + `</h1>
<h2>Validation rules</h2>
<h3>Error messages</h3>
<p>` + body + `</p>
</main>
<footer>Copyright footer text</footer>
</body></html>`
}

func longBody() string {
	return strings.Repeat("Validation rules ensure every submission carries usable data. ", 10)
}

func TestExtractTitleHeadingsAndBody(t *testing.T) {
	content, err := Extract(contentPage("Configuring form validation", longBody()), pageURL)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	if content.Title != "Configuring form validation" {
		t.Errorf("Title=%q", content.Title)
	}
	if content.URL != pageURL {
		t.Errorf("URL=%q", content.URL)
	}
	if len(content.Headings) < 2 {
		t.Fatalf("Headings=%v, want the h1-h3 set", content.Headings)
	}
	if !strings.Contains(content.BodyText, "usable data") {
		t.Errorf("body text missing paragraph content: %q", content.BodyText[:80])
	}
}

func TestExtractStripsChrome(t *testing.T) {
	content, err := Extract(contentPage("Some title", longBody()), pageURL)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}

	for _, chrome := range []string{"should never appear", "display: none", "Site chrome header", "Copyright footer"} {
		if strings.Contains(content.BodyText, chrome) {
			t.Errorf("body text contains stripped element content %q", chrome)
		}
	}
}

func TestExtractFallsBackToH1Title(t *testing.T) {
	html := `<html><head></head><body><main><h1>Heading title</h1><p>` + longBody() + `</p></main></body></html>`
	content, err := Extract(html, pageURL)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	if content.Title != "Heading title" {
		t.Errorf("Title=%q, want h1 fallback", content.Title)
	}
}

func TestExtractNoTitle(t *testing.T) {
	html := `<html><body><p>` + longBody() + `</p></body></html>`
	_, err := Extract(html, pageURL)
	var pe *types.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError for missing title, got %v", err)
	}
}

func TestExtractTooLittleContent(t *testing.T) {
	html := `<html><head><title>Thin page</title></head><body><p>Almost empty.</p></body></html>`
	_, err := Extract(html, pageURL)
	var pe *types.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected ParseError for thin content, got %v", err)
	}
}

func TestExtractSkipsShortHeadings(t *testing.T) {
	html := `<html><head><title>Page</title></head><body><main>
<h2>OK</h2>
<h2>A meaningful heading</h2>
<p>` + longBody() + `</p></main></body></html>`
	content, err := Extract(html, pageURL)
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	for _, h := range content.Headings {
		if h == "OK" {
			t.Errorf("heading %q should have been dropped as too short", h)
		}
	}
}
