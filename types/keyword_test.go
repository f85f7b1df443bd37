package types

import "testing"

func TestNormalizeTerm(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Form Builder", "form builder"},
		{"  online   form  ", "online form"},
		{"SEO", "seo"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := NormalizeTerm(tc.in); got != tc.want {
			t.Errorf("NormalizeTerm(%q)=%q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidTimeRange(t *testing.T) {
	for _, tr := range []TimeRange{TimeRangeWeek, TimeRangeMonth, TimeRangeYear} {
		if !ValidTimeRange(tr) {
			t.Errorf("ValidTimeRange(%q)=false", tr)
		}
	}
	for _, tr := range []TimeRange{"", "decade", "Month"} {
		if ValidTimeRange(tr) {
			t.Errorf("ValidTimeRange(%q)=true", tr)
		}
	}
}

func TestExcerpt(t *testing.T) {
	p := PageContent{BodyText: "abcdefghij"}
	if got := p.Excerpt(4); got != "abcd" {
		t.Errorf("Excerpt(4)=%q", got)
	}
	if got := p.Excerpt(100); got != "abcdefghij" {
		t.Errorf("Excerpt(100)=%q", got)
	}
}
