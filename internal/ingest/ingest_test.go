package ingest

import (
	"strings"
	"testing"
)

func TestText_PlainTextPassesThrough(t *testing.T) {
	in := "1. Scope\nThe supplier shall deliver.\n"
	got, err := Text([]byte(in))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if got != in {
		t.Fatalf("expected passthrough, got %q", got)
	}
}

func TestText_HTMLDocument(t *testing.T) {
	page := `<!doctype html>
	<html>
	  <head><title>Contract</title><style>p{color:red}</style></head>
	  <body>
	    <nav>Site navigation</nav>
	    <main>
	      <h2>1. Scope</h2>
	      <p>The supplier shall deliver.</p>
	      <h2>2. Term</h2>
	    </main>
	    <footer>Generated by exporter</footer>
	  </body>
	</html>`

	got, err := Text([]byte(page))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if !strings.Contains(got, "1. Scope") || !strings.Contains(got, "2. Term") {
		t.Fatalf("expected headings in extracted text, got %q", got)
	}
	if !strings.Contains(got, "The supplier shall deliver.") {
		t.Fatalf("expected body paragraph, got %q", got)
	}
	if strings.Contains(got, "Site navigation") || strings.Contains(got, "Generated by exporter") {
		t.Fatalf("expected chrome to be skipped, got %q", got)
	}
	if strings.Contains(got, "color:red") {
		t.Fatalf("expected head content to be skipped, got %q", got)
	}
}

func TestText_HTMLHeadingsKeepTheirOwnLines(t *testing.T) {
	page := `<html><body><h2>1. Scope</h2><p>Body text follows.</p></body></html>`
	got, err := Text([]byte(page))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	for _, line := range strings.Split(got, "\n") {
		if strings.Contains(line, "1. Scope") && strings.Contains(line, "Body text") {
			t.Fatalf("heading and body share a line: %q", line)
		}
	}
}

func TestText_FallsBackToBodyWithoutMain(t *testing.T) {
	page := `<html><body><p>3. Fees</p></body></html>`
	got, err := Text([]byte(page))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if !strings.Contains(got, "3. Fees") {
		t.Fatalf("expected body text, got %q", got)
	}
}

func TestText_NFCNormalizesDecomposedInput(t *testing.T) {
	// "é" as 'e' + combining acute must come out precomposed.
	in := "Clément"
	got, err := Text([]byte(in))
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if got != "Clément" {
		t.Fatalf("expected NFC output, got %q", got)
	}
}

func TestLooksLikeHTML(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want bool
	}{
		{"doctype", "<!DOCTYPE html><html></html>", true},
		{"bareHTMLTag", "  \n<html lang=\"en\"><body></body></html>", true},
		{"plainText", "1. Scope\n", false},
		{"angleBracketProse", "payment < 30 days", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := looksLikeHTML([]byte(tc.in)); got != tc.want {
				t.Fatalf("looksLikeHTML(%q) = %t, want %t", tc.in, got, tc.want)
			}
		})
	}
}
