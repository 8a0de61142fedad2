// Package ingest turns uploaded document bytes into plain text for clause
// extraction. PDF pages go through MuPDF, HTML through a DOM walk, anything
// else is taken as UTF-8 text. Extraction is best effort; scanned PDFs and
// exotic encodings may come out lossy.
package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
	"golang.org/x/text/unicode/norm"
)

var pdfMagic = []byte("%PDF-")

// Text extracts plain text from document bytes, sniffing the format from the
// content. The result is NFC-normalized so downstream string comparison is
// stable across producers.
func Text(data []byte) (string, error) {
	switch {
	case bytes.HasPrefix(data, pdfMagic):
		text, err := fromPDF(data)
		if err != nil {
			return "", err
		}
		return norm.NFC.String(text), nil
	case looksLikeHTML(data):
		return norm.NFC.String(fromHTML(data)), nil
	default:
		return norm.NFC.String(string(data)), nil
	}
}

func fromPDF(data []byte) (string, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for page := 0; page < doc.NumPage(); page++ {
		text, err := doc.Text(page)
		if err != nil {
			return "", fmt.Errorf("extract pdf page %d: %w", page+1, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// looksLikeHTML sniffs for an HTML document without trusting file extensions.
func looksLikeHTML(data []byte) bool {
	head := data
	if len(head) > 1024 {
		head = head[:1024]
	}
	lower := strings.ToLower(string(bytes.TrimLeft(head, " \t\r\n\xef\xbb\xbf")))
	return strings.HasPrefix(lower, "<!doctype html") ||
		strings.HasPrefix(lower, "<html") ||
		strings.Contains(lower, "<html ") ||
		strings.Contains(lower, "<html>")
}
