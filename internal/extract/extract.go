package extract

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Document is the extraction result consumed by the generation pipeline.
type Document struct {
	Text      string
	PageCount int
}

// ErrNoText indicates the PDF has no recoverable text layer (e.g. a scan).
var ErrNoText = errors.New("no recoverable text in document")

// Extract pulls plain text and a page count from raw PDF bytes. Fragments
// within a page are joined with a space, pages with a newline, and
// percent-encoded runs are decoded best-effort.
func Extract(data []byte) (Document, error) {
	reader := bytes.NewReader(data)
	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return Document{}, fmt.Errorf("open pdf: %w", err)
	}

	total := pdfReader.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := extractPage(page)
		if err != nil {
			// A single unreadable page does not fail the document.
			continue
		}
		if text != "" {
			pages = append(pages, text)
		}
	}

	doc := Document{
		Text:      strings.Join(pages, "\n"),
		PageCount: total,
	}
	if strings.TrimSpace(doc.Text) == "" {
		return doc, ErrNoText
	}
	return doc, nil
}

func extractPage(page pdf.Page) (string, error) {
	rows, err := page.GetTextByRow()
	if err != nil {
		return "", err
	}

	var fragments []string
	for _, row := range rows {
		for _, word := range row.Content {
			s := strings.TrimSpace(word.S)
			if s == "" {
				continue
			}
			fragments = append(fragments, decodeRun(s))
		}
	}
	return strings.Join(fragments, " "), nil
}

// decodeRun percent-decodes a text run when it contains encoded bytes,
// keeping the original on malformed escapes.
func decodeRun(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
