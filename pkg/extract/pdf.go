package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
)

// TextExtractor pulls plain text out of an uploaded document. The core
// only requires "text or nothing": after the bounded retries an
// unreadable file yields an empty string, not an error.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte) string
}

const (
	maxAttempts = 5
	baseDelay   = 500 * time.Millisecond
	// Anything shorter is almost certainly a failed parse (signed or
	// image-only PDFs produce a handful of stray glyphs).
	minUsableChars = 100
)

type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) ExtractText(ctx context.Context, data []byte) string {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		text, err := parseOnce(data)
		if err == nil && len(strings.TrimSpace(text)) >= minUsableChars {
			return text
		}

		// Damaged cross-reference tables (DocuSign output, scanner
		// exports) often fail whole-document extraction but still
		// yield text page by page.
		if recovered := recoverPerPage(data); len(strings.TrimSpace(recovered)) > 50 {
			return recovered
		}

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return ""
			case <-time.After(time.Duration(attempt) * baseDelay):
			}
		}
	}
	return ""
}

func parseOnce(data []byte) (text string, err error) {
	defer func() {
		// The parser panics on some malformed files.
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse panic: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	if _, err := io.Copy(&sb, plain); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func recoverPerPage(data []byte) (text string) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String()
}
