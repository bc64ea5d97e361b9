package resume

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ExtractText flattens a PDF into one text blob: fragments on a page joined
// with single spaces, pages joined with newlines.
func ExtractText(data []byte) (text string, err error) {
	// The pdf package panics on some malformed inputs; surface those as
	// parse errors so a bad upload fails the request, not the process.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("pdf parse failed: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("pdf parse failed: %w", err)
	}

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		var fragments []string
		for _, t := range page.Content().Text {
			if t.S != "" {
				fragments = append(fragments, t.S)
			}
		}
		pages = append(pages, strings.Join(fragments, " "))
	}
	return strings.Join(pages, "\n"), nil
}
