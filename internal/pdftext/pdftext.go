// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftext reads the text layer of a PDF page by page. Only embedded
// text is extracted; scanned image-only pages yield empty text.
package pdftext

import (
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdiddy/pdf-extractor/pkg/types"
)

// pageSource is the slice of a PDF reader that text extraction needs.
// Pages are numbered from 1.
type pageSource interface {
	NumPage() int
	PageText(n int) (string, error)
}

// Extract returns the text of every page of the PDF at path, in page order,
// each followed by one newline. A document with no pages yields "". Any
// failure aborts the whole extraction.
func Extract(path string) (text string, err error) {
	defer func() {
		// The PDF parser panics on some malformed streams.
		if r := recover(); r != nil {
			text = ""
			err = &types.Error{Kind: types.KindPDFRead, Path: path, Err: fmt.Errorf("%v", r)}
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", &types.Error{Kind: types.KindPDFRead, Path: path, Err: err}
	}
	defer f.Close()

	text, err = joinPages(newReaderPages(r))
	if err != nil {
		return "", &types.Error{Kind: types.KindPDFRead, Path: path, Err: err}
	}
	return text, nil
}

// joinPages concatenates page text with a trailing newline per page.
func joinPages(src pageSource) (string, error) {
	var b strings.Builder
	for n := 1; n <= src.NumPage(); n++ {
		t, err := src.PageText(n)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", n, err)
		}
		b.WriteString(t)
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// readerPages adapts a pdf.Reader, sharing decoded fonts across pages.
type readerPages struct {
	r     *pdf.Reader
	fonts map[string]*pdf.Font
}

func newReaderPages(r *pdf.Reader) *readerPages {
	return &readerPages{r: r, fonts: make(map[string]*pdf.Font)}
}

func (p *readerPages) NumPage() int { return p.r.NumPage() }

func (p *readerPages) PageText(n int) (string, error) {
	page := p.r.Page(n)
	if page.V.IsNull() {
		return "", nil
	}
	for _, name := range page.Fonts() {
		if _, ok := p.fonts[name]; !ok {
			font := page.Font(name)
			p.fonts[name] = &font
		}
	}
	return page.GetPlainText(p.fonts)
}

// PageCount reports the number of pages in the PDF at path.
func PageCount(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, &types.Error{Kind: types.KindPDFRead, Path: path, Err: err}
	}
	defer f.Close()

	n, err := api.PageCount(f, nil)
	if err != nil {
		return 0, &types.Error{Kind: types.KindPDFRead, Path: path, Err: err}
	}
	return n, nil
}
