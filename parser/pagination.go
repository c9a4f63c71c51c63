package parser

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParsePageCount reads the number of listing pages from the pagination
// control. The last item is the "next" arrow, so the page count is the
// link text of the second-to-last item.
func (p *Parser) ParsePageCount(htmlContent []byte) (int, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlContent))
	if err != nil {
		return 0, fmt.Errorf("%w: failed to parse HTML: %v", ErrParse, err)
	}

	pagination := doc.Find("div.pagination").First()
	if pagination.Length() == 0 {
		return 0, fmt.Errorf("%w: pagination not found", ErrParse)
	}

	items := pagination.Find("li")
	if items.Length() < 2 {
		return 0, fmt.Errorf("%w: pagination has %d items, need at least 2", ErrParse, items.Length())
	}

	link := items.Eq(items.Length() - 2).Find("a").First()
	if link.Length() == 0 {
		return 0, fmt.Errorf("%w: last page link not found", ErrParse)
	}

	text := strings.TrimSpace(link.Text())
	count, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid page count %q", ErrParse, text)
	}
	if count < 1 {
		return 0, fmt.Errorf("%w: invalid page count %d", ErrParse, count)
	}

	return count, nil
}
