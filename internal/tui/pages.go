// internal/tui/pages.go
//
// Pure pagination of word lists into fixed-geometry display pages. The core
// never stores a page cursor; the App owns "current page" as view state.

package tui

// Page is one screen's worth of display rows for a word pool.
type Page []string

// PaginateWords packs words into rows of at most width characters, then
// groups rows into pages of rowsPerPage. Words are packed greedily in the
// order given; a word longer than the width still gets a row of its own.
// The result is finite and rebuilding it from the same inputs yields the
// same pages.
func PaginateWords(words []string, width, rowsPerPage int) []Page {
	if len(words) == 0 || width < 1 || rowsPerPage < 1 {
		return nil
	}

	var rows []string
	row := ""
	for _, w := range words {
		if row == "" {
			row = w
			continue
		}
		if len(row)+1+len(w) <= width {
			row += " " + w
			continue
		}
		rows = append(rows, row)
		row = w
	}
	if row != "" {
		rows = append(rows, row)
	}

	var pages []Page
	for start := 0; start < len(rows); start += rowsPerPage {
		end := start + rowsPerPage
		if end > len(rows) {
			end = len(rows)
		}
		pages = append(pages, Page(rows[start:end]))
	}
	return pages
}
