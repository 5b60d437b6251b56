// internal/view/window.go
package view

import "github.com/phishdash/phishdash-backend/internal/model"

const DefaultPageSize = 5

// Window presents the email list incrementally rather than all at once.
// source is a snapshot taken at Reset time; concurrent mutation of the
// underlying record is invisible until the next Reset.
type Window struct {
    pageSize    int
    currentPage int
    source      []model.EmailProfile
    visible     []model.EmailProfile
}

func NewWindow(pageSize int) *Window {
    if pageSize < 1 {
        pageSize = DefaultPageSize
    }
    return &Window{pageSize: pageSize, currentPage: 1}
}

// Reset snapshots the full list, shows the first page and returns to page 1.
// Called whenever the record identity or page size changes.
func (w *Window) Reset(emails []model.EmailProfile) {
    w.source = make([]model.EmailProfile, len(emails))
    copy(w.source, emails)
    w.visible = pageSlice(w.source, 0, w.pageSize)
    w.currentPage = 1
}

// Expand appends the next page's slice to the visible items. Past the end the
// slice is empty and visible stays unchanged, but the page counter still
// increments — kept for compatibility with the original dashboard.
func (w *Window) Expand() {
    nextPage := w.currentPage + 1
    start := (nextPage - 1) * w.pageSize
    w.visible = append(w.visible, pageSlice(w.source, start, start+w.pageSize)...)
    w.currentPage = nextPage
}

// Collapse decrements the page and replaces the visible items with exactly
// that single page's slice. This is deliberately NOT the inverse of Expand:
// it drops every already-loaded page rather than removing the last one. The
// original behaves this way and callers depend on it. No-op at page 1, where
// the control is unreachable.
func (w *Window) Collapse() {
    if w.currentPage <= 1 {
        return
    }
    prevPage := w.currentPage - 1
    start := (prevPage - 1) * w.pageSize
    w.visible = pageSlice(w.source, start, start+w.pageSize)
    w.currentPage = prevPage
}

func (w *Window) Visible() []model.EmailProfile {
    return w.visible
}

func (w *Window) Source() []model.EmailProfile {
    return w.source
}

func (w *Window) Page() int {
    return w.currentPage
}

func (w *Window) PageSize() int {
    return w.pageSize
}

// pageSlice clamps [start, end) to the source bounds; slicing beyond the end
// yields a shorter or empty result, never a panic.
func pageSlice(source []model.EmailProfile, start, end int) []model.EmailProfile {
    if start < 0 {
        start = 0
    }
    if start > len(source) {
        start = len(source)
    }
    if end > len(source) {
        end = len(source)
    }
    out := make([]model.EmailProfile, end-start)
    copy(out, source[start:end])
    return out
}
