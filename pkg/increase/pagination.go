package increase

import (
	"context"
	"iter"
)

// Page is one page of a list endpoint. NextCursor is nil on the last page.
type Page[T any] struct {
	Data       []T
	NextCursor *string
}

// HasNextPage reports whether another page can be requested.
func (p *Page[T]) HasNextPage() bool {
	return p.NextCursor != nil && *p.NextCursor != ""
}

// PageFunc fetches the page starting at cursor; the empty cursor is the first page.
type PageFunc[T any] func(ctx context.Context, cursor string) (*Page[T], error)

// PaginationIterator walks every item of a list endpoint. Pages are fetched on
// demand, one request at a time: nothing is requested before the first call to
// HasNext or Next, and the next page is only requested once the current one is
// exhausted.
type PaginationIterator[T any] struct {
	ctx    context.Context
	fetch  PageFunc[T]
	items  []T
	pos    int
	cursor string
	done   bool
	err    error
	pages  int
}

// NewPaginationIterator creates a new pagination iterator.
func NewPaginationIterator[T any](ctx context.Context, fetch PageFunc[T]) *PaginationIterator[T] {
	return &PaginationIterator[T]{
		ctx:   ctx,
		fetch: fetch,
	}
}

func (p *PaginationIterator[T]) fill() bool {
	for p.pos >= len(p.items) {
		if p.done || p.err != nil {
			return false
		}

		page, err := p.fetch(p.ctx, p.cursor)
		p.pages++

		if err != nil {
			p.err = err

			return false
		}

		p.items = page.Data
		p.pos = 0

		if page.HasNextPage() {
			p.cursor = *page.NextCursor
		} else {
			p.done = true
		}
	}

	return true
}

// HasNext checks if there are more items, fetching the next page if needed.
func (p *PaginationIterator[T]) HasNext() bool {
	return p.fill()
}

// Next returns the next item.
func (p *PaginationIterator[T]) Next() (T, error) {
	var zero T

	if !p.fill() {
		if p.err != nil {
			return zero, p.err
		}

		return zero, ErrNoMoreItems
	}

	item := p.items[p.pos]
	p.pos++

	return item, nil
}

// Err returns the error that stopped iteration, if any.
func (p *PaginationIterator[T]) Err() error {
	return p.err
}

// PagesFetched returns the number of page requests issued so far.
func (p *PaginationIterator[T]) PagesFetched() int {
	return p.pages
}

// All fetches all remaining items.
func (p *PaginationIterator[T]) All() ([]T, error) {
	var all []T

	for p.HasNext() {
		item, err := p.Next()
		if err != nil {
			return nil, err
		}

		all = append(all, item)
	}

	if p.err != nil {
		return nil, p.err
	}

	return all, nil
}

// ForEach calls fn for each remaining item, stopping at the first error.
func (p *PaginationIterator[T]) ForEach(fn func(T) error) error {
	for p.HasNext() {
		item, err := p.Next()
		if err != nil {
			return err
		}

		err = fn(item)
		if err != nil {
			return err
		}
	}

	return p.err
}

// Seq adapts the iterator for range-over-func. A fetch error is yielded once
// with the zero item and ends the sequence. Breaking out of the loop stops
// further fetches.
func (p *PaginationIterator[T]) Seq() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for p.HasNext() {
			item, err := p.Next()
			if !yield(item, err) || err != nil {
				return
			}
		}

		if p.err != nil {
			var zero T

			yield(zero, p.err)
		}
	}
}

// PaginationOptions bounds FetchAllPages.
type PaginationOptions struct {
	// MaxPages stops after this many pages. Zero means no limit.
	MaxPages int
}

// FetchAllPages collects the items of consecutive pages.
func FetchAllPages[T any](ctx context.Context, fetch PageFunc[T], opts *PaginationOptions) ([]T, error) {
	var (
		all    []T
		cursor string
	)

	for pages := 1; ; pages++ {
		page, err := fetch(ctx, cursor)
		if err != nil {
			return nil, err
		}

		all = append(all, page.Data...)

		if !page.HasNextPage() {
			return all, nil
		}

		if opts != nil && opts.MaxPages > 0 && pages >= opts.MaxPages {
			return all, nil
		}

		cursor = *page.NextCursor
	}
}
