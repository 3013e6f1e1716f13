// Package history keeps the browsing history of a single tab as a doubly linked list
// with a cursor on the current entry.
package history

import (
	"container/list"
	"fmt"
	"io"
	"strings"
	"time"
)

// Blank is the URL of an empty entry
const Blank = "about:blank"

// Tab is a single entry of the history
type Tab struct {
	URL     string
	Visited time.Time
}

// Option configures a history on construction
type Option func(*History)

// WithClock replaces the clock used to timestamp the entries
func WithClock(now func() time.Time) Option {
	return func(h *History) {
		if now != nil {
			h.now = now
		}
	}
}

// History is a browsing history with a current entry. It always holds at least one
// entry and is not safe for concurrent use.
type History struct {
	tabs    *list.List
	current *list.Element
	now     func() time.Time
}

// New creates a history holding a single blank entry
func New(opts ...Option) *History {
	h := &History{
		tabs: list.New(),
		now:  time.Now,
	}

	for _, opt := range opts {
		opt(h)
	}

	h.current = h.tabs.PushBack(h.tab(Blank))
	return h
}

func (h *History) tab(url string) *Tab {
	return &Tab{URL: url, Visited: h.now()}
}

// Go navigates the current entry to the URL
func (h *History) Go(url string) {
	tab := h.current.Value.(*Tab)
	tab.URL = url
	tab.Visited = h.now()
}

// Insert opens the URL in a new entry right after the current one and makes it current.
// Entries ahead of the current one are kept.
func (h *History) Insert(url string) {
	h.current = h.tabs.InsertAfter(h.tab(url), h.current)
}

// Back moves to the previous entry, if any
func (h *History) Back() {
	if prev := h.current.Prev(); prev != nil {
		h.current = prev
	}
}

// Forward moves to the next entry, if any
func (h *History) Forward() {
	if next := h.current.Next(); next != nil {
		h.current = next
	}
}

// Remove removes the current entry. The next entry becomes current, or the previous one
// when removing the last entry. The only remaining entry is reset to blank instead.
func (h *History) Remove() {
	if h.tabs.Len() == 1 {
		h.Go(Blank)
		return
	}

	removed := h.current
	switch next := removed.Next(); next {
	case nil:
		h.current = removed.Prev()
	default:
		h.current = next
	}
	h.tabs.Remove(removed)
}

// Current returns the current entry
func (h *History) Current() Tab {
	return *h.current.Value.(*Tab)
}

// Len returns the number of entries
func (h *History) Len() int {
	return h.tabs.Len()
}

// Tabs returns a copy of the entries, oldest first
func (h *History) Tabs() []Tab {
	out := make([]Tab, 0, h.tabs.Len())
	for e := h.tabs.Front(); e != nil; e = e.Next() {
		out = append(out, *e.Value.(*Tab))
	}
	return out
}

// Clone returns a deep copy of the history, with the cursor on the same entry
func (h *History) Clone() *History {
	clone := &History{
		tabs: list.New(),
		now:  h.now,
	}

	for e := h.tabs.Front(); e != nil; e = e.Next() {
		tab := *e.Value.(*Tab)
		copied := clone.tabs.PushBack(&tab)
		if e == h.current {
			clone.current = copied
		}
	}
	return clone
}

// Print writes one line per entry with its URL and unix timestamp. The current entry
// is prefixed with '>'.
func (h *History) Print(w io.Writer) error {
	for e := h.tabs.Front(); e != nil; e = e.Next() {
		if e == h.current {
			if _, err := io.WriteString(w, ">"); err != nil {
				return err
			}
		}

		tab := e.Value.(*Tab)
		if _, err := fmt.Fprintf(w, "%s %d\n", tab.URL, tab.Visited.Unix()); err != nil {
			return err
		}
	}
	return nil
}

// String renders the history the same way Print does
func (h *History) String() string {
	var sb strings.Builder
	_ = h.Print(&sb)
	return sb.String()
}
