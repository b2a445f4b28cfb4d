// Package navigation holds the site menu and the scroll state that restyles it.
package navigation

import (
	"strings"
	"sync"
)

// ScrollThreshold is the vertical offset, in pixels, past which the bar counts as scrolled.
const ScrollThreshold = 20.0

type Item struct {
	Href   string
	Label  string
	Active bool
}

var items = []Item{
	{Href: "/", Label: "Home"},
	{Href: "/dashboard", Label: "Dashboard"},
	{Href: "/workflow", Label: "How It Works"},
	{Href: "/upload", Label: "Upload"},
	{Href: "/partner", Label: "Partners"},
	{Href: "/about", Label: "About"},
	{Href: "/contact", Label: "Contact"},
}

// Items returns the menu with the entry matching path marked active.
func Items(path string) []Item {
	out := append([]Item(nil), items...)
	for i := range out {
		out[i].Active = isActive(out[i].Href, path)
	}
	return out
}

func isActive(href, path string) bool {
	if href == "/" {
		return path == "/" || path == ""
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

// ScrollTracker publishes scrolled/not-scrolled transitions to its subscribers.
// Each page owns its own tracker.
type ScrollTracker struct {
	mu       sync.Mutex
	scrolled bool
	nextID   int
	subs     map[int]func(scrolled bool)
}

func NewScrollTracker() *ScrollTracker {
	return &ScrollTracker{subs: make(map[int]func(bool))}
}

// Subscribe registers fn and returns the matching unsubscribe function.
func (t *ScrollTracker) Subscribe(fn func(scrolled bool)) (unsubscribe func()) {
	t.mu.Lock()
	id := t.nextID
	t.nextID++
	t.subs[id] = fn
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			delete(t.subs, id)
			t.mu.Unlock()
		})
	}
}

// Update records a new scroll offset; subscribers hear only state changes.
func (t *ScrollTracker) Update(y float64) {
	scrolled := y > ScrollThreshold

	t.mu.Lock()
	if scrolled == t.scrolled {
		t.mu.Unlock()
		return
	}
	t.scrolled = scrolled
	fns := make([]func(bool), 0, len(t.subs))
	for _, fn := range t.subs {
		fns = append(fns, fn)
	}
	t.mu.Unlock()

	for _, fn := range fns {
		fn(scrolled)
	}
}

func (t *ScrollTracker) Scrolled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.scrolled
}

// Bar is one mounted navigation bar.
type Bar struct {
	mu          sync.Mutex
	path        string
	scrolled    bool
	menuOpen    bool
	unsubscribe func()
}

func NewBar(path string) *Bar {
	return &Bar{path: path}
}

// Mount subscribes the bar to t. Mounting again moves the subscription.
func (b *Bar) Mount(t *ScrollTracker) {
	b.Unmount()
	unsub := t.Subscribe(func(scrolled bool) {
		b.mu.Lock()
		b.scrolled = scrolled
		b.mu.Unlock()
	})

	b.mu.Lock()
	b.scrolled = t.Scrolled()
	b.unsubscribe = unsub
	b.mu.Unlock()
}

func (b *Bar) Unmount() {
	b.mu.Lock()
	unsub := b.unsubscribe
	b.unsubscribe = nil
	b.mu.Unlock()
	if unsub != nil {
		unsub()
	}
}

func (b *Bar) Scrolled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.scrolled
}

// ToggleMenu opens or closes the mobile menu.
func (b *Bar) ToggleMenu() {
	b.mu.Lock()
	b.menuOpen = !b.menuOpen
	b.mu.Unlock()
}

func (b *Bar) MenuOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.menuOpen
}

func (b *Bar) Items() []Item {
	return Items(b.path)
}
