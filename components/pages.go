package components

import (
	"sync"

	"github.com/automoto/showcase/page"
	"github.com/automoto/showcase/pages"
	"github.com/automoto/showcase/transition"
	"github.com/yohamta/donburi"
)

// PageLoad is the outcome of loading one page off the main goroutine
type PageLoad struct {
	Key  string
	Page *page.Page
	Err  error
}

// LoadQueue hands finished loads from loader goroutines to the main loop
type LoadQueue struct {
	mu   sync.Mutex
	done []PageLoad
}

// Push records a finished load.
func (q *LoadQueue) Push(r PageLoad) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.done = append(q.done, r)
}

// Drain returns and clears the finished loads.
func (q *LoadQueue) Drain() []PageLoad {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.done
	q.done = nil
	return out
}

// PagesData is the page controller state
type PagesData struct {
	Registry *pages.Registry
	Runtime  *page.Runtime

	// Cache holds built pages by key
	Cache map[string]*page.Page
	Fade  *transition.PageFade[string]

	// Loading holds keys with a load in flight
	Loading map[string]bool
	Results *LoadQueue

	// Attached is the page whose nodes are on stage
	Attached *page.Page

	// Load runs a page load; nil means page.Load on a new goroutine
	Load func(p *page.Page, done func(error))
	// Visited is called with every page key that becomes current
	Visited func(key string)
}

var Pages = donburi.NewComponentType[PagesData]()
