package crawl

import "sync"

// Frontier is a FIFO crawl queue with an exact visited set. Push, Claim and
// Seen each run as a single critical section so the same URL is never
// handed out twice, even under concurrent use.
//
// The visited set is an exact map rather than a probabilistic structure: a
// false positive would silently drop a page from the crawl.
type Frontier struct {
	mu    sync.Mutex
	queue []string
	seen  map[string]struct{}
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{seen: make(map[string]struct{})}
}

// Push enqueues a URL unless it has already been queued or claimed.
// Returns false for duplicates.
func (f *Frontier) Push(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.seen[url]; ok {
		return false
	}
	f.seen[url] = struct{}{}
	f.queue = append(f.queue, url)
	return true
}

// Claim dequeues the next URL in breadth-first order. The bool result is
// false if the frontier is empty. A claimed URL stays in the visited set
// and can never be claimed again.
func (f *Frontier) Claim() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.queue) == 0 {
		return "", false
	}
	url := f.queue[0]
	f.queue = f.queue[1:]
	return url, true
}

// Len returns the number of queued, unclaimed URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen reports whether the URL has been queued or claimed.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.seen[url]
	return ok
}
