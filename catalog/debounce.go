package catalog

import (
	"sync"
	"time"

	"github.com/Tuka1911/dymokminiapp/models"
)

// DefaultQuietPeriod is how long the search term must stay unchanged
// before the filtered view is recomputed.
const DefaultQuietPeriod = 300 * time.Millisecond

// Debouncer runs a task once the quiet period elapses without another
// Trigger. Each Trigger replaces the pending task; Stop cancels whatever
// is pending and rejects further triggers.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	stopped bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultQuietPeriod
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, cancelling any previously
// scheduled task.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending task, if any. Tied to component teardown.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// LiveFilter keeps a debounced, filtered view of the catalog. Keystrokes
// go in through SetTerm/SetSort; once the term has been quiet for the
// configured period the view is recomputed and pushed to onUpdate.
type LiveFilter struct {
	provider Provider
	debounce *Debouncer
	onUpdate func([]models.Product)

	mu   sync.Mutex
	term string
	sort SortOption
	view []models.Product
}

// NewLiveFilter starts with the unfiltered catalog as its view. onUpdate
// may be nil when only Results polling is needed.
func NewLiveFilter(provider Provider, quiet time.Duration, onUpdate func([]models.Product)) *LiveFilter {
	return &LiveFilter{
		provider: provider,
		debounce: NewDebouncer(quiet),
		onUpdate: onUpdate,
		view:     provider.ListProducts(),
	}
}

// SetTerm records a keystroke and resets the quiet-period timer.
func (f *LiveFilter) SetTerm(term string) {
	f.mu.Lock()
	f.term = term
	f.mu.Unlock()
	f.debounce.Trigger(f.recompute)
}

// SetSort changes the sort option; recomputation is debounced the same
// way as for search terms.
func (f *LiveFilter) SetSort(opt SortOption) {
	f.mu.Lock()
	f.sort = opt
	f.mu.Unlock()
	f.debounce.Trigger(f.recompute)
}

// Results returns the current view.
func (f *LiveFilter) Results() []models.Product {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.Product, len(f.view))
	copy(out, f.view)
	return out
}

// Close cancels any pending recomputation. Safe to call more than once.
func (f *LiveFilter) Close() {
	f.debounce.Stop()
}

func (f *LiveFilter) recompute() {
	f.mu.Lock()
	term, opt := f.term, f.sort
	f.mu.Unlock()

	view := Filter(f.provider.ListProducts(), term, opt)

	f.mu.Lock()
	f.view = view
	f.mu.Unlock()

	if f.onUpdate != nil {
		f.onUpdate(view)
	}
}
