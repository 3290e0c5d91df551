package inquire

import "sync"

// Injector holds one pre-supplied answer for a session, so that the session
// runs headless: the answer goes straight through validation and the terminal
// input is never opened.
//
// The value is consumed once. A session that took an injected answer which
// then failed validation returns ErrInjectedValueRejected instead of waiting
// for a corrected answer that nobody can type.
//
// Example:
//
//	inj := inquire.NewInjector()
//	inj.Set("Ann")
//	name, err := inquire.Ask(inquire.NewText(), "Name", inquire.WithInjector(inj))
type Injector struct {
	mu    sync.Mutex
	value any
	set   bool
}

// NewInjector returns an empty injector.
func NewInjector() *Injector {
	return &Injector{}
}

// Set stores v as the next answer, replacing any pending one. A nil v is an
// absent answer: the configured default applies.
func (i *Injector) Set(v any) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.value = v
	i.set = true
}

// Pending reports whether an answer is waiting to be consumed.
func (i *Injector) Pending() bool {
	if i == nil {
		return false
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.set
}

// Release drops any pending answer.
func (i *Injector) Release() {
	if i == nil {
		return
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.value = nil
	i.set = false
}

// take returns the pending answer and clears the slot.
func (i *Injector) take() (any, bool) {
	if i == nil {
		return nil, false
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	if !i.set {
		return nil, false
	}
	v := i.value
	i.value = nil
	i.set = false
	return v, true
}
