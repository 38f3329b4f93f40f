package form

// ScrollLock controls the host page's background scroll state while the
// modal is open. Implementations are read-then-set from the controller under
// its own lock, so they only need to be safe for that single caller.
type ScrollLock interface {
	Locked() bool
	SetLocked(locked bool)
}

// PageScroll is a plain boolean scroll flag for hosts without their own
// lock implementation.
type PageScroll struct {
	locked bool
}

func (p *PageScroll) Locked() bool {
	return p.locked
}

func (p *PageScroll) SetLocked(locked bool) {
	p.locked = locked
}
