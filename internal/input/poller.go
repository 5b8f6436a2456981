package input

// KeyPoller tracks one key across poll cycles and derives a rising edge.
//
// Poll must be called at most once per cycle; KeyDown is true only for the
// cycle in which the key went from released to held.
type KeyPoller struct {
	key   Key
	state KeyState

	current bool
	last    bool
}

// NewKeyPoller binds a poller to key, sampling it from state.
func NewKeyPoller(state KeyState, key Key) *KeyPoller {
	return &KeyPoller{key: key, state: state}
}

// Key returns the key this poller is bound to.
func (p *KeyPoller) Key() Key {
	return p.key
}

// Poll shifts the current sample to last and takes a new one.
func (p *KeyPoller) Poll() {
	p.last = p.current
	p.current = p.state.Held(p.key)
}

// KeyDown reports a press that started in the most recent poll.
func (p *KeyPoller) KeyDown() bool {
	return p.current && !p.last
}
