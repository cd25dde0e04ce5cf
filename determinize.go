package fsa

// DefaultStateLimit bounds the number of states a Constructor may register
// when its Limit is not set.
const DefaultStateLimit = 4096

// Constructor turns an automaton into an equivalent deterministic one by
// breadth-first exploration of the reachable subsets of its states. A
// Constructor holds no state between calls.
type Constructor struct {
	// Limit is the maximum number of subset states; zero or less means
	// DefaultStateLimit.
	Limit int
}

func (c *Constructor) limit() int {
	if c == nil || c.Limit <= 0 {
		return DefaultStateLimit
	}
	return c.Limit
}

// subsets is the worklist and the registry of one construction.
type subsets struct {
	src   *Automaton
	dst   *Automaton
	limit int
	names map[string]State
	queue *FIFO[StateSet]
}

// register returns the name of set, naming and enqueueing it on first sight.
// Finality is decided here and nowhere else.
func (s *subsets) register(set StateSet) (State, error) {
	if name, ok := s.names[set.Key()]; ok {
		return name, nil
	}
	if !s.queue.Push(set) {
		return "", &TooLargeError{Limit: s.limit}
	}
	kind := Normal
	if set.Intersects(s.src.final) {
		kind = Final
	}
	name := NewState(kind, s.queue.Pushed()-1)
	s.names[set.Key()] = name
	s.dst.states[name] = struct{}{}
	s.dst.origin[name] = set
	if kind == Final {
		s.dst.final[name] = true
	}
	return name, nil
}

func (s *subsets) step(set StateSet, symbol rune) StateSet {
	next := make(map[State]struct{})
	for _, st := range set {
		for _, to := range s.src.table.Lookup(st, symbol) {
			next[to] = struct{}{}
		}
	}
	return stateSetOf(next)
}

// Construct returns a new deterministic automaton accepting the language of
// src. States are named q<n> or f<n> in discovery order. src is not modified.
func (c *Constructor) Construct(src *Automaton) (*Automaton, error) {
	if !src.built() {
		return nil, ErrNoInitialState
	}
	limit := c.limit()
	s := &subsets{
		src:   src,
		limit: limit,
		names: make(map[string]State),
		queue: NewFIFO[StateSet](limit),
		dst: &Automaton{
			ID:            ID(),
			Name:          src.Name,
			states:        make(map[State]struct{}),
			final:         make(map[State]bool),
			table:         NewTable(),
			deterministic: true,
			origin:        make(map[State]StateSet),
		},
	}
	initial, err := s.register(NewStateSet(src.initial))
	if err != nil {
		return nil, err
	}
	s.dst.initial = initial
	s.dst.table.addState(initial)
	alphabet := src.table.Alphabet()
	for {
		cur, ok := s.queue.Pop()
		if !ok {
			break
		}
		from := s.names[cur.Key()]
		for _, symbol := range alphabet {
			next := s.step(cur, symbol)
			if next.Len() == 0 {
				continue
			}
			to, err := s.register(next)
			if err != nil {
				return nil, err
			}
			s.dst.table.Add(from, symbol, to)
		}
	}
	return s.dst, nil
}

// Determinize runs a default Constructor over a and returns the result with
// its printable transition listing.
func Determinize(a *Automaton) (*Automaton, string, error) {
	c := &Constructor{}
	d, err := c.Construct(a)
	if err != nil {
		return nil, "", err
	}
	return d, d.Listing(), nil
}
