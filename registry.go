package sampling

import (
	"fmt"
	"sort"
)

// SetProcess registers p under id, overwriting any previous entry. It
// always succeeds. A nil p is storable: the id then exists but RunProcess
// reports it undefined.
func (s *Sampler[T, R]) SetProcess(id int, p Process[R]) {
	if s.processes == nil {
		s.processes = make(map[int]Process[R])
	}
	s.processes[id] = p
}

// Process returns the computation registered under id. Fails with
// [ErrProcessNotFound] when id has no entry.
func (s *Sampler[T, R]) Process(id int) (Process[R], error) {
	p, ok := s.processes[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrProcessNotFound, id)
	}
	return p, nil
}

// HasProcess reports whether an entry exists under id, defined or not.
func (s *Sampler[T, R]) HasProcess(id int) bool {
	_, ok := s.processes[id]
	return ok
}

// EraseProcess removes the entry under id when present. It always returns
// [ErrProcessNotFound] for id, even when an entry was just removed: the
// registry treats "nothing registered here" as exceptional regardless of
// whether a removal happened. Callers that only need best-effort removal
// can discard the error; callers that must distinguish check HasProcess
// first.
func (s *Sampler[T, R]) EraseProcess(id int) error {
	delete(s.processes, id)
	return fmt.Errorf("%w: %d", ErrProcessNotFound, id)
}

// ClearProcesses removes every registry entry. It always succeeds.
func (s *Sampler[T, R]) ClearProcesses() {
	clear(s.processes)
}

// RunProcess invokes the computation registered under id and returns its
// result. It fails with [ErrProcessNotFound] when id has no entry and with
// [ErrProcessUndefined] when the entry holds no computation. The invocation
// is synchronous: exactly one computation runs per call, and any side
// effects it performs happen before RunProcess returns.
func (s *Sampler[T, R]) RunProcess(id int) (R, error) {
	p, ok := s.processes[id]
	if !ok {
		var zero R
		return zero, fmt.Errorf("%w: %d", ErrProcessNotFound, id)
	}
	if p == nil {
		var zero R
		return zero, fmt.Errorf("%w: %d", ErrProcessUndefined, id)
	}
	return p(), nil
}

// MustRunProcess is like RunProcess but panics on error.
func (s *Sampler[T, R]) MustRunProcess(id int) R {
	r, err := s.RunProcess(id)
	if err != nil {
		panic("sampling: " + err.Error())
	}
	return r
}

// ProcessMap returns the live id-to-process map. Mutations through the
// returned map are visible to the Sampler and vice versa.
func (s *Sampler[T, R]) ProcessMap() map[int]Process[R] {
	if s.processes == nil {
		s.processes = make(map[int]Process[R])
	}
	return s.processes
}

// ProcessIDs returns the registered ids in ascending order. It gives
// read-only inspection a deterministic iteration order.
func (s *Sampler[T, R]) ProcessIDs() []int {
	ids := make([]int, 0, len(s.processes))
	for id := range s.processes {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// ProcessCount returns the number of registry entries.
func (s *Sampler[T, R]) ProcessCount() int {
	return len(s.processes)
}
