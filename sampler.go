package sampling

import "fmt"

// Process is a deferred zero-argument computation registered on a Sampler.
// A process typically captures the enclosing Sampler (or any other context)
// when it is registered and derives a result from it when run.
type Process[R any] func() R

// Sampler combines an ordered fixed-length window of samples of type T with
// a registry of integer-keyed processes producing results of type R.
//
// The window self-heals to its configured capacity: every operation that
// changes the sample count or the capacity trims excess samples from the
// front (oldest end) and pads missing ones at the front with zero values.
// A Sampler is not safe for concurrent use; see the package documentation.
//
// The zero value is ready to use: the registry allocates itself on first
// write, and the first re-fitting operation clamps the unset capacity to 1.
// New is only needed to pick a larger initial capacity.
type Sampler[T, R any] struct {
	capacity  int
	samples   []T
	processes map[int]Process[R]
}

// New returns a Sampler with the configured capacity ([DefaultCapacity]
// unless WithCapacity overrides it). The window starts zero-filled at the
// full capacity.
func New[T, R any](opts ...Option) *Sampler[T, R] {
	cfg := applyOptions(opts...)
	s := &Sampler[T, R]{
		capacity:  cfg.capacity,
		processes: make(map[int]Process[R]),
	}
	s.fit()
	return s
}

// fit restores the window length invariant: the capacity is clamped to a
// minimum of 1, excess samples are dropped from the front, and missing
// samples are padded at the front with zero values. Backing storage is
// reused when it is large enough.
func (s *Sampler[T, R]) fit() {
	if s.capacity < 1 {
		s.capacity = 1
	}

	if n := len(s.samples); n > s.capacity {
		copy(s.samples, s.samples[n-s.capacity:])
		// Release dropped elements so the backing array does not pin them.
		clear(s.samples[s.capacity:])
		s.samples = s.samples[:s.capacity]
	}

	if n := len(s.samples); n < s.capacity {
		missing := s.capacity - n
		if cap(s.samples) >= s.capacity {
			s.samples = s.samples[:s.capacity]
			copy(s.samples[missing:], s.samples[:n])
			clear(s.samples[:missing])
		} else {
			grown := make([]T, s.capacity)
			copy(grown[missing:], s.samples)
			s.samples = grown
		}
	}
}

// PushBack appends v at the newest end of the window and re-fits, dropping
// the oldest sample when the window was already full. This is the normal
// "new data arrived" path.
func (s *Sampler[T, R]) PushBack(v T) {
	s.samples = append(s.samples, v)
	s.fit()
}

// Insert places v at the given position, index 0 being the oldest end, and
// re-fits the window; inserting at Len() is equivalent to PushBack. It
// fails with [ErrIndexOutOfRange] when index is outside [0, Len()], leaving
// the window untouched.
func (s *Sampler[T, R]) Insert(index int, v T) error {
	if index < 0 || index > len(s.samples) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(s.samples))
	}
	s.samples = append(s.samples, v)
	copy(s.samples[index+1:], s.samples[index:])
	s.samples[index] = v
	s.fit()
	return nil
}

// Erase removes the sample at index and re-fits, so the freed slot
// reappears as a zero value at the oldest end. Out-of-range indices are
// silently ignored: erase is deliberately lenient where the process
// registry is strict.
func (s *Sampler[T, R]) Erase(index int) {
	if index < 0 || index >= len(s.samples) {
		return
	}
	s.samples = append(s.samples[:index], s.samples[index+1:]...)
	s.fit()
}

// Clear empties the window without re-fitting. The length invariant is
// restored by the next re-fitting operation, which repopulates the window
// with zero values.
func (s *Sampler[T, R]) Clear() {
	clear(s.samples)
	s.samples = s.samples[:0]
}

// SetCapacity sets the target window length and re-fits immediately.
// Values below 1 clamp to 1.
func (s *Sampler[T, R]) SetCapacity(n int) {
	s.capacity = n
	s.fit()
}

// Capacity returns the target window length.
func (s *Sampler[T, R]) Capacity() int {
	return s.capacity
}

// Len returns the current number of samples. It equals Capacity except
// after Clear, which leaves the window empty until the next re-fit.
func (s *Sampler[T, R]) Len() int {
	return len(s.samples)
}

// Samples returns the live backing slice, oldest sample first. Mutations
// through the returned slice are visible to the Sampler and vice versa.
// Re-take the slice after any re-fitting operation: re-fitting may move the
// window to a new backing array. Processes that read the window should
// capture the Sampler and call Samples inside the closure, not capture the
// slice itself.
func (s *Sampler[T, R]) Samples() []T {
	return s.samples
}

// Window returns an independent copy of the current window, oldest first.
func (s *Sampler[T, R]) Window() []T {
	w := make([]T, len(s.samples))
	copy(w, s.samples)
	return w
}

// SetSamples adopts the given slice as the new window without copying,
// then re-fits, trimming or padding the adopted data to the configured
// capacity. Mutations to the slice remain visible through the Sampler
// until the next re-fit reallocates.
func (s *Sampler[T, R]) SetSamples(samples []T) {
	s.samples = samples
	s.fit()
}

// Zero resets every sample in the window to the zero value of T. The
// window length is unchanged.
func (s *Sampler[T, R]) Zero() {
	clear(s.samples)
}

// Reset restores the just-constructed state in place: the window is
// re-fit and zeroed at the current capacity and all processes are removed.
// Backing storage is kept, so a Reset in steady state does not allocate.
func (s *Sampler[T, R]) Reset() {
	s.fit()
	clear(s.samples)
	s.ClearProcesses()
}

// Clone returns a deep copy: the window is duplicated and the process map
// is copied entry by entry. Mutating the clone's window or registry leaves
// the original untouched. Process values are function references, so a
// cloned entry invokes the same closure over the same captured state.
func (s *Sampler[T, R]) Clone() *Sampler[T, R] {
	c := &Sampler[T, R]{
		capacity:  s.capacity,
		samples:   make([]T, len(s.samples)),
		processes: make(map[int]Process[R], len(s.processes)),
	}
	copy(c.samples, s.samples)
	for id, p := range s.processes {
		c.processes[id] = p
	}
	return c
}
