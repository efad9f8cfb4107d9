// Package sampling provides a generic fixed-capacity sample window paired
// with an integer-indexed registry of deferred computations ("processes").
//
// A [Sampler] holds the last Capacity values pushed into it, oldest first,
// and a map from caller-chosen integer ids to zero-argument computations.
// It is a building block for pipelines that keep a rolling window of recent
// values and derive named results from it on demand: the library stores and
// maintains the window, while callers decide what the samples mean and
// register whatever derivations they need.
//
// # Usage
//
// Create a sampler, push data, register a process, run it by id:
//
//	s := sampling.New[float64, float64](sampling.WithCapacity(8))
//
//	const procMean = 0
//	s.SetProcess(procMean, func() float64 {
//		sum := 0.0
//		for _, v := range s.Samples() {
//			sum += v
//		}
//		return sum / float64(s.Len())
//	})
//
//	for _, v := range input {
//		s.PushBack(v)
//	}
//	mean, err := s.RunProcess(procMean)
//
// Integer ids pair naturally with enumerator-style constants, which keeps a
// larger set of registered derivations organized.
//
// # Window semantics
//
// The window always re-fits itself to the configured capacity: operations
// that change the sample count or the capacity trim excess samples from the
// front (oldest end) and pad missing ones at the front with zero values.
// Pushing into a full window therefore drops the oldest sample, and a
// freshly constructed or grown window reads as zero-valued history.
// [Sampler.Clear] is the one exception: it empties the window and leaves it
// empty until the next re-fitting operation.
//
// # Error policy
//
// The two halves of the Sampler deliberately differ. Registry lookups are
// strict: [Sampler.Process], [Sampler.EraseProcess], and [Sampler.RunProcess]
// fail with [ErrProcessNotFound] or [ErrProcessUndefined]. Window index
// mutation is lenient: [Sampler.Erase] ignores out-of-range indices. Only
// [Sampler.Insert] validates its index, failing with [ErrIndexOutOfRange].
//
// # Concurrency
//
// A Sampler performs no locking and assumes a single owner. Registered
// processes run synchronously on the calling goroutine; sharing a Sampler
// across goroutines requires external synchronization. [Pool] is safe for
// concurrent use, but the Samplers it vends are not.
package sampling
