// Command samplerinfo streams a synthetic test signal through a sampler
// and prints the results of its registered processes step by step.
//
// Usage:
//
//	samplerinfo [flags]
//
// The sampler keeps a rolling window over the signal; each registered
// process derives one value from the current window (mean, RMS, peak,
// newest-oldest delta, and the dominant frequency of the Hann-windowed
// spectrum).
//
// Examples:
//
//	samplerinfo
//	samplerinfo -capacity 32 -freq 1200
//	samplerinfo -noise 0.2 -steps 256 -every 32
//	samplerinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand/v2"
	"os"
	"text/tabwriter"

	algofft "github.com/MeKo-Christian/algo-fft"
	sampling "github.com/cwbudde/algo-sampling"
	"github.com/cwbudde/algo-vecmath"
)

// Process ids, one per table column.
const (
	procMean = iota
	procRMS
	procPeak
	procDelta
	procDominantHz
)

var processNames = []struct {
	id   int
	name string
}{
	{procMean, "mean"},
	{procRMS, "rms"},
	{procPeak, "peak"},
	{procDelta, "delta"},
	{procDominantHz, "dominant [Hz]"},
}

func main() {
	capacity := flag.Int("capacity", 16, "sampler window length in samples")
	steps := flag.Int("steps", 64, "number of samples to stream")
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	freq := flag.Float64("freq", 3000, "sine frequency in Hz")
	noise := flag.Float64("noise", 0, "white noise amplitude added to the sine")
	seed := flag.Uint64("seed", 1, "noise generator seed")
	fftSize := flag.Int("fft", 256, "FFT length for the dominant-frequency process (rounded up to a power of two)")
	every := flag.Int("every", 8, "print one row every N samples")
	list := flag.Bool("list", false, "list registered processes and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: samplerinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Streams a sine (plus optional noise) through a rolling sample window\n")
		fmt.Fprintf(os.Stderr, "and prints the registered per-window derivations.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  samplerinfo -capacity 32 -freq 1200\n")
		fmt.Fprintf(os.Stderr, "  samplerinfo -noise 0.2 -steps 256 -every 32\n")
		fmt.Fprintf(os.Stderr, "  samplerinfo -list\n")
	}
	flag.Parse()

	if *steps < 1 || *every < 1 || *rate <= 0 || *freq < 0 || *noise < 0 {
		fmt.Fprintf(os.Stderr, "error: invalid flag value\n")
		os.Exit(1)
	}

	s := sampling.New[float64, float64](sampling.WithCapacity(*capacity))

	if err := registerProcesses(s, *rate, *fftSize); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *list {
		printList(s)
		return
	}

	stream(s, *steps, *every, *rate, *freq, *noise, *seed)
}

// registerProcesses fills the sampler's registry with the table columns.
// Every process captures the sampler and reads its window when run.
func registerProcesses(s *sampling.Sampler[float64, float64], rate float64, fftSize int) error {
	s.SetProcess(procMean, func() float64 {
		sum := 0.0
		for _, v := range s.Samples() {
			sum += v
		}
		return sum / float64(s.Len())
	})

	s.SetProcess(procRMS, func() float64 {
		sum := 0.0
		for _, v := range s.Samples() {
			sum += v * v
		}
		return math.Sqrt(sum / float64(s.Len()))
	})

	s.SetProcess(procPeak, func() float64 {
		peak := 0.0
		for _, v := range s.Samples() {
			if a := math.Abs(v); a > peak {
				peak = a
			}
		}
		return peak
	})

	s.SetProcess(procDelta, func() float64 {
		w := s.Samples()
		return w[len(w)-1] - w[0]
	})

	dominant, err := dominantFrequencyProcess(s, rate, fftSize)
	if err != nil {
		return err
	}
	s.SetProcess(procDominantHz, dominant)

	return nil
}

// dominantFrequencyProcess builds a process that Hann-windows the current
// sample window, zero-pads it into an FFT frame, and returns the frequency
// of the strongest non-DC bin. Scratch buffers and the FFT plan are set up
// once and reused across runs.
func dominantFrequencyProcess(s *sampling.Sampler[float64, float64], rate float64, fftSize int) (sampling.Process[float64], error) {
	n := nextPowerOfTwo(max(fftSize, s.Capacity(), 2))

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("fft plan: %w", err)
	}

	coeffs := hannWindow(s.Capacity())
	frame := make([]float64, s.Capacity())
	in := make([]complex128, n)
	out := make([]complex128, n)

	bins := n/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	mags := make([]float64, bins)

	return func() float64 {
		copy(frame, s.Samples())
		vecmath.MulBlockInPlace(frame, coeffs)

		for i := range in {
			if i < len(frame) {
				in[i] = complex(frame[i], 0)
			} else {
				in[i] = 0
			}
		}

		if err := plan.Forward(out, in); err != nil {
			return math.NaN()
		}

		for k := 0; k < bins; k++ {
			re[k] = real(out[k])
			im[k] = imag(out[k])
		}
		vecmath.Magnitude(mags, re, im)

		best := 1
		for k := 2; k < bins; k++ {
			if mags[k] > mags[best] {
				best = k
			}
		}
		return float64(best) * rate / float64(n)
	}, nil
}

func stream(s *sampling.Sampler[float64, float64], steps, every int, rate, freq, noise float64, seed uint64) {
	rng := rand.New(rand.NewPCG(seed, 0))
	phaseStep := 2 * math.Pi * freq / rate

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Step\tMean\tRMS\tPeak\tDelta\tDominant [Hz]\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "----\t----\t---\t----\t-----\t-------------\n"); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for n := 1; n <= steps; n++ {
		v := math.Sin(phaseStep * float64(n-1))
		if noise > 0 {
			v += (rng.Float64()*2 - 1) * noise
		}
		s.PushBack(v)

		if n%every != 0 && n != steps {
			continue
		}

		if _, err := fmt.Fprintf(tw, "%d\t%+.4f\t%.4f\t%.4f\t%+.4f\t%.1f\n",
			n,
			s.MustRunProcess(procMean),
			s.MustRunProcess(procRMS),
			s.MustRunProcess(procPeak),
			s.MustRunProcess(procDelta),
			s.MustRunProcess(procDominantHz),
		); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printList(s *sampling.Sampler[float64, float64]) {
	names := make(map[int]string, len(processNames))
	for _, e := range processNames {
		names[e.id] = e.name
	}
	for _, id := range s.ProcessIDs() {
		fmt.Printf("%d\t%s\n", id, names[id])
	}
}

// hannWindow returns periodic Hann coefficients, the FFT-analysis form.
func hannWindow(size int) []float64 {
	out := make([]float64, size)
	for i := range out {
		out[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(size)))
	}
	return out
}

func nextPowerOfTwo(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
