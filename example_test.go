package sampling_test

import (
	"errors"
	"fmt"

	sampling "github.com/cwbudde/algo-sampling"
)

func ExampleSampler() {
	s := sampling.New[float64, float64](sampling.WithCapacity(4))

	const procMean = 0
	s.SetProcess(procMean, func() float64 {
		sum := 0.0
		for _, v := range s.Samples() {
			sum += v
		}
		return sum / float64(s.Len())
	})

	for _, v := range []float64{1, 2, 3, 4, 5, 6} {
		s.PushBack(v)
	}

	mean, _ := s.RunProcess(procMean)
	fmt.Println(s.Window())
	fmt.Println(mean)

	// Output:
	// [3 4 5 6]
	// 4.5
}

func ExampleSampler_SetCapacity() {
	s := sampling.New[int, int](sampling.WithCapacity(4))
	s.SetSamples([]int{1, 2, 3, 4})

	s.SetCapacity(2) // shrink trims the oldest samples
	fmt.Println(s.Window())

	s.SetCapacity(5) // grow pads zero values at the oldest end
	fmt.Println(s.Window())

	// Output:
	// [3 4]
	// [0 0 0 3 4]
}

func ExampleSampler_RunProcess() {
	s := sampling.New[int, string]()

	s.SetProcess(1, func() string { return "ready" })
	s.SetProcess(2, nil) // registered, but undefined

	for _, id := range []int{1, 2, 3} {
		r, err := s.RunProcess(id)
		switch {
		case errors.Is(err, sampling.ErrProcessUndefined):
			fmt.Println(id, "undefined")
		case errors.Is(err, sampling.ErrProcessNotFound):
			fmt.Println(id, "not found")
		default:
			fmt.Println(id, r)
		}
	}

	// Output:
	// 1 ready
	// 2 undefined
	// 3 not found
}
