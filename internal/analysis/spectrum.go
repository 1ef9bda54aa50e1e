package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// MinSamples is the shortest signal DominantPeriod will analyze.
const MinSamples = 8

// Summary describes an activity signal.
type Summary struct {
	Samples int
	Mean    float64
	Min     float64
	Max     float64
	Last    float64
}

// Summarize reports basic statistics of an activity signal.
func Summarize(activity []float64) Summary {
	s := Summary{Samples: len(activity)}
	if len(activity) == 0 {
		return s
	}
	s.Min, s.Max = math.Inf(1), math.Inf(-1)
	var sum float64
	for _, v := range activity {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(activity))
	s.Last = activity[len(activity)-1]
	return s
}

// PowerSpectrum returns the one-sided magnitude spectrum of the signal after
// removing its mean and applying a Hann window. Bin k corresponds to a period
// of len(data)/k samples.
func PowerSpectrum(data []float64) []float64 {
	n := len(data)
	if n == 0 {
		return nil
	}
	mean := Summarize(data).Mean

	windowed := make([]float64, n)
	for i, v := range data {
		w := 1.0
		if n > 1 {
			w = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
		}
		windowed[i] = (v - mean) * w
	}

	spectrum := fft.FFTReal(windowed)
	ps := make([]float64, n/2+1)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}
	return ps
}

// DominantPeriod returns the period, in generations, of the strongest
// non-constant component of the activity signal. It reports false for short
// or flat signals.
func DominantPeriod(activity []float64) (float64, bool) {
	if len(activity) < MinSamples {
		return 0, false
	}
	ps := PowerSpectrum(activity)

	best, bestPower := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestPower {
			best, bestPower = k, ps[k]
		}
	}
	if best == 0 || bestPower < 1e-9 {
		return 0, false
	}
	return float64(len(activity)) / float64(best), true
}
