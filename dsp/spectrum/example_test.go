package spectrum_test

import (
	"fmt"

	"github.com/cwbudde/algo-tick/dsp/generator"
	"github.com/cwbudde/algo-tick/dsp/spectrum"
)

func ExampleMagnitude() {
	bins := []complex128{1 + 0i, 0 + 1i, 3 + 4i}

	mag := spectrum.Magnitude(bins)
	fmt.Printf("%.1f %.1f %.1f\n", mag[0], mag[1], mag[2])
	// Output:
	// 1.0 1.0 5.0
}

func ExampleAnalyzer() {
	const (
		fftSize = 1024
		fs      = 48000.0
	)

	a, err := spectrum.NewAnalyzer(fftSize, fs)
	if err != nil {
		panic(err)
	}

	// A tone centered on bin 64.
	osc, err := generator.NewSine(fs, 64*fs/fftSize)
	if err != nil {
		panic(err)
	}

	for i := 0; i < fftSize; i++ {
		a.ProcessSample(osc.Tick())
	}

	peak, _ := a.PeakBin()
	fmt.Printf("peak at %.0f Hz\n", a.BinFrequency(peak))
	// Output:
	// peak at 3000 Hz
}
