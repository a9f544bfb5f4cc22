// Command filterinfo prints frequency-response properties of the built-in
// biquad filter designs.
//
// Usage:
//
//	filterinfo [flags] [shape-name ...]
//
// Without arguments it prints info for all known filter shapes.
//
// Examples:
//
//	filterinfo lowpass
//	filterinfo -freq 2000 -q 1.4 lowpass highpass
//	filterinfo -freq 1000 -gain 6 peak lowshelf
//	filterinfo -response -points 16 notch
//	filterinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-tick/dsp/filter/biquad"
	"github.com/cwbudde/algo-tick/dsp/filter/design"
)

type shapeEntry struct {
	name    string
	hasGain bool
	coeffs func(freq, q, gainDB, sampleRate float64) biquad.Coefficients
}

var registry = []shapeEntry{
	{"lowpass", false, func(f, q, _, sr float64) biquad.Coefficients { return design.Lowpass(f, q, sr) }},
	{"highpass", false, func(f, q, _, sr float64) biquad.Coefficients { return design.Highpass(f, q, sr) }},
	{"bandpass", false, func(f, q, _, sr float64) biquad.Coefficients { return design.Bandpass(f, q, sr) }},
	{"notch", false, func(f, q, _, sr float64) biquad.Coefficients { return design.Notch(f, q, sr) }},
	{"allpass", false, func(f, q, _, sr float64) biquad.Coefficients { return design.Allpass(f, q, sr) }},
	{"peak", true, design.Peak},
	{"lowshelf", true, design.LowShelf},
	{"highshelf", true, design.HighShelf},
}

func main() {
	rate := flag.Float64("rate", 48000, "sample rate in Hz")
	freq := flag.Float64("freq", 1000, "design frequency in Hz")
	q := flag.Float64("q", 1/math.Sqrt2, "quality factor")
	gain := flag.Float64("gain", 6, "gain in dB for peak and shelf shapes")
	points := flag.Int("points", 0, "print a log-spaced response curve with this many points")
	response := flag.Bool("response", false, "print the response curve (implies -points 24 if unset)")
	list := flag.Bool("list", false, "list available shape names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags] [shape-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints frequency-response properties of biquad filter designs.\n")
		fmt.Fprintf(os.Stderr, "Without arguments, prints info for all shapes.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo lowpass highpass\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -freq 2000 -q 1.4 lowpass\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -response notch\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -list\n")
	}
	flag.Parse()

	if *list {
		printList()
		return
	}

	names := flag.Args()
	if len(names) == 0 {
		for _, e := range registry {
			names = append(names, e.name)
		}
	}

	entries := resolveEntries(names)
	if len(entries) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching filter shapes\n")
		os.Exit(1)
	}

	if *freq <= 0 || *freq >= *rate/2 {
		fmt.Fprintf(os.Stderr, "error: -freq must be between 0 and rate/2\n")
		os.Exit(1)
	}

	n := *points
	if *response && n == 0 {
		n = 24
	}

	if n > 0 {
		printResponseCurves(entries, *freq, *q, *gain, *rate, n)
		return
	}

	printSummary(entries, *freq, *q, *gain, *rate)
}

func printList() {
	names := make([]string, len(registry))
	for i, e := range registry {
		names[i] = e.name
	}

	sort.Strings(names)
	for _, n := range names {
		fmt.Println(n)
	}
}

func resolveEntries(names []string) []shapeEntry {
	byName := make(map[string]shapeEntry, len(registry))
	for _, e := range registry {
		byName[e.name] = e
	}

	var result []shapeEntry
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))

		e, ok := byName[name]
		if !ok {
			fmt.Fprintf(os.Stderr, "warning: unknown shape %q (use -list to see available)\n", name)
			continue
		}

		result = append(result, e)
	}

	return result
}

func printSummary(entries []shapeEntry, freq, q, gainDB, rate float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Shape\tFreq [Hz]\tQ\tDC [dB]\tAt Freq [dB]\tNyquist [dB]\tStable\n")
	fmt.Fprintf(tw, "-----\t---------\t-\t-------\t------------\t------------\t------\n")

	nyquist := rate * 0.5

	for _, e := range entries {
		c := e.coeffs(freq, q, gainDB, rate)

		label := e.name
		if e.hasGain {
			label = fmt.Sprintf("%s (%+.1f dB)", e.name, gainDB)
		}

		fmt.Fprintf(tw, "%s\t%.0f\t%.3f\t%.2f\t%.2f\t%.2f\t%v\n",
			label,
			freq,
			q,
			c.MagnitudeDB(0, rate),
			c.MagnitudeDB(freq, rate),
			c.MagnitudeDB(nyquist, rate),
			c.Stable(),
		)
	}

	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}

func printResponseCurves(entries []shapeEntry, freq, q, gainDB, rate float64, points int) {
	nyquist := rate * 0.5

	lo := math.Log10(10)
	hi := math.Log10(nyquist * 0.999)

	for _, e := range entries {
		c := e.coeffs(freq, q, gainDB, rate)

		fmt.Printf("# %s  freq=%.0f Hz  q=%.3f", e.name, freq, q)
		if e.hasGain {
			fmt.Printf("  gain=%+.1f dB", gainDB)
		}
		fmt.Println()

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Freq [Hz]\tMagnitude [dB]\n")

		for i := 0; i < points; i++ {
			t := float64(i) / float64(points-1)
			f := math.Pow(10, lo+t*(hi-lo))
			fmt.Fprintf(tw, "%.1f\t%+.2f\n", f, c.MagnitudeDB(f, rate))
		}

		if err := tw.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
			return
		}

		fmt.Println()
	}
}
