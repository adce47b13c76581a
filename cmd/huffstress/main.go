// Command huffstress is the stress-test driver for the huffcodec
// library: it reads a newline-delimited file of test strings, runs
// each one through Encode/Decode, checks the round trip, and reports
// best/worst/average compression ratios. It is not part of the codec
// and carries none of its correctness invariants. It just exercises
// it, the way original_source/src/main.c exercised the C version this
// package was ported from.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/jferguson/huffcodec"
	"github.com/rs/zerolog"
	"golang.org/x/term"
	"rsc.io/getopt"
)

var (
	verbose        = flag.Bool("verbose", false, "log structured per-fixture results and hide the progress bar")
	noProgress     = flag.Bool("no-progress", false, "disable the in-place progress bar")
	decompressOnly = flag.Bool("decompress-only", false, "treat each fixture line as a path to a container file and only decode it")
	force          = flag.Bool("force", false, "overwrite -dump's target file if it already exists")
	dumpPath       = flag.String("dump", "", "write the container bytes of the last fixture encoded to this path")

	log = zerolog.New(os.Stderr).With().Timestamp().Logger()
)

// fixtureResult mirrors original_source/src/main.c's result_t: which
// test it came from, and the before/after sizes needed to compute a
// compression ratio.
type fixtureResult struct {
	index        int
	decompressed int
	compressed   int
}

func (r fixtureResult) ratio() float64 {
	return float64(r.compressed) / float64(r.decompressed)
}

func printResult(label string, r fixtureResult) {
	fmt.Printf("%s:\n", label)
	if r.index >= 0 {
		fmt.Printf("  fixture:      %d\n", r.index)
	}
	fmt.Printf("  decompressed: %d\n", r.decompressed)
	fmt.Printf("  compressed:   %d\n", r.compressed)
	fmt.Printf("  ratio:        %f\n", r.ratio())
}

// showProgress renders an in-place ASCII progress bar, a direct port
// of original_source/src/main.c's show_progress().
func showProgress(w *os.File, progress float64) {
	const width = 70
	pos := int(width * progress)

	fmt.Fprint(w, "[+] Test completion: [")
	for i := 0; i < width; i++ {
		switch {
		case i < pos:
			fmt.Fprint(w, "=")
		case i == pos:
			fmt.Fprint(w, ">")
		default:
			fmt.Fprint(w, " ")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\r", progress*100)
}

func readFixtures(path string) ([]string, error) {
	var f *os.File
	if path == "-" {
		f = os.Stdin
	} else {
		var err error
		f, err = os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return lines, nil
}

func runDecompressOnly(fixtures []string) int {
	failures := 0
	for i, path := range fixtures {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			failures++
			continue
		}
		decoded, err := huffcodec.Decode(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: decode: %v\n", path, err)
			failures++
			continue
		}
		log.Info().Int("fixture", i).Str("path", path).Int("bytes", len(decoded)).Msg("decoded")
	}
	return failures
}

func runRoundTrip(fixtures []string) (best, worst, average fixtureResult, failures int) {
	best = fixtureResult{index: -1, decompressed: 1, compressed: math.MaxInt32}
	worst = fixtureResult{index: -1, decompressed: math.MaxInt32, compressed: 1}

	var totalCompressed, totalDecompressed int
	var lastContainer []byte

	for i, fixture := range fixtures {
		if !*noProgress && !*verbose {
			showProgress(os.Stdout, float64(i)/float64(len(fixtures)))
		}

		input := []byte(fixture)
		encoded, err := huffcodec.Encode(input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nError: failed to encode fixture %d/%d: %v\n", i+1, len(fixtures), err)
			failures++
			continue
		}
		lastContainer = encoded

		decoded, err := huffcodec.Decode(encoded)
		if err != nil {
			fmt.Fprintf(os.Stderr, "\nError: failed to decode fixture %d/%d: %v\n", i+1, len(fixtures), err)
			failures++
			continue
		}

		if !bytes.Equal(input, decoded) {
			fmt.Fprintf(os.Stderr, "\nError: round trip mismatch on fixture %d/%d\n", i+1, len(fixtures))
			failures++
			continue
		}

		r := fixtureResult{index: i, decompressed: len(input), compressed: len(encoded)}

		if *verbose {
			log.Info().
				Int("fixture", i).
				Int("decompressed", r.decompressed).
				Int("compressed", r.compressed).
				Float64("ratio", r.ratio()).
				Msg("round trip ok")
		}

		if r.ratio() < best.ratio() {
			best = r
		}
		if r.ratio() > worst.ratio() {
			worst = r
		}

		totalCompressed += r.compressed
		totalDecompressed += r.decompressed
	}

	succeeded := len(fixtures) - failures
	if succeeded > 0 {
		average = fixtureResult{
			index:        -1,
			compressed:   totalCompressed / succeeded,
			decompressed: totalDecompressed / succeeded,
		}
	}

	if !*noProgress && !*verbose && len(fixtures) > 0 {
		showProgress(os.Stdout, 1)
		fmt.Println()
	}

	if *dumpPath != "" && lastContainer != nil {
		if err := dumpContainer(*dumpPath, lastContainer); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", *dumpPath, err)
		}
	}

	return best, worst, average, failures
}

// dumpContainer writes raw container bytes to path, refusing to clobber
// an interactive terminal or an existing file without -force, the same
// guard cmd/ncrlite/main.go applies to its -stdout output.
func dumpContainer(path string, data []byte) error {
	if path == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("refusing to write binary container data to a terminal")
		}
		_, err := os.Stdout.Write(data)
		return err
	}

	if !*force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("already exists (use -force to overwrite)")
		}
	}

	return os.WriteFile(path, data, 0o644)
}

func do() int {
	if len(flag.Args()) > 1 {
		fmt.Fprintln(os.Stderr, "too many arguments")
		return 2
	}

	fixturePath := "-"
	if len(flag.Args()) == 1 {
		fixturePath = flag.Args()[0]
	}

	fmt.Printf("[+] Loading fixtures from %q\n", fixturePath)
	fixtures, err := readFixtures(fixturePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 3
	}
	fmt.Printf("[+] Found %d fixtures\n", len(fixtures))

	if len(fixtures) == 0 {
		return 0
	}

	if *decompressOnly {
		if failures := runDecompressOnly(fixtures); failures > 0 {
			fmt.Fprintf(os.Stderr, "%d/%d fixtures failed\n", failures, len(fixtures))
			return 9
		}
		return 0
	}

	best, worst, average, failures := runRoundTrip(fixtures)

	fmt.Printf(
		"\nResults:\n\nFixtures run: %d\nSucceeded: %d (%.1f%%)\nFailed: %d (%.1f%%)\n",
		len(fixtures),
		len(fixtures)-failures,
		100*float64(len(fixtures)-failures)/float64(len(fixtures)),
		failures,
		100*float64(failures)/float64(len(fixtures)),
	)

	if len(fixtures)-failures > 0 {
		fmt.Println()
		printResult("Best case", best)
		fmt.Println()
		printResult("Worst case", worst)
		fmt.Println()
		printResult("Average case", average)
	}

	if failures > 0 {
		return 8
	}
	return 0
}

func main() {
	getopt.Alias("v", "verbose")
	getopt.Alias("d", "decompress-only")
	getopt.Alias("f", "force")

	if err := getopt.CommandLine.Parse(os.Args[1:]); err != nil {
		os.Exit(12)
	}

	os.Exit(do())
}
