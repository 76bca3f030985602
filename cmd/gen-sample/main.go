// gen-sample writes a synthetic posting CSV for local pipeline runs.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/subcentral/fillrate/internal/sample"
)

const (
	defaultRows = 500
	defaultSeed = 1
)

func main() {
	var (
		rows  = flag.Int("rows", defaultRows, "Number of data rows to generate")
		seed  = flag.Int64("seed", defaultSeed, "Random seed; same seed, same file")
		start = flag.String("start", "2021-01-01", "Earliest job start date (YYYY-MM-DD)")
		end   = flag.String("end", "2021-06-30", "Latest job start date (YYYY-MM-DD)")
		out   = flag.String("out", "", "Output file (default: stdout)")
	)
	flag.Parse()

	startDay, err := time.Parse("2006-01-02", *start)
	if err != nil {
		fail("invalid -start: " + err.Error())
	}
	endDay, err := time.Parse("2006-01-02", *end)
	if err != nil {
		fail("invalid -end: " + err.Error())
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			fail("create output: " + err.Error())
		}
		defer f.Close()
		w = f
	}

	gen := sample.New(
		sample.WithRows(*rows),
		sample.WithSeed(*seed),
		sample.WithPeriod(startDay, endDay),
	)
	if err := gen.WriteCSV(w); err != nil {
		fail("generate: " + err.Error())
	}
}

func fail(msg string) {
	os.Stderr.WriteString(msg + "\n")
	os.Exit(1)
}
