// gifdump expands the LZW pixel data of a single GIF image and dumps
// the decoded color-table indices.
//
// The tool does not parse the GIF container: point -offset at the
// first data sub-block of the image (the byte right after the LZW
// minimum code size) and pass that code size with -codesize. With
// -chart it also writes an index-frequency chart, which makes palette
// misuse easy to spot when debugging encoders.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/ncassetta/animimage"
)

var (
	offset   = flag.Int64("offset", 0, "byte offset of the first data sub-block")
	codeSize = flag.Uint("codesize", 8, "LZW minimum code size of the image (2..8)")
	chartOut = flag.String("chart", "", "write an index-frequency chart (SVG) to this path")
	quiet    = flag.Bool("quiet", false, "print the summary only, not the indices")
)

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: gifdump [flags] file.gif")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "gifdump:", err)
		os.Exit(1)
	}
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.Seek(*offset, io.SeekStart); err != nil {
		return err
	}

	pix, err := animimage.DecodeFrame(*codeSize, f)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d indices (code size %d)\n", path, len(pix), *codeSize)
	if !*quiet {
		for i, c := range pix {
			if i%16 == 0 && i != 0 {
				fmt.Println()
			}
			fmt.Printf("%4d", c)
		}
		fmt.Println()
	}

	if *chartOut != "" {
		return writeFrequencyChart(*chartOut, pix)
	}
	return nil
}

// writeFrequencyChart plots how often each index occurs in the
// decoded stream.
func writeFrequencyChart(path string, pix []uint16) error {
	counts := make(map[uint16]int)
	for _, c := range pix {
		counts[c]++
	}

	keys := make([]uint16, 0, len(counts))
	for c := range counts {
		keys = append(keys, c)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	xvals := make([]float64, 0, len(keys))
	yvals := make([]float64, 0, len(keys))
	for _, c := range keys {
		xvals = append(xvals, float64(c))
		yvals = append(yvals, float64(counts[c]))
	}

	graph := chart.Chart{
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style: chart.Style{
					DotWidth: 3,
				},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()
	return graph.Render(chart.SVG, fh)
}
