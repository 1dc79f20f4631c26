// SPDX-License-Identifier: MIT
// Copyright (c) 2026 zenatron
// Source: github.com/zenatron/pi-compress

package main

import (
	"os"
	"sort"

	"github.com/wcharczuk/go-chart/v2"
)

// renderHistogram renders a match-length frequency chart to an SVG file.
func renderHistogram(path string, counts map[int]int) error {
	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	xvals := make([]float64, 0, len(keys))
	yvals := make([]float64, 0, len(keys))
	for _, k := range keys {
		xvals = append(xvals, float64(k))
		yvals = append(yvals, float64(counts[k]))
	}

	graph := chart.Chart{
		Title: "Match length distribution",
		XAxis: chart.XAxis{Name: "match length (bytes)"},
		YAxis: chart.YAxis{Name: "count"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style:   chart.Style{DotWidth: 3},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	return renderSVG(path, graph)
}

// renderScatter renders dictionary position against input offset to an SVG file.
func renderScatter(path string, offsets, positions []int) error {
	xvals := make([]float64, 0, len(offsets))
	yvals := make([]float64, 0, len(positions))
	for i := range offsets {
		xvals = append(xvals, float64(offsets[i]))
		yvals = append(yvals, float64(positions[i]))
	}

	graph := chart.Chart{
		Title: "Dictionary positions by input offset",
		XAxis: chart.XAxis{Name: "input offset (bytes)"},
		YAxis: chart.YAxis{Name: "dictionary position (digits)"},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Style:   chart.Style{DotWidth: 3},
				XValues: xvals,
				YValues: yvals,
			},
		},
	}

	return renderSVG(path, graph)
}

func renderSVG(path string, graph chart.Chart) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	defer fh.Close()

	return graph.Render(chart.SVG, fh)
}
