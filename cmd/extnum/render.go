// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"

	"github.com/katalvlaran/extnum/mst"
	"github.com/katalvlaran/extnum/numeric"
	"github.com/katalvlaran/extnum/shortest"
)

const cellWidth = 8

// palette colors the parts of a table.
type palette struct {
	header *color.Color
	root   *color.Color
	inf    *color.Color
	neg    *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		header: color.New(color.Bold),
		root:   color.New(color.FgGreen),
		inf:    color.New(color.FgYellow),
		neg:    color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.header, p.root, p.inf, p.neg} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return p
}

// value colors a key or distance by its kind.
func (p palette) value(text string, posInf, negInf bool) string {
	switch {
	case posInf:
		return p.inf.Sprint(text)
	case negInf:
		return p.neg.Sprint(text)
	}

	return text
}

func pad(s string) string {
	return fmt.Sprintf("%-*s", cellWidth, s)
}

func parentText(parent int) string {
	if parent < 0 {
		return "-"
	}

	return strconv.Itoa(parent)
}

// row writes "vertex parent value", highlighting the root vertex.
func (p palette) row(w io.Writer, v, root, parent int, value string) {
	vertex := pad(strconv.Itoa(v))
	if v == root {
		vertex = p.root.Sprint(vertex)
	}
	fmt.Fprintf(w, "%s%s%s\n", vertex, pad(parentText(parent)), value)
}

func renderTree[T numeric.Unsigned[T]](w io.Writer, p palette, algo string, t mst.Tree[T]) {
	fmt.Fprintf(w, "%s tree from %d\n", algo, t.Root)
	fmt.Fprintln(w, p.header.Sprint(pad("vertex")+pad("parent")+"key"))
	for v, k := range t.Key {
		p.row(w, v, t.Root, t.Parent[v], p.value(k.String(), k.IsPosInf(), false))
	}
	fmt.Fprintf(w, "%s%s\n", pad("total"), p.value(t.Total.String(), t.Total.IsPosInf(), false))
}

func renderPaths[D shortest.Distance](w io.Writer, p palette, algo string, res shortest.Result[D]) {
	fmt.Fprintf(w, "%s paths from %d\n", algo, res.Source)
	fmt.Fprintln(w, p.header.Sprint(pad("vertex")+pad("parent")+"distance"))
	for v, d := range res.Dist {
		p.row(w, v, res.Source, res.Prev[v], p.value(d.String(), d.IsPosInf(), d.IsNegInf()))
	}
	if res.NegativeCycle {
		fmt.Fprintln(w, p.neg.Sprint("negative cycle reachable from ", res.Source))
	}
}
