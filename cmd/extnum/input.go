// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/extnum/graph"
)

// edgeList is the raw input: a vertex count and unparsed weights.
type edgeList struct {
	n     int
	edges []edgeLine
}

type edgeLine struct {
	line int
	u, v int
	w    string
}

// readEdgeList reads "n" followed by "u v w" lines.
func readEdgeList(r io.Reader) (edgeList, error) {
	var list edgeList
	sc := bufio.NewScanner(r)
	header := false
	for lineno := 1; sc.Scan(); lineno++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if !header {
			if len(fields) != 1 {
				return list, fmt.Errorf("%w: line %d: want the vertex count first", ErrInput, lineno)
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil || n < 0 {
				return list, fmt.Errorf("%w: line %d: bad vertex count %q", ErrInput, lineno, fields[0])
			}
			list.n, header = n, true
			continue
		}
		if len(fields) != 3 {
			return list, fmt.Errorf("%w: line %d: want \"u v w\", got %d fields", ErrInput, lineno, len(fields))
		}
		u, err := strconv.Atoi(fields[0])
		if err != nil {
			return list, fmt.Errorf("%w: line %d: bad vertex %q", ErrInput, lineno, fields[0])
		}
		v, err := strconv.Atoi(fields[1])
		if err != nil {
			return list, fmt.Errorf("%w: line %d: bad vertex %q", ErrInput, lineno, fields[1])
		}
		list.edges = append(list.edges, edgeLine{line: lineno, u: u, v: v, w: fields[2]})
	}
	if err := sc.Err(); err != nil {
		return list, err
	}
	if !header {
		return list, fmt.Errorf("%w: empty input", ErrInput)
	}

	return list, nil
}

// buildGraph parses every weight with parse and adds the edges.
func buildGraph[W any](list edgeList, parse func(string) (W, error), opts ...graph.Option) (*graph.Graph[W], error) {
	g, err := graph.New[W](list.n, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInput, err)
	}
	for _, e := range list.edges {
		w, err := parse(e.w)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInput, e.line, err)
		}
		if _, err := g.AddEdge(e.u, e.v, w); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInput, e.line, err)
		}
	}

	return g, nil
}
