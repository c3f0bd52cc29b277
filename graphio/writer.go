// Package graphio: result rendering.
//
// WriteVerbose produces the human-readable report: echoed inputs, the
// extension cost, each copy's assignments, and the extended host matrix.
// Matrices render as bordered tables with vertex indices on both axes.
// WriteRaw produces the machine-readable form consumed by graders: the
// host order, the extended matrix rows, and the cost on its own line.
package graphio

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/kubapoke/subgraph-isomorphisms/embed"
	"github.com/kubapoke/subgraph-isomorphisms/graph"
)

// WriteVerbose renders the full report for a solved (or unsolved) instance.
func WriteVerbose(w io.Writer, pr *Problem, sol embed.Solution) error {
	fmt.Fprintf(w, "Pattern graph (n=%d):\n", pr.Pattern.Order())
	renderMatrix(w, pr.Pattern)
	fmt.Fprintf(w, "Host graph (n=%d):\n", pr.Host.Order())
	renderMatrix(w, pr.Host)
	fmt.Fprintf(w, "Copies: %d\n\n", pr.Copies)

	if !sol.Found {
		fmt.Fprintln(w, "No solution found.")

		return nil
	}

	fmt.Fprintf(w, "Extension cost: %d\n", sol.Cost)
	var (
		c int
		u int
	)
	for c = 0; c < len(sol.Mappings); c++ {
		fmt.Fprintf(w, "Mapping %d:\n", c)
		for u = 0; u < len(sol.Mappings[c]); u++ {
			fmt.Fprintf(w, "  %d->%d\n", u, sol.Mappings[c][u])
		}
	}
	fmt.Fprintf(w, "Extended host graph (n=%d):\n", sol.Extended.Order())
	renderMatrix(w, sol.Extended)

	return nil
}

// WriteRaw renders the machine-readable form: order, matrix, cost.
// An unsolved instance renders nothing and reports embed.ErrNoSolution.
func WriteRaw(w io.Writer, sol embed.Solution) error {
	if !sol.Found {
		return embed.ErrNoSolution
	}

	var (
		n = sol.Extended.Order()
		u int
	)
	fmt.Fprintln(w, n)
	for u = 0; u < n; u++ {
		fmt.Fprintln(w, strings.Join(rowStrings(sol.Extended, u), " "))
	}
	fmt.Fprintln(w, sol.Cost)

	return nil
}

// renderMatrix draws g as a bordered table with index headers.
func renderMatrix(w io.Writer, g *graph.Graph) {
	var (
		n   = g.Order()
		tbl = tablewriter.NewWriter(w)
		hdr = make([]string, 0, n+1)
		v   int
		u   int
	)
	hdr = append(hdr, "")
	for v = 0; v < n; v++ {
		hdr = append(hdr, strconv.Itoa(v))
	}
	tbl.SetHeader(hdr)
	tbl.SetBorder(true)

	var row []string
	for u = 0; u < n; u++ {
		row = append([]string{strconv.Itoa(u)}, rowStrings(g, u)...)
		tbl.Append(row)
	}
	tbl.Render()
	fmt.Fprintln(w)
}

// rowStrings formats row u of g as decimal strings.
func rowStrings(g *graph.Graph, u int) []string {
	var (
		n   = g.Order()
		out = make([]string, n)
		v   int
		m   int64
	)
	for v = 0; v < n; v++ {
		m, _ = g.At(u, v)
		out[v] = strconv.FormatInt(m, 10)
	}

	return out
}
