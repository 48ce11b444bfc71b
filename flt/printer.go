package flt

import (
	"fmt"
	"io"
	"strings"
)

const indentWidth = 2

func writeLine(w io.Writer, depth int, kind Kind, name string, colorNameIndex uint16, materialIndex int16) (err error) {
	indent := strings.Repeat(" ", depth*indentWidth)
	if kind == FaceKind {
		_, err = fmt.Fprintf(w, "%sFace: '%s', Color Index: %d, Material Index: %d\n", indent, name, colorNameIndex, materialIndex)
		return
	}
	_, err = fmt.Fprintf(w, "%s%v: %s\n", indent, kind, name)
	return
}

// PrintTree writes one line per node, indented by its depth.
func PrintTree(w io.Writer, t *Tree) error {
	return t.Walk(func(_ NodeID, n Node, depth int) error {
		return writeLine(w, depth, n.Kind, n.Name, n.ColorNameIndex, n.MaterialIndex)
	})
}

// LinePrinter is a Sink that prints every record as soon as it is decoded.
// Push and pop only change the indentation, no tree is kept.
type LinePrinter struct {
	w     io.Writer
	depth int
}

func NewLinePrinter(w io.Writer) *LinePrinter {
	return &LinePrinter{w: w}
}

func (p *LinePrinter) Depth() int {
	return p.depth
}

func (p *LinePrinter) Record(rec Record) error {
	return writeLine(p.w, p.depth, rec.Kind, rec.Name, rec.ColorNameIndex, rec.MaterialIndex)
}

func (p *LinePrinter) Push() error {
	p.depth++
	return nil
}

func (p *LinePrinter) Pop() error {
	if p.depth > 0 {
		p.depth--
	}
	return nil
}
