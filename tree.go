package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/spaghettifunk/donut/engine/p3d"
)

var (
	knownChunk   = color.New(color.FgGreen).SprintFunc()
	unknownChunk = color.New(color.FgYellow).SprintFunc()
	chunkSizes   = color.New(color.Faint).SprintFunc()
)

// printTree writes the chunk tree with named chunk types in green and
// unnamed ones in yellow. Colour is off when stdout is not a terminal.
func printTree(w io.Writer, root *p3d.Chunk) error {
	var err error
	root.Walk(func(c *p3d.Chunk, depth int) bool {
		if err != nil {
			return false
		}
		name := knownChunk(c.Type.String())
		if !c.Type.Known() {
			name = unknownChunk(c.Type.String())
		}
		_, err = fmt.Fprintf(w, "%s%s %s\n", strings.Repeat("  ", depth), name,
			chunkSizes(fmt.Sprintf("(0x%X) data=%db children=%d", uint32(c.Type), len(c.Data), len(c.Children))))
		return true
	})
	return err
}
