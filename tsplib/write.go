package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/tspkit/tsp"
)

// Write encodes in as a TSPLIB EUC_2D file. Coordinates are printed with the
// shortest representation that parses back to the same float64.
func Write(w io.Writer, in *tsp.Instance, comment string) error {
	bw := bufio.NewWriter(w)

	if in.Name() != "" {
		fmt.Fprintf(bw, "%s : %s\n", keyName, in.Name())
	}
	if comment != "" {
		fmt.Fprintf(bw, "%s : %s\n", keyComment, comment)
	}
	fmt.Fprintf(bw, "%s : %d\n", keyDimension, in.Len())
	fmt.Fprintf(bw, "%s : %s\n", keyEdgeWeightType, edgeWeightEuc2D)
	fmt.Fprintln(bw, sectionCoords)

	var (
		i int
		p tsp.Point
	)
	for i = 0; i < in.Len(); i++ {
		p = in.Point(i)
		fmt.Fprintf(bw, "%d %s %s\n", i+1,
			strconv.FormatFloat(p.X, 'g', -1, 64),
			strconv.FormatFloat(p.Y, 'g', -1, 64))
	}
	fmt.Fprintln(bw, terminator)

	return bw.Flush()
}
