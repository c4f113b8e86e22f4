package tsplib

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/tspkit/tsp"
)

// Header carries the KEY : VALUE lines preceding the coordinate section.
type Header struct {
	Name           string
	Type           string
	Comment        string
	Dimension      int // 0 when absent
	EdgeWeightType string
}

const (
	keyName           = "NAME"
	keyType           = "TYPE"
	keyComment        = "COMMENT"
	keyDimension      = "DIMENSION"
	keyEdgeWeightType = "EDGE_WEIGHT_TYPE"

	sectionCoords = "NODE_COORD_SECTION"
	terminator    = "EOF"

	edgeWeightEuc2D = "EUC_2D"
)

// Parse reads one instance from r. The instance is named after the NAME
// header (empty when absent).
//
// Errors wrap tsp.ErrInvalidInstance.
func Parse(r io.Reader) (*tsp.Instance, error) {
	_, in, err := Decode(r)

	return in, err
}

// Decode reads one instance from r and returns its header as well.
func Decode(r io.Reader) (Header, *tsp.Instance, error) {
	var (
		h       Header
		sc      = bufio.NewScanner(r)
		lineNo  int
		inCoord bool
		pts     []tsp.Point
	)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if line == terminator {
			break
		}

		if inCoord {
			p, err := parseCoord(line)
			if err != nil {
				return h, nil, fmt.Errorf("%w: line %d: %v", tsp.ErrInvalidInstance, lineNo, err)
			}
			p.ID = len(pts)
			pts = append(pts, p)
			continue
		}

		if line == sectionCoords || strings.HasPrefix(line, sectionCoords+" ") || strings.HasPrefix(line, sectionCoords+":") {
			if h.EdgeWeightType != "" && h.EdgeWeightType != edgeWeightEuc2D {
				return h, nil, fmt.Errorf("%w: unsupported EDGE_WEIGHT_TYPE %s", tsp.ErrInvalidInstance, h.EdgeWeightType)
			}
			inCoord = true
			continue
		}
		if err := h.set(line); err != nil {
			return h, nil, fmt.Errorf("%w: line %d: %v", tsp.ErrInvalidInstance, lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return h, nil, fmt.Errorf("%w: %v", tsp.ErrInvalidInstance, err)
	}

	if !inCoord {
		return h, nil, fmt.Errorf("%w: missing %s", tsp.ErrInvalidInstance, sectionCoords)
	}
	if len(pts) == 0 {
		return h, nil, fmt.Errorf("%w: no coordinates", tsp.ErrInvalidInstance)
	}
	if h.Dimension > 0 && h.Dimension != len(pts) {
		return h, nil, fmt.Errorf("%w: DIMENSION is %d but %d coordinates were read", tsp.ErrInvalidInstance, h.Dimension, len(pts))
	}

	in, err := tsp.NewInstance(h.Name, pts)
	if err != nil {
		return h, nil, err
	}

	return h, in, nil
}

// set records one "KEY : VALUE" header line. Unknown keys are ignored.
func (h *Header) set(line string) error {
	key, value, ok := strings.Cut(line, ":")
	if !ok {
		return fmt.Errorf("malformed header %q", line)
	}
	key = strings.ToUpper(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	switch key {
	case keyName:
		h.Name = value
	case keyType:
		h.Type = value
	case keyComment:
		h.Comment = value
	case keyEdgeWeightType:
		h.EdgeWeightType = strings.ToUpper(value)
	case keyDimension:
		d, err := strconv.Atoi(value)
		if err != nil || d <= 0 {
			return fmt.Errorf("invalid DIMENSION %q", value)
		}
		h.Dimension = d
	}

	return nil
}

// parseCoord reads "label x y".
func parseCoord(line string) (tsp.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return tsp.Point{}, fmt.Errorf("want \"label x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tsp.Point{}, fmt.Errorf("x coordinate %q: %w", fields[1], err)
	}
	y, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return tsp.Point{}, fmt.Errorf("y coordinate %q: %w", fields[2], err)
	}

	return tsp.Point{X: x, Y: y}, nil
}
