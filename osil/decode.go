package osil

import (
	"fmt"
	"strconv"
	"strings"
)

// The sparse linear-coefficient block compresses its start/index/value
// arrays with run-length encoded <el> elements: an element carrying
// mult="m" incr="i" expands to the run v, v+i, v+2i, …, v+(m−1)i. The
// decoders below expand that wire format into plain slices before any
// consumer sees it.

// decodeIntArray expands the <el> children of node into a flat int slice.
// Values and increments must be whole numbers; fractional text in an index
// array is a format error.
func decodeIntArray(node *element) ([]int, error) {
	var out []int
	for i := range node.Children {
		el := &node.Children[i]
		if el.tag() != "el" {
			return nil, fmt.Errorf("%w: <%s> inside <%s>", ErrUnknownTag, el.tag(), node.tag())
		}
		mult, err := el.intAttr("mult", 1)
		if err != nil {
			return nil, err
		}
		incr, err := el.intAttr("incr", 0)
		if err != nil {
			return nil, err
		}
		base, err := strconv.Atoi(strings.TrimSpace(el.Text))
		if err != nil {
			return nil, fmt.Errorf("%w: el value %q in <%s>", ErrBadAttr, el.Text, node.tag())
		}
		for m := 0; m < mult; m++ {
			out = append(out, base+incr*m)
		}
	}

	return out, nil
}

// decodeFloatArray expands the <el> children of node into a flat float
// slice.
func decodeFloatArray(node *element) ([]float64, error) {
	var out []float64
	for i := range node.Children {
		el := &node.Children[i]
		if el.tag() != "el" {
			return nil, fmt.Errorf("%w: <%s> inside <%s>", ErrUnknownTag, el.tag(), node.tag())
		}
		mult, err := el.intAttr("mult", 1)
		if err != nil {
			return nil, err
		}
		incr, err := el.floatAttr("incr", 0)
		if err != nil {
			return nil, err
		}
		base, err := strconv.ParseFloat(strings.TrimSpace(el.Text), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: el value %q in <%s>", ErrBadAttr, el.Text, node.tag())
		}
		for m := 0; m < mult; m++ {
			out = append(out, base+incr*float64(m))
		}
	}

	return out, nil
}
