// Package dataset reads, writes and generates bin packing instances.
//
// An instance file holds whitespace separated unsigned integers: the number of
// items n, the bin capacity K, then the n item weights.
package dataset

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/gaarutyunov/binpacking/binpack"
	"github.com/gaarutyunov/binpacking/utils"
	"github.com/pkg/errors"
)

var (
	ErrMissingHeader = errors.New("missing item count or capacity")
	ErrShortInstance = errors.New("fewer weights than items declared")
	ErrTrailingData  = errors.New("more weights than items declared")
)

const maxPrealloc = 1 << 20

func Read(r io.Reader) (binpack.Instance, error) {
	capacity, weights, err := ReadRaw(r)
	if err != nil {
		return binpack.Instance{}, err
	}

	return binpack.NewInstance(capacity, weights)
}

// ReadRaw parses an instance file without validating the weights against the
// capacity.
func ReadRaw(r io.Reader) (capacity uint64, weights []uint64, err error) {
	var n uint64
	var pos int

	err = utils.IterWords(r, func(word string) error {
		v, err := parseUint(word)
		if err != nil {
			return errors.Wrapf(err, "token %d", pos+1)
		}

		pos++

		switch pos {
		case 1:
			n = v
			weights = make([]uint64, 0, min(n, maxPrealloc))
		case 2:
			capacity = v
		default:
			if uint64(len(weights)) == n {
				return errors.Wrapf(ErrTrailingData, "token %d", pos)
			}

			weights = append(weights, v)
		}

		return nil
	})
	if err != nil {
		return 0, nil, err
	}

	if pos < 2 {
		return 0, nil, ErrMissingHeader
	}

	if uint64(len(weights)) < n {
		return 0, nil, errors.Wrapf(ErrShortInstance, "got %d of %d", len(weights), n)
	}

	return capacity, weights, nil
}

func Write(w io.Writer, inst binpack.Instance) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%d\n%d\n", inst.Len(), inst.Capacity); err != nil {
		return err
	}

	for _, weight := range inst.Weights {
		if _, err := fmt.Fprintln(bw, weight); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// parseUint reads a decimal unsigned token. Leading zeros do not switch to
// octal and the whole uint64 range is accepted.
func parseUint(word string) (uint64, error) {
	return strconv.ParseUint(word, 10, 64)
}
