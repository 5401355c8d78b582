package plan

import (
	"iter"
	"os"
	"strings"

	"github.com/gaarutyunov/binpacking/utils"
)

const remainderSeparator = "---"

// File is a packing plan: the items of every bin in bin order, followed by
// the remainder that could not be packed at all.
type File struct {
	Bins      [][]Item
	Remainder []Item
}

func New(bins [][]Item, remainder []Item) File {
	return File{Bins: bins, Remainder: remainder}
}

func (f File) Total(skipRemainder, onlyRemainder bool) (n int) {
	if !onlyRemainder {
		for _, bin := range f.Bins {
			n += len(bin)
		}
	}

	if skipRemainder {
		return
	}

	n += len(f.Remainder)

	return
}

// Fills returns the summed weight of every bin.
func (f File) Fills() []uint64 {
	fills := make([]uint64, len(f.Bins))
	for i, bin := range f.Bins {
		for _, item := range bin {
			fills[i] += item.Weight()
		}
	}

	return fills
}

func Open(path string) (file File, err error) {
	fi, err := os.Open(path)
	if err != nil {
		return
	}
	defer fi.Close()

	file.Bins = [][]Item{}
	file.Remainder = []Item{}

	var isRemainder bool
	var group []Item

	err = utils.IterLines(fi, func(line string) error {
		if line == "" {
			file.Bins = append(file.Bins, group)

			group = []Item{}
		} else if line == remainderSeparator {
			isRemainder = true
		} else {
			item, err := ItemFromString(line)
			if err != nil {
				return err
			}

			if isRemainder {
				file.Remainder = append(file.Remainder, item)
			} else {
				group = append(group, item)
			}
		}

		return nil
	})

	return
}

func (f File) Iter(skipRemainder, onlyRemainder bool) iter.Seq2[[]Item, bool] {
	return func(yield func([]Item, bool) bool) {
		if !onlyRemainder {
			for _, bin := range f.Bins {
				if !yield(bin, false) {
					return
				}
			}
		}

		if skipRemainder {
			return
		}

		if !yield(f.Remainder, true) {
			return
		}
	}
}

func (f File) String() string {
	var builder strings.Builder

	for _, bin := range f.Bins {
		for _, item := range bin {
			builder.WriteString(item.String())
			builder.WriteString("\n")
		}

		builder.WriteString("\n")
	}

	if len(f.Remainder) > 0 {
		builder.WriteString(remainderSeparator + "\n")
	}

	for _, item := range f.Remainder {
		builder.WriteString(item.String())
		builder.WriteString("\n")
	}

	return builder.String()
}
