package plan

import (
	"fmt"
	"strings"

	"github.com/spf13/cast"
)

// Item is a single packed item: its index in the instance and its weight.
type Item struct {
	index  int
	weight uint64
}

func NewItem(index int, weight uint64) Item {
	return Item{index: index, weight: weight}
}

// Items wraps instance weights in items indexed by input order.
func Items(weights []uint64) []Item {
	items := make([]Item, len(weights))
	for i, w := range weights {
		items[i] = NewItem(i, w)
	}

	return items
}

func ItemFromString(s string) (item Item, err error) {
	vals := strings.Split(s, ";")
	if len(vals) != 2 {
		err = fmt.Errorf("invalid string format: %s", s)
		return
	}

	index, err := cast.ToIntE(strings.TrimSpace(vals[0]))
	if err != nil {
		return
	}

	weight, err := cast.ToUint64E(strings.TrimSpace(vals[1]))
	if err != nil {
		return
	}

	return NewItem(index, weight), nil
}

func (i Item) Index() int {
	return i.index
}

func (i Item) Weight() uint64 {
	return i.weight
}

func (i Item) String() string {
	return fmt.Sprintf("%d;%d", i.index, i.weight)
}
