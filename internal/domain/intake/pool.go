package intake

import (
	"container/heap"
	"slices"
)

// pool is the waiting room: a binary min-heap ordered by a Comparator.
type pool struct {
	items []Patient
	less  Comparator
}

func newPool(less Comparator) *pool {
	return &pool{less: less}
}

// heap.Interface

func (p *pool) Len() int           { return len(p.items) }
func (p *pool) Less(i, j int) bool { return p.less(p.items[i], p.items[j]) < 0 }
func (p *pool) Swap(i, j int)      { p.items[i], p.items[j] = p.items[j], p.items[i] }

func (p *pool) Push(x any) {
	p.items = append(p.items, x.(Patient))
}

func (p *pool) Pop() any {
	old := p.items
	n := len(old)
	item := old[n-1]
	old[n-1] = Patient{}
	p.items = old[:n-1]
	return item
}

func (p *pool) add(pt Patient) {
	heap.Push(p, pt)
}

func (p *pool) popMin() (Patient, bool) {
	if len(p.items) == 0 {
		return Patient{}, false
	}
	return heap.Pop(p).(Patient), true
}

// sorted returns a sorted copy of the pool. The heap itself is left as is.
func (p *pool) sorted() []Patient {
	out := slices.Clone(p.items)
	slices.SortStableFunc(out, p.less)
	return out
}
