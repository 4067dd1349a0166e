package engine

import "github.com/lixenwraith/fieldtd/core"

// bucket is an insertion-ordered set of objects with O(1) add and swap-remove
type bucket struct {
	items []*Object
	index map[core.Entity]int
}

func (b *bucket) add(o *Object) {
	if b.index == nil {
		b.index = make(map[core.Entity]int)
	}
	if _, ok := b.index[o.ID]; ok {
		return
	}
	b.index[o.ID] = len(b.items)
	b.items = append(b.items, o)
}

func (b *bucket) remove(o *Object) bool {
	i, ok := b.index[o.ID]
	if !ok {
		return false
	}
	last := len(b.items) - 1
	if i != last {
		moved := b.items[last]
		b.items[i] = moved
		b.index[moved.ID] = i
	}
	b.items[last] = nil
	b.items = b.items[:last]
	delete(b.index, o.ID)
	return true
}

func (b *bucket) has(o *Object) bool {
	_, ok := b.index[o.ID]
	return ok
}

func (b *bucket) len() int {
	return len(b.items)
}

func (b *bucket) reset() {
	clear(b.items)
	b.items = b.items[:0]
	clear(b.index)
}
