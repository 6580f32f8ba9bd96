package tui

// arenaSlot holds one node and the generation of the handle that may
// address it. A nil node marks a free slot.
type arenaSlot struct {
	gen  uint32
	node *node
}

// arena stores nodes by index. Slot 0 is reserved so that the zero NodeID
// is never valid. Freed slots are reused with a bumped generation.
type arena struct {
	slots []arenaSlot
	free  []uint32
	live  int
}

func (a *arena) insert(n *node) NodeID {
	if len(a.slots) == 0 {
		a.slots = append(a.slots, arenaSlot{})
	}
	var idx uint32
	if k := len(a.free); k > 0 {
		idx = a.free[k-1]
		a.free = a.free[:k-1]
	} else {
		idx = uint32(len(a.slots))
		a.slots = append(a.slots, arenaSlot{gen: 1})
	}
	slot := &a.slots[idx]
	slot.node = n
	n.id = NodeID{index: idx, gen: slot.gen}
	a.live++
	return n.id
}

func (a *arena) get(id NodeID) (*node, bool) {
	if id.index == 0 || int(id.index) >= len(a.slots) {
		return nil, false
	}
	slot := a.slots[id.index]
	if slot.node == nil || slot.gen != id.gen {
		return nil, false
	}
	return slot.node, true
}

func (a *arena) remove(id NodeID) bool {
	if _, ok := a.get(id); !ok {
		return false
	}
	slot := &a.slots[id.index]
	slot.node = nil
	slot.gen++
	a.free = append(a.free, id.index)
	a.live--
	return true
}

func (a *arena) len() int {
	return a.live
}
