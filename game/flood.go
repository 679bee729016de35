package game

import "github.com/gammazero/deque"

// Visitor handles a single cell of the flood, returning whether the flood
// should continue into that cell's neighbours
type Visitor func(Position) bool

// NeighborGetter returns the neighbour of a cell in direction dir, and whether
// the flood should visit it. It is consulted lazily, right before the visit,
// so it observes every change made by earlier visits.
type NeighborGetter func(pos Position, dir int) (Position, bool)

type floodFrame struct {
	pos     Position
	nextDir int
}

// flood walks depth-first from the root, in the same order as a recursive
// walk enumerating neighbours in neighborOffsets order.
func flood(root Position, visit Visitor, getNeighbor NeighborGetter) {
	if !visit(root) {
		return
	}

	var stack deque.Deque
	stack.PushBack(&floodFrame{pos: root})

	for stack.Len() > 0 {
		frame := stack.Back().(*floodFrame)
		if frame.nextDir == len(neighborOffsets) {
			stack.PopBack()
			continue
		}

		dir := frame.nextDir
		frame.nextDir++

		neighbor, shouldVisit := getNeighbor(frame.pos, dir)
		if !shouldVisit {
			continue
		}
		if visit(neighbor) {
			stack.PushBack(&floodFrame{pos: neighbor})
		}
	}
}
