package seating

import (
	"container/heap"
	"sort"
)

// branchQueue is a FIFO of students sharing a branch.
type branchQueue struct {
	branch   string
	order    int
	students []Student
	next     int
}

func (q *branchQueue) remaining() int {
	return len(q.students) - q.next
}

func (q *branchQueue) pop() Student {
	s := q.students[q.next]
	q.next++
	return s
}

// queueHeap keeps the queue with the most remaining students on top. Equal
// counts fall back to the queue's original position.
type queueHeap []*branchQueue

func (h queueHeap) Len() int { return len(h) }

func (h queueHeap) Less(i, j int) bool {
	ri, rj := h[i].remaining(), h[j].remaining()
	if ri != rj {
		return ri > rj
	}
	return h[i].order < h[j].order
}

func (h queueHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *queueHeap) Push(x any) { *h = append(*h, x.(*branchQueue)) }

func (h *queueHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return item
}

// Distribute deals students onto slots, always serving the branch with the
// most students still waiting. Slots are consumed strictly in order; students
// left over once the slots run out are not assigned.
func Distribute(students []Student, slots []SeatSlot) []Assignment {
	limit := len(students)
	if len(slots) < limit {
		limit = len(slots)
	}
	assignments := make([]Assignment, 0, limit)
	if limit == 0 {
		return assignments
	}

	queues := newQueueHeap(students)
	cursor := 0
	for cursor < len(slots) && queues.Len() > 0 {
		q := queues[0]
		student := q.pop()
		slot := slots[cursor]
		cursor++

		assignments = append(assignments, Assignment{
			StudentID:   student.ID,
			BlockID:     slot.BlockID,
			FloorID:     slot.FloorID,
			ClassroomID: slot.ClassroomID,
			SeatNumber:  slot.SeatNumber,
			Row:         slot.Row,
			Col:         slot.Col,
		})

		if q.remaining() == 0 {
			heap.Pop(&queues)
		} else {
			heap.Fix(&queues, 0)
		}
	}
	return assignments
}

// sortRoster returns a copy of students ordered by branch then registration number.
func sortRoster(students []Student) []Student {
	sorted := make([]Student, len(students))
	copy(sorted, students)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Branch != sorted[j].Branch {
			return sorted[i].Branch < sorted[j].Branch
		}
		return sorted[i].RegNumber < sorted[j].RegNumber
	})
	return sorted
}

// newQueueHeap partitions the roster into branch queues. Queue order is the
// initial size descending, then branch code ascending.
func newQueueHeap(students []Student) queueHeap {
	sorted := sortRoster(students)

	var queues []*branchQueue
	index := make(map[string]*branchQueue)
	for _, s := range sorted {
		q, ok := index[s.Branch]
		if !ok {
			q = &branchQueue{branch: s.Branch}
			index[s.Branch] = q
			queues = append(queues, q)
		}
		q.students = append(q.students, s)
	}

	sort.SliceStable(queues, func(i, j int) bool {
		return len(queues[i].students) > len(queues[j].students)
	})
	for i, q := range queues {
		q.order = i
	}

	h := queueHeap(queues)
	heap.Init(&h)
	return h
}
