package seating

type rowKey struct {
	classroomID string
	row         int
}

type seatKey struct {
	classroomID string
	row         int
	col         int
}

// Repair makes one sweep over the assignments and, whenever a seat has a
// row neighbour of the same branch, swaps its student with the first student
// of a different branch seated elsewhere in the same classroom. Only student
// ids move; seats stay put. Swaps are not re-checked against seats already
// visited, so the result may still contain collisions. It returns the number
// of swaps made.
func Repair(assignments []Assignment, students []Student) int {
	branches := branchIndex(students)

	byRow := make(map[rowKey][]int)
	byRoom := make(map[string][]int)
	for i, a := range assignments {
		key := rowKey{classroomID: a.ClassroomID, row: a.Row}
		byRow[key] = append(byRow[key], i)
		byRoom[a.ClassroomID] = append(byRoom[a.ClassroomID], i)
	}

	swaps := 0
	for i := range assignments {
		current := &assignments[i]
		for _, j := range byRow[rowKey{classroomID: current.ClassroomID, row: current.Row}] {
			neighbour := assignments[j]
			if abs(neighbour.Col-current.Col) != 1 {
				continue
			}
			branch, ok := branches[current.StudentID]
			if !ok {
				continue
			}
			if other, ok := branches[neighbour.StudentID]; !ok || other != branch {
				continue
			}
			k, found := swapCandidate(assignments, byRoom[current.ClassroomID], current.Row, branch, branches)
			if !found {
				continue
			}
			current.StudentID, assignments[k].StudentID = assignments[k].StudentID, current.StudentID
			swaps++
		}
	}
	return swaps
}

// swapCandidate returns the first seat in the classroom, outside row, whose
// student belongs to a branch other than branch.
func swapCandidate(assignments []Assignment, room []int, row int, branch string, branches map[string]string) (int, bool) {
	for _, k := range room {
		if assignments[k].Row == row {
			continue
		}
		if other, ok := branches[assignments[k].StudentID]; ok && other != branch {
			return k, true
		}
	}
	return -1, false
}

// CountCollisions counts pairs of horizontally adjacent seats in the same
// classroom row whose students share a branch.
func CountCollisions(assignments []Assignment, students []Student) int {
	branches := branchIndex(students)
	seats := make(map[seatKey]string, len(assignments))
	for _, a := range assignments {
		if branch, ok := branches[a.StudentID]; ok {
			seats[seatKey{classroomID: a.ClassroomID, row: a.Row, col: a.Col}] = branch
		}
	}

	count := 0
	for key, branch := range seats {
		right := seatKey{classroomID: key.classroomID, row: key.row, col: key.col + 1}
		if other, ok := seats[right]; ok && other == branch {
			count++
		}
	}
	return count
}

func branchIndex(students []Student) map[string]string {
	branches := make(map[string]string, len(students))
	for _, s := range students {
		branches[s.ID] = s.Branch
	}
	return branches
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
