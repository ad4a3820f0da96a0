// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package textdiff

// Op classifies a ChangeGroup.
type Op int

const (
	OpMatch Op = iota
	OpInsert
	OpDelete
	OpReplace
)

func (op Op) String() string {
	switch op {
	case OpMatch:
		return "match"
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	case OpReplace:
		return "replace"
	}
	return "unknown"
}

// ChangeGroup is one contiguous run of the edit script. It covers
// old[OldLo:OldHi] and new[NewLo:NewHi]; for OpInsert the old range is
// empty, for OpDelete the new range is empty. Groups are produced in
// position order and partition both sequences completely: concatenating the
// old-side spans of all groups reproduces the old sequence, and likewise
// for the new side.
type ChangeGroup struct {
	Op           Op
	OldLo, OldHi int
	NewLo, NewHi int
}

// Aligner computes the edit script between two line sequences. It is an
// interface so alternative strategies can be injected; the default is the
// in-process Myers aligner.
type Aligner interface {
	Align(old, new Sequence) []ChangeGroup
}

// NewAligner returns the default aligner, which computes a minimal edit
// script with the Myers algorithm.
func NewAligner() Aligner {
	return myersAligner{}
}

type myersAligner struct{}

func (myersAligner) Align(old, new Sequence) []ChangeGroup {
	return coalesce(shortestEdit(old, new))
}

type editKind byte

const (
	editEqual editKind = iota
	editDelete
	editInsert
)

// shortestEdit computes a minimal line-level edit script using the Myers
// algorithm, O((N+M)*D) in sequence lengths and edit distance. The returned
// ops consume the old sequence through editEqual/editDelete and the new
// sequence through editEqual/editInsert, in order.
//
// Tie-breaking between equally short scripts follows the standard k-line
// convention (a deletion is taken before an insertion at equal cost), so
// the result is deterministic and keeps matched runs maximal.
func shortestEdit(a, b Sequence) []editKind {
	n := len(a)
	m := len(b)

	if n == 0 && m == 0 {
		return nil
	}
	if n == 0 {
		ops := make([]editKind, m)
		for i := range ops {
			ops[i] = editInsert
		}
		return ops
	}
	if m == 0 {
		ops := make([]editKind, n)
		for i := range ops {
			ops[i] = editDelete
		}
		return ops
	}

	limit := n + m
	size := 2*limit + 1

	// v[k+limit] is the furthest x reached on diagonal k.
	v := make([]int, size)

	// trace[d] snapshots v after the d-th round, for the backtrack.
	var trace [][]int

	for d := 0; d <= limit; d++ {
		for k := -d; k <= d; k += 2 {
			idx := k + limit
			var x int
			if k == -d || (k != d && v[idx-1] < v[idx+1]) {
				x = v[idx+1] // down: insert
			} else {
				x = v[idx-1] + 1 // right: delete
			}
			y := x - k

			// Follow the diagonal through equal lines.
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}

			v[idx] = x

			if x >= n && y >= m {
				snap := make([]int, size)
				copy(snap, v)
				trace = append(trace, snap)
				return backtrack(trace, a, b, d)
			}
		}

		snap := make([]int, size)
		copy(snap, v)
		trace = append(trace, snap)
	}

	// Unreachable: d = n+m always suffices.
	return nil
}

// backtrack reconstructs the edit script from the v snapshots, walking from
// (len(a), len(b)) back to the origin.
func backtrack(trace [][]int, a, b Sequence, dFinal int) []editKind {
	n := len(a)
	m := len(b)
	limit := n + m

	x := n
	y := m

	var ops []editKind

	for d := dFinal; d > 0; d-- {
		k := x - y
		idx := k + limit

		vPrev := trace[d-1]

		var prevK int
		if k == -d || (k != d && vPrev[idx-1] < vPrev[idx+1]) {
			prevK = k + 1 // came from an insert
		} else {
			prevK = k - 1 // came from a delete
		}

		prevX := vPrev[prevK+limit]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			ops = append(ops, editEqual)
		}

		if k == prevK+1 {
			x--
			ops = append(ops, editDelete)
		} else {
			y--
			ops = append(ops, editInsert)
		}
	}

	// Remaining diagonal at d=0.
	for x > 0 && y > 0 {
		x--
		y--
		ops = append(ops, editEqual)
	}

	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}

	return ops
}

// coalesce folds the per-line edit script into tagged groups. Contiguous
// runs of deletes and inserts become a single Delete, Insert or Replace
// group; runs of equal lines become Match groups.
func coalesce(ops []editKind) []ChangeGroup {
	var groups []ChangeGroup

	i, j := 0, 0 // cursors into old and new
	for k := 0; k < len(ops); {
		if ops[k] == editEqual {
			run := 0
			for k < len(ops) && ops[k] == editEqual {
				run++
				k++
			}
			groups = append(groups, ChangeGroup{
				Op:    OpMatch,
				OldLo: i, OldHi: i + run,
				NewLo: j, NewHi: j + run,
			})
			i += run
			j += run
			continue
		}

		dels, ins := 0, 0
		for k < len(ops) && ops[k] != editEqual {
			if ops[k] == editDelete {
				dels++
			} else {
				ins++
			}
			k++
		}
		op := OpReplace
		switch {
		case dels == 0:
			op = OpInsert
		case ins == 0:
			op = OpDelete
		}
		groups = append(groups, ChangeGroup{
			Op:    op,
			OldLo: i, OldHi: i + dels,
			NewLo: j, NewHi: j + ins,
		})
		i += dels
		j += ins
	}

	return groups
}
