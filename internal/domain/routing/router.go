package routing

import (
	"container/heap"

	"github.com/RocketManDan1/Frontier-sub001/internal/domain/location"
)

// MatrixEntry is one all-pairs routing result: the least-dv path between
// two locations with its accumulated time of flight.
//
// Invariants:
// - Path[0] == FromID and Path[len-1] == ToID
// - DvMS equals the sum of edge dv along Path
// - an entry exists iff ToID is reachable from FromID
type MatrixEntry struct {
	FromID string   `json:"from_id"`
	ToID   string   `json:"to_id"`
	DvMS   float64  `json:"dv_m_s"`
	TofS   float64  `json:"tof_s"`
	Path   []string `json:"path"`
}

type pqItem struct {
	node string
	dv   float64
	seq  int
}

// priorityQueue orders by dv, breaking ties by the sequence the item was
// pushed, which follows edge insertion order and keeps results deterministic.
type priorityQueue []pqItem

func (q priorityQueue) Len() int { return len(q) }
func (q priorityQueue) Less(i, j int) bool {
	if q[i].dv != q[j].dv {
		return q[i].dv < q[j].dv
	}
	return q[i].seq < q[j].seq
}
func (q priorityQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *priorityQueue) Push(x any)        { *q = append(*q, x.(pqItem)) }
func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

type neighbor struct {
	to   string
	dvMS float64
	tofS float64
}

// ComputeMatrix runs Dijkstra from every node over the directed edge set,
// minimizing dv and accumulating tof alongside. Self-entries cost nothing;
// unreachable pairs produce no entry. Iteration order is fixed by the
// node slice and edge insertion order, so identical inputs always yield
// an identical matrix.
func ComputeMatrix(nodeIDs []string, edges []location.TransferEdge) []MatrixEntry {
	adjacency := make(map[string][]neighbor, len(nodeIDs))
	for _, e := range edges {
		adjacency[e.FromID] = append(adjacency[e.FromID], neighbor{to: e.ToID, dvMS: e.DvMS, tofS: e.TofS})
	}

	var matrix []MatrixEntry
	for _, from := range nodeIDs {
		matrix = append(matrix, shortestPathsFrom(from, nodeIDs, adjacency)...)
	}
	return matrix
}

func shortestPathsFrom(from string, nodeIDs []string, adjacency map[string][]neighbor) []MatrixEntry {
	dist := map[string]float64{from: 0}
	tof := map[string]float64{from: 0}
	prev := map[string]string{}
	done := map[string]bool{}

	seq := 0
	pq := &priorityQueue{{node: from, dv: 0, seq: seq}}
	heap.Init(pq)

	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		if done[item.node] {
			continue
		}
		done[item.node] = true

		for _, nb := range adjacency[item.node] {
			candidate := dist[item.node] + nb.dvMS
			current, seen := dist[nb.to]
			if !seen || candidate < current {
				dist[nb.to] = candidate
				tof[nb.to] = tof[item.node] + nb.tofS
				prev[nb.to] = item.node
				seq++
				heap.Push(pq, pqItem{node: nb.to, dv: candidate, seq: seq})
			}
		}
	}

	var entries []MatrixEntry
	for _, to := range nodeIDs {
		dv, reachable := dist[to]
		if !reachable {
			continue
		}
		entries = append(entries, MatrixEntry{
			FromID: from,
			ToID:   to,
			DvMS:   dv,
			TofS:   tof[to],
			Path:   reconstructPath(from, to, prev),
		})
	}
	return entries
}

func reconstructPath(from, to string, prev map[string]string) []string {
	if from == to {
		return []string{from}
	}
	var reversed []string
	for node := to; ; {
		reversed = append(reversed, node)
		if node == from {
			break
		}
		node = prev[node]
	}
	path := make([]string, len(reversed))
	for i, node := range reversed {
		path[len(reversed)-1-i] = node
	}
	return path
}
