package schedulers

import (
	"container/heap"
	"sort"

	"os-scheduler/internal/core"
)

// readyItem is a process waiting for the CPU. index is its position in the
// caller's input and breaks ties, so equal keys pop in input order.
type readyItem struct {
	index int
	key   int
}

type readyQueue []*readyItem

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	if q[i].key != q[j].key {
		return q[i].key < q[j].key
	}
	return q[i].index < q[j].index
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x any) {
	*q = append(*q, x.(*readyItem))
}

func (q *readyQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// arrivalOrder returns input indices sorted by arrival time, input order on ties.
func arrivalOrder(processes []core.Process) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return processes[order[i]].ArrivalTime < processes[order[j]].ArrivalTime
	})
	return order
}

// admission feeds processes into a ready queue as the clock passes their arrival.
type admission struct {
	processes []core.Process
	order     []int
	next      int
	ready     readyQueue
}

func newAdmission(processes []core.Process) *admission {
	return &admission{processes: processes, order: arrivalOrder(processes)}
}

// admit pushes every process with ArrivalTime <= now, keyed by key.
func (a *admission) admit(now int, key func(core.Process) int) {
	for a.next < len(a.order) {
		i := a.order[a.next]
		p := a.processes[i]
		if p.ArrivalTime > now {
			return
		}
		heap.Push(&a.ready, &readyItem{index: i, key: key(p)})
		a.next++
	}
}

func (a *admission) pending() bool {
	return a.next < len(a.order) || a.ready.Len() > 0
}

// nextArrival is the arrival of the earliest process not yet admitted.
func (a *admission) nextArrival() int {
	return a.processes[a.order[a.next]].ArrivalTime
}
