package components

import "github.com/yohamta/donburi"

// ActionKind identifies one queued animation operation
type ActionKind int

const (
	ActionSwap ActionKind = iota
	ActionPivot
	ActionCompare
)

func (k ActionKind) String() string {
	switch k {
	case ActionSwap:
		return "SWAP"
	case ActionPivot:
		return "PIVOT"
	case ActionCompare:
		return "COMPARE"
	default:
		return "UNKNOWN"
	}
}

// stageCount fixes how many ticks each action kind animates for.
func stageCount(k ActionKind) int {
	switch k {
	case ActionSwap:
		return 10
	case ActionPivot:
		return 2
	case ActionCompare:
		return 2
	default:
		return 0
	}
}

// Action is one animation operation with a multi stage playback script.
// IndexA and IndexB address the rendered array; IndexB is unused for
// pivots. Stage counts down from TotalStages to zero, one decrement per
// tick while the action sits at the front of the queue.
type Action struct {
	Kind   ActionKind
	IndexA int
	IndexB int

	Stage       int
	TotalStages int
}

// NewAction creates an action with its stage cursor at the start.
// Index validity is the producer's responsibility.
func NewAction(kind ActionKind, indexA, indexB int) *Action {
	total := stageCount(kind)
	return &Action{
		Kind:        kind,
		IndexA:      indexA,
		IndexB:      indexB,
		Stage:       total,
		TotalStages: total,
	}
}

// Advance consumes one stage and reports whether the animation is done.
func (a *Action) Advance() bool {
	a.Stage--
	return a.Stage <= 0
}

// QueueData is the FIFO of pending actions. The algorithm driver
// pushes, the playback engine peeks and pops; insertion order is
// execution order.
type QueueData struct {
	actions []*Action
}

func (q *QueueData) Push(a *Action) {
	q.actions = append(q.actions, a)
}

// Peek returns the front action without removing it, nil when empty.
func (q *QueueData) Peek() *Action {
	if len(q.actions) == 0 {
		return nil
	}
	return q.actions[0]
}

// Pop removes and returns the front action, nil when empty.
func (q *QueueData) Pop() *Action {
	if len(q.actions) == 0 {
		return nil
	}
	front := q.actions[0]
	q.actions[0] = nil
	q.actions = q.actions[1:]
	return front
}

func (q *QueueData) Len() int {
	return len(q.actions)
}

func (q *QueueData) Empty() bool {
	return len(q.actions) == 0
}

func (q *QueueData) Clear() {
	q.actions = nil
}

var Queue = donburi.NewComponentType[QueueData]()
