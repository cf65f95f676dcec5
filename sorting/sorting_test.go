package sorting

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"
)

// recorder captures emitted operations as readable strings.
type recorder struct {
	ops []string
}

func (r *recorder) Compare(i, j int) { r.ops = append(r.ops, fmt.Sprintf("COMPARE(%d,%d)", i, j)) }
func (r *recorder) Pivot(i int)      { r.ops = append(r.ops, fmt.Sprintf("PIVOT(%d)", i)) }
func (r *recorder) Swap(i, j int)    { r.ops = append(r.ops, fmt.Sprintf("SWAP(%d,%d)", i, j)) }

func TestAlgorithmString(t *testing.T) {
	tests := []struct {
		a    Algorithm
		want string
	}{
		{QuickSort, "QuickSort"},
		{BubbleSort, "BubbleSort"},
		{SelectionSort, "SelectionSort"},
		{InsertionSort, "InsertionSort"},
		{Algorithm(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestAlgorithmValid(t *testing.T) {
	for _, a := range Algorithms {
		if !a.Valid() {
			t.Errorf("%s should be valid", a)
		}
	}
	if Algorithm(-1).Valid() || Algorithm(4).Valid() {
		t.Error("out of range algorithms should be invalid")
	}
}

func TestRunSortsInPlace(t *testing.T) {
	inputs := [][]int{
		{},
		{7},
		{2, 1},
		{1, 2},
		{5, 3, 8, 1},
		{3, 3, 3},
		{9, 8, 7, 6, 5, 4, 3, 2, 1, 0},
	}

	for _, a := range Algorithms {
		for _, input := range inputs {
			t.Run(fmt.Sprintf("%s/%v", a, input), func(t *testing.T) {
				values := append([]int(nil), input...)
				Run(a, values, &recorder{})
				if !sort.IntsAreSorted(values) {
					t.Errorf("Run(%s, %v) left %v", a, input, values)
				}
			})
		}
	}
}

func TestRunSortsRandomWithDuplicates(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	values := make([]int, 50)
	for i := range values {
		values[i] = rng.Intn(10) // plenty of duplicates
	}

	for _, a := range Algorithms {
		in := append([]int(nil), values...)
		Run(a, in, &recorder{})
		if !sort.IntsAreSorted(in) {
			t.Errorf("%s failed on duplicates: %v", a, in)
		}
	}
}

func TestSingleElementEmitsNothing(t *testing.T) {
	for _, a := range Algorithms {
		rec := &recorder{}
		Run(a, []int{7}, rec)
		if len(rec.ops) != 0 {
			t.Errorf("%s emitted %v for a single element", a, rec.ops)
		}
	}
}

func TestEmptyArrayEmitsNothing(t *testing.T) {
	for _, a := range Algorithms {
		rec := &recorder{}
		Run(a, nil, rec)
		if len(rec.ops) != 0 {
			t.Errorf("%s emitted %v for an empty array", a, rec.ops)
		}
	}
}

func TestBubbleSortOpeningSequence(t *testing.T) {
	rec := &recorder{}
	Run(BubbleSort, []int{5, 3, 8, 1}, rec)

	want := []string{"PIVOT(3)", "COMPARE(0,1)", "SWAP(0,1)"}
	if len(rec.ops) < len(want) {
		t.Fatalf("too few ops: %v", rec.ops)
	}
	for i, w := range want {
		if rec.ops[i] != w {
			t.Errorf("ops[%d] = %s, want %s (full: %v)", i, rec.ops[i], w, rec.ops[:len(want)])
		}
	}
}

func TestBubbleSortEarlyExit(t *testing.T) {
	rec := &recorder{}
	Run(BubbleSort, []int{1, 2, 3, 4}, rec)

	// One pass, no swaps, then done: one pivot and three compares.
	var pivots, compares, swaps int
	for _, op := range rec.ops {
		switch op[0] {
		case 'P':
			pivots++
		case 'C':
			compares++
		case 'S':
			swaps++
		}
	}
	if pivots != 1 || compares != 3 || swaps != 0 {
		t.Errorf("sorted input: pivots=%d compares=%d swaps=%d, want 1/3/0", pivots, compares, swaps)
	}
}

func TestQuickSortMarksLastElementPivot(t *testing.T) {
	rec := &recorder{}
	Run(QuickSort, []int{3, 1, 2}, rec)
	if len(rec.ops) == 0 || rec.ops[0] != "PIVOT(2)" {
		t.Errorf("first op = %v, want PIVOT(2)", rec.ops)
	}
}

func TestSwapReportsBeforeMutating(t *testing.T) {
	// The sink must observe the swap while the logical array still
	// holds the pre-swap values at those indices.
	var sawBefore bool
	values := []int{2, 1}
	probe := &probeSink{onSwap: func(i, j int) {
		sawBefore = values[i] == 2 && values[j] == 1
	}}
	Run(BubbleSort, values, probe)
	if !sawBefore {
		t.Error("swap was reported after the logical array mutation")
	}
}

type probeSink struct {
	onSwap func(i, j int)
}

func (p *probeSink) Compare(i, j int) {}
func (p *probeSink) Pivot(i int)      {}
func (p *probeSink) Swap(i, j int) {
	if p.onSwap != nil {
		p.onSwap(i, j)
	}
}
