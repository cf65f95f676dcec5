// Package sorting implements the comparison sorts the visualizer can
// animate. Each algorithm sorts its slice in place, synchronously, and
// reports every comparison, pivot selection and element swap through an
// injected Sink. Algorithms never inspect or wait on the sink.
package sorting

// Algorithm selects one of the supported comparison sorts.
type Algorithm int

const (
	QuickSort Algorithm = iota
	BubbleSort
	SelectionSort
	InsertionSort
)

// Algorithms lists every supported algorithm in menu order.
var Algorithms = []Algorithm{QuickSort, BubbleSort, SelectionSort, InsertionSort}

func (a Algorithm) String() string {
	switch a {
	case QuickSort:
		return "QuickSort"
	case BubbleSort:
		return "BubbleSort"
	case SelectionSort:
		return "SelectionSort"
	case InsertionSort:
		return "InsertionSort"
	default:
		return "Unknown"
	}
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	return a >= QuickSort && a <= InsertionSort
}

// Sink collects the operations an algorithm performs, in order.
type Sink interface {
	Compare(i, j int)
	Pivot(i int)
	Swap(i, j int)
}

// Run sorts values in place with the chosen algorithm, reporting every
// operation to sink. Unknown algorithms fall back to QuickSort.
func Run(a Algorithm, values []int, sink Sink) {
	switch a {
	case BubbleSort:
		bubbleSort(values, sink, 0, len(values)-1)
	case SelectionSort:
		selectionSort(values, sink, 0, len(values)-1)
	case InsertionSort:
		insertionSort(values, sink, 0, len(values)-1)
	default:
		quickSort(values, sink, 0, len(values)-1)
	}
}

// swap exchanges two elements and reports the swap before mutating, so
// the sink sees pre-swap indices in submission order.
func swap(v []int, s Sink, i, j int) {
	s.Swap(i, j)
	v[i], v[j] = v[j], v[i]
}

// quickSort uses the last element as pivot with a two pointer partition.
func quickSort(v []int, s Sink, ini, fin int) {
	if fin <= ini {
		return
	}

	pivotValue := v[fin]
	s.Pivot(fin)

	i := ini
	j := fin - 1

	for i <= j {
		for i <= j && v[i] <= pivotValue {
			s.Compare(i, fin)
			i++
		}
		s.Compare(i, fin)
		for i <= j && v[j] > pivotValue {
			s.Compare(j, fin)
			j--
		}

		if i < j {
			swap(v, s, i, j)
			i++
			j--
		}
	}

	if v[i] > pivotValue && i != fin {
		swap(v, s, i, fin)
	}

	quickSort(v, s, ini, i-1)
	quickSort(v, s, i+1, fin)
}

// bubbleSort sweeps adjacent pairs with an early exit once a pass makes
// no swap. Each pass marks the end of the unsorted range as the pivot.
func bubbleSort(v []int, s Sink, ini, fin int) {
	for i := fin; i > ini; i-- {
		swapped := false
		s.Pivot(i)
		for j := ini; j < i; j++ {
			s.Compare(j, j+1)
			if v[j] > v[j+1] {
				swap(v, s, j, j+1)
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}

// selectionSort repeatedly selects the minimum of the unsorted tail.
func selectionSort(v []int, s Sink, ini, fin int) {
	for i := ini; i < fin; i++ {
		minIndex := i
		s.Pivot(i)
		for j := i + 1; j <= fin; j++ {
			s.Compare(j, minIndex)
			if v[j] < v[minIndex] {
				minIndex = j
			}
		}
		if minIndex != i {
			swap(v, s, i, minIndex)
		}
	}
}

// insertionSort shifts each element left into its sorted position.
func insertionSort(v []int, s Sink, ini, fin int) {
	for i := ini + 1; i <= fin; i++ {
		s.Pivot(i)
		for j := i; j > ini && v[j] < v[j-1]; j-- {
			s.Compare(j, j-1)
			swap(v, s, j, j-1)
		}
	}
}
