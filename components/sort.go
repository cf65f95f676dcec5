package components

import (
	"github.com/mpaiva/sortviz/sorting"
	"github.com/yohamta/donburi"
)

// SortData holds the algorithm driver's state: the logical array the
// selected sort runs over to completion, independent of how far the
// animation has played back (singleton component)
type SortData struct {
	Values    []int
	Algorithm sorting.Algorithm
}

var Sort = donburi.NewComponentType[SortData]()
