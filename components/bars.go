package components

import "github.com/yohamta/donburi"

// BarsData holds the rendered array: the engine's lagging copy of the
// values, read by every stage render and mutated only at a swap
// action's midpoint stage (singleton component)
type BarsData struct {
	Values []int
}

// Swap exchanges two rendered entries.
func (b *BarsData) Swap(i, j int) {
	b.Values[i], b.Values[j] = b.Values[j], b.Values[i]
}

var Bars = donburi.NewComponentType[BarsData]()
