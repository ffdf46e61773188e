package entity

import "diplopod/game/types"

// Kind tags a consumable.
type Kind int

const (
	Food Kind = iota
	SuperFood
	AntiDote
	Poison
)

// Kinds lists every consumable kind in collision evaluation order.
var Kinds = []Kind{Food, SuperFood, AntiDote, Poison}

func (k Kind) String() string {
	switch k {
	case Food:
		return "food"
	case SuperFood:
		return "superfood"
	case AntiDote:
		return "antidote"
	case Poison:
		return "poison"
	default:
		return "unknown"
	}
}

// Special kinds may only have one live instance.
func (k Kind) Special() bool {
	return k == SuperFood || k == AntiDote
}

type Consumable struct {
	Kind Kind
	Cell types.Cell
}
