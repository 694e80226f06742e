package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the screen-sized resolv space the notes live in.
var Space = donburi.NewComponentType[resolv.Space]()
