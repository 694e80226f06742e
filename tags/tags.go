package tags

import "github.com/yohamta/donburi"

var (
	Note  = donburi.NewTag().SetName("Note")
	Disc  = donburi.NewTag().SetName("Disc")
	Cover = donburi.NewTag().SetName("Cover")
)

// Resolv tags
const (
	ResolvNote = "note"
)
