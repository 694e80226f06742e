package systems

import (
	"math/rand/v2"

	"github.com/automoto/notedrop/archetypes"
	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/automoto/notedrop/logging"
	"github.com/automoto/notedrop/tags"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

const noteSpaceCell = 16

var noteQuery = donburi.NewQuery(filter.Contains(tags.Note, components.Note))

// NoteView is a read-only snapshot of a floating note
type NoteView struct {
	ID    string
	Glyph cfg.Glyph
	X, Y  float64
}

// SpawnNote adds a floating note for glyph at a random column. It starts at
// the top of the viewport and falls to its current height over
// cfg.Note.Duration seconds.
func SpawnNote(e *ecs.ECS, glyph cfg.Glyph, rng *rand.Rand) *donburi.Entry {
	v := GetOrCreateViewport(e)

	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}

	entry := archetypes.Note.Spawn(e)

	size := cfg.Note.FontSize
	obj := resolv.NewObject(NoteX(v.Width, rng), 0, size, size, tags.ResolvNote)
	obj.Data = entry
	GetOrCreateNoteSpace(e).Add(obj)

	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	components.Note.SetValue(entry, components.NoteData{
		ID:    id.String(),
		Glyph: glyph,
		Fall:  gween.New(0, float32(v.Height), cfg.Note.Duration, ease.Linear),
	})

	l := logging.For("notes")
	l.Debug().Str("id", id.String()).Str("glyph", string(glyph)).Float64("x", obj.X).Msg("spawned")
	return entry
}

// NoteX draws a column uniformly from [0, width-EdgeMargin).
func NoteX(width float64, rng *rand.Rand) float64 {
	span := width - cfg.Note.EdgeMargin
	if span <= 0 {
		return 0
	}
	return rng.Float64() * span
}

// UpdateNotes advances every note by one tick.
func UpdateNotes(e *ecs.ECS) {
	AdvanceNotes(e, 1/float32(ebiten.TPS()))
}

// AdvanceNotes moves every note dt seconds along its fall and removes the
// ones that reached the bottom.
func AdvanceNotes(e *ecs.ECS, dt float32) {
	var finished []*donburi.Entry

	components.Note.Each(e.World, func(entry *donburi.Entry) {
		note := components.Note.Get(entry)
		y, done := note.Fall.Update(dt)

		obj := components.Object.Get(entry)
		obj.Y = float64(y)
		obj.Update()

		if done {
			finished = append(finished, entry)
		}
	})

	for _, entry := range finished {
		destroyNote(entry)
	}
}

// RemoveNote removes the note with the given id. Removing an id that is
// already gone is a no-op and returns false.
func RemoveNote(e *ecs.ECS, id string) bool {
	var target *donburi.Entry
	components.Note.Each(e.World, func(entry *donburi.Entry) {
		if target == nil && components.Note.Get(entry).ID == id {
			target = entry
		}
	})
	if target == nil {
		return false
	}
	destroyNote(target)
	return true
}

// Notes returns a snapshot of the active notes.
func Notes(e *ecs.ECS) []NoteView {
	var out []NoteView
	components.Note.Each(e.World, func(entry *donburi.Entry) {
		note := components.Note.Get(entry)
		obj := components.Object.Get(entry)
		out = append(out, NoteView{ID: note.ID, Glyph: note.Glyph, X: obj.X, Y: obj.Y})
	})
	return out
}

// NoteCount returns the number of active notes.
func NoteCount(e *ecs.ECS) int {
	return noteQuery.Count(e.World)
}

func destroyNote(entry *donburi.Entry) {
	if !entry.Valid() {
		return
	}
	obj := components.Object.Get(entry)
	if obj.Space != nil {
		obj.Space.Remove(obj.Object)
	}
	entry.Remove()
}

// GetOrCreateNoteSpace returns the resolv space covering the viewport.
func GetOrCreateNoteSpace(e *ecs.ECS) *resolv.Space {
	entry, ok := components.Space.First(e.World)
	if !ok {
		v := GetOrCreateViewport(e)
		entry = archetypes.Space.Spawn(e)
		components.Space.Set(entry, newNoteSpace(int(v.Width), int(v.Height)))
	}
	return components.Space.Get(entry)
}

// resizeNoteSpace swaps in a space matching the new viewport and moves the
// live notes across.
func resizeNoteSpace(e *ecs.ECS, width, height int) {
	entry, ok := components.Space.First(e.World)
	if !ok {
		return
	}
	old := components.Space.Get(entry)
	space := newNoteSpace(width, height)

	components.Note.Each(e.World, func(n *donburi.Entry) {
		obj := components.Object.Get(n)
		old.Remove(obj.Object)
		space.Add(obj.Object)
	})
	components.Space.Set(entry, space)
}

func newNoteSpace(width, height int) *resolv.Space {
	return resolv.NewSpace(max(width, noteSpaceCell), max(height, noteSpaceCell), noteSpaceCell, noteSpaceCell)
}
