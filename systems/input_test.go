package systems

import (
	"testing"

	"github.com/automoto/notedrop/components"
	cfg "github.com/automoto/notedrop/config"
	"github.com/stretchr/testify/assert"
)

func TestGetAction(t *testing.T) {
	tests := []struct {
		name       string
		curr, prev bool
		expect     components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"just pressed", true, false, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"just released", false, true, components.ActionState{JustReleased: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &components.InputData{}
			input.Current[cfg.ActionPressA] = tt.curr
			input.Previous[cfg.ActionPressA] = tt.prev
			assert.Equal(t, tt.expect, GetAction(input, cfg.ActionPressA))
		})
	}
}

func TestSetInputText(t *testing.T) {
	e := newTestECS()

	SetInputText(e, "xin chào")
	SetInputText(e, "xin chào")
	SetInputText(e, "")

	text := GetOrCreateInputText(e)
	assert.Equal(t, "", text.Text)
	assert.Equal(t, 2, text.Edits, "unchanged text is not an edit")
}

func TestPressKeysIgnoredWhileTyping(t *testing.T) {
	e := newTestECS()
	p := &fakePresser{}
	update := NewUpdatePressKeys(p, newTestRand())

	input := GetOrCreateInput(e)
	input.Current[cfg.ActionPressA] = true

	SetInputFocus(e, true)
	update(e)
	assert.Empty(t, p.glyphs)
	assert.Zero(t, NoteCount(e))

	SetInputFocus(e, false)
	update(e)
	assert.Equal(t, []cfg.Glyph{cfg.GlyphA}, p.glyphs)
	assert.Equal(t, 1, NoteCount(e))
}

func TestPressKeysKeepIssuanceOrder(t *testing.T) {
	e := newTestECS()
	p := &fakePresser{}
	update := NewUpdatePressKeys(p, newTestRand())

	input := GetOrCreateInput(e)
	input.Current[cfg.ActionPressB] = true
	input.Current[cfg.ActionPressA] = true
	update(e)

	assert.Equal(t, []cfg.Glyph{cfg.GlyphA, cfg.GlyphB}, p.glyphs)
	assert.Equal(t, 2, NoteCount(e))
}
