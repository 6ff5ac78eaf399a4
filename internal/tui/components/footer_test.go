package components

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"kanacombo/internal/candidate"
)

func TestFooterRender(t *testing.T) {
	f := NewFooterComponent(StateInvalid, 100)
	f.UpdateSelection("3", []candidate.ID{"3", "1"}, 5, "abcd1234")

	out := f.Render()
	assert.Contains(t, out, "INVALID")
	assert.Contains(t, out, "id: 3")
	assert.Contains(t, out, "history 2/5: 3 1")
	assert.Contains(t, out, "abcd1234")
}

func TestFooterNoSelection(t *testing.T) {
	f := NewFooterComponent(StateIdle, 80)
	f.UpdateSelection("", nil, 5, "")

	out := f.Render()
	assert.Contains(t, out, "IDLE")
	assert.Contains(t, out, "id: none")
	assert.Contains(t, out, "history 0/5: -")
}

func TestStateIndicatorWidth(t *testing.T) {
	for _, s := range []ControlState{StateIdle, StateComposing, StateInvalid, StateList} {
		ind := NewStateIndicatorComponent(s)
		assert.Equal(t, len(s.String())+2, ind.Width())
	}
}
