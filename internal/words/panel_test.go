package words

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPanelReveal(t *testing.T) {
	list := []string{"A", "B", "C"}
	p := NewPanel(list, 7)

	assert.Equal(t, "", p.Word())
	for i := 0; i < 20; i++ {
		w := p.Reveal()
		assert.Contains(t, list, w)
		assert.Equal(t, w, p.Word())
	}
	assert.Equal(t, 20, p.Revealed())

	p.Clear()
	assert.Equal(t, "", p.Word())
	assert.Equal(t, 20, p.Revealed())
}

func TestPanelEmptyList(t *testing.T) {
	p := NewPanel(nil, 1)

	assert.NotPanics(t, func() { p.Reveal() })
	assert.Equal(t, "", p.Word())
	assert.Equal(t, 0, p.Revealed())
	assert.Equal(t, 0, p.Len())
}

func TestPanelDeterministic(t *testing.T) {
	list := []string{"A", "B", "C", "D", "E"}
	a := NewPanel(list, 42)
	b := NewPanel(list, 42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Reveal(), b.Reveal())
	}

	a.Reseed(42)
	b.Reseed(42)
	assert.Equal(t, 0, a.Revealed())
	assert.Equal(t, a.Reveal(), b.Reveal())
}

func TestPanelCopiesList(t *testing.T) {
	list := []string{"ONLY"}
	p := NewPanel(list, 1)
	list[0] = "CHANGED"
	assert.Equal(t, "ONLY", p.Reveal())
}
