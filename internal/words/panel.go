package words

import "math/rand"

// Panel holds the word currently shown in the bonus area.
type Panel struct {
	words    []string
	rng      *rand.Rand
	current  string
	revealed int
}

// NewPanel creates a panel over list. The list is copied.
func NewPanel(list []string, seed int64) *Panel {
	return &Panel{
		words: append([]string(nil), list...),
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Reveal clears the panel and shows a random word.
// With an empty list the panel stays blank.
func (p *Panel) Reveal() string {
	p.Clear()
	if len(p.words) == 0 {
		return ""
	}
	p.current = p.words[p.rng.Intn(len(p.words))]
	p.revealed++
	return p.current
}

// Clear blanks the panel.
func (p *Panel) Clear() { p.current = "" }

// Word returns the word on display, or "".
func (p *Panel) Word() string { return p.current }

// Revealed returns how many words have been shown.
func (p *Panel) Revealed() int { return p.revealed }

// Len returns the list size.
func (p *Panel) Len() int { return len(p.words) }

// Reseed restarts the random sequence and blanks the panel.
func (p *Panel) Reseed(seed int64) {
	p.rng = rand.New(rand.NewSource(seed))
	p.current = ""
	p.revealed = 0
}
