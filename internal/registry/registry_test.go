package registry

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

type stubGame struct{ id string }

func (s stubGame) ID() string                         { return s.id }
func (s stubGame) Title() string                      { return "Stub " + s.id }
func (s stubGame) Reset(core.RuntimeConfig)           {}
func (s stubGame) Handle(core.Action) core.StepResult { return core.StepResult{} }
func (s stubGame) Step() core.StepResult              { return core.StepResult{} }
func (s stubGame) Interval() time.Duration            { return time.Second }
func (s stubGame) Render(*core.Screen)                {}
func (s stubGame) State() core.GameState              { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })

	if !Exists("stub_a") {
		t.Fatal("Exists(stub_a) = false, expected true")
	}

	g, err := Create("stub_b")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("ID() = %q, expected %q", g.ID(), "stub_b")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) expected error")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "stub_a":
			ia = i
		case "stub_b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, expected sorted stubs", ids)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("Register(duplicate) expected panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
