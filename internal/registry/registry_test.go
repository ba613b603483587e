package registry

import (
	"context"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/input"
)

type stubFrontend struct {
	id   string
	opts Options
}

func (s stubFrontend) ID() string    { return s.id }
func (s stubFrontend) Title() string { return "Stub " + s.id }

func (s stubFrontend) Run(ctx context.Context, play PlayFunc) (engine.Result, error) {
	return play(ctx, nil, nil)
}

func TestRegisterAndCreate(t *testing.T) {
	Register("stub-b", func(opts Options) Frontend { return stubFrontend{id: "stub-b", opts: opts} })
	Register("stub-a", func(opts Options) Frontend { return stubFrontend{id: "stub-a", opts: opts} })

	if !Exists("stub-a") || !Exists("stub-b") {
		t.Fatal("Exists() = false for a registered frontend")
	}
	if Exists("stub-missing") {
		t.Error("Exists() = true for an unknown frontend")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "stub-a" && info.Title != "Stub stub-a" {
			t.Errorf("Title = %q, expected %q", info.Title, "Stub stub-a")
		}
	}
	ia, ib := -1, -1
	for i, id := range ids {
		switch id {
		case "stub-a":
			ia = i
		case "stub-b":
			ib = i
		}
	}
	if ia < 0 || ib < 0 || ia > ib {
		t.Errorf("List() = %v, expected sorted ids containing both stubs", ids)
	}

	fe, err := Create("stub-a", Options{})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if fe.ID() != "stub-a" {
		t.Errorf("ID() = %q, expected stub-a", fe.ID())
	}
	if fe.(stubFrontend).opts.Logger == nil {
		t.Error("Create() should fill in a logger")
	}

	ran := false
	if _, err := fe.Run(context.Background(), func(context.Context, input.Keyboard, engine.Display) (engine.Result, error) {
		ran = true
		return engine.Result{}, nil
	}); err != nil || !ran {
		t.Errorf("Run() = %v, ran = %v; expected the play function to run", err, ran)
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("no-such-frontend", DefaultOptions()); err == nil {
		t.Error("Create() should fail for an unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub-dup", func(opts Options) Frontend { return stubFrontend{id: "stub-dup"} })
	defer func() {
		if recover() == nil {
			t.Error("Register() should panic on a duplicate id")
		}
	}()
	Register("stub-dup", func(opts Options) Frontend { return stubFrontend{id: "stub-dup"} })
}
