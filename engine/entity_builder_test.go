package engine

import (
	"testing"

	"github.com/byrax15/snake-gl/component"
	"github.com/byrax15/snake-gl/core"
)

func TestEntityBuilder(t *testing.T) {
	w := NewWorld()

	e := With(
		With(w.NewEntity(), w.Components.Position, core.Point{X: 3, Y: 7}),
		w.Components.Apple, component.AppleComponent{},
	).Build()

	if e == 0 {
		t.Error("Expected non-zero entity ID")
	}
	if !w.IsAlive(e) {
		t.Error("Expected built entity to be alive")
	}

	pos, ok := w.Components.Position.GetComponent(e)
	if !ok || pos.X != 3 || pos.Y != 7 {
		t.Errorf("Expected position (3, 7), got %v ok=%v", pos, ok)
	}
	if !w.Components.Apple.HasComponent(e) {
		t.Error("Expected apple tag on entity")
	}
}

func TestEntityBuilder_UniqueIDs(t *testing.T) {
	w := NewWorld()
	a := w.NewEntity().Build()
	b := w.NewEntity().Build()
	if a == b {
		t.Errorf("Expected unique IDs, both were %d", a)
	}
}

func TestEntityBuilder_PanicAfterBuild(t *testing.T) {
	w := NewWorld()
	eb := w.NewEntity()
	eb.Build()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic when adding components after Build()")
		}
	}()
	With(eb, w.Components.Apple, component.AppleComponent{})
}
