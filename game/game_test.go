package game

import (
	"sync"
	"testing"

	"github.com/byrax15/snake-gl/component"
	"github.com/byrax15/snake-gl/core"
	"github.com/byrax15/snake-gl/engine/fsm"
	"github.com/byrax15/snake-gl/event"
	"github.com/byrax15/snake-gl/parameter"
	"github.com/byrax15/snake-gl/system"
)

var farApple = core.Point{X: 10, Y: -10}

// newTestGame builds a 24x24 game whose apples spawn at the given cells in order
func newTestGame(t *testing.T, cells ...core.Point) *Game {
	t.Helper()
	if len(cells) == 0 {
		cells = []core.Point{farApple}
	}
	i := 0
	picker := func() core.Point {
		p := cells[i]
		if i < len(cells)-1 {
			i++
		}
		return p
	}

	g, err := New(DefaultConfig(), Deps{
		Jitter: func() float64 { return 1 },
		Picker: picker,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

func positions(s Snapshot) []core.Point {
	out := make([]core.Point, len(s.Entities))
	for i, e := range s.Entities {
		out[i] = e.Position
	}
	return out
}

func drainEvents(g *Game) []event.GameEvent {
	var out []event.GameEvent
	g.Events().Drain(func(ev event.GameEvent) {
		out = append(out, ev)
	})
	return out
}

func tailCount(s Snapshot) int {
	return len(s.ByRole(component.RoleTail))
}

func TestNew_RejectsOddGrid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridDim = 23
	if _, err := New(cfg, Deps{}); err == nil {
		t.Error("Expected error for odd grid")
	}

	cfg = DefaultConfig()
	cfg.Apples = 0
	if _, err := New(cfg, Deps{}); err == nil {
		t.Error("Expected error for zero apples")
	}
}

func TestNew_RejectsMoreApplesThanFreeCells(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GridDim = 2
	cfg.Apples = 2
	if _, err := New(cfg, Deps{}); err == nil {
		t.Error("Expected error for 2 apples on a 2x2 grid")
	}

	cfg.Apples = 1
	if _, err := New(cfg, Deps{}); err != nil {
		t.Errorf("Expected 1 apple to fit a 2x2 grid, got %v", err)
	}
}

func TestNew_InitialSnapshot(t *testing.T) {
	g := newTestGame(t)
	s := g.Snapshot()

	if s.Dim != 24 {
		t.Errorf("Expected dim 24, got %d", s.Dim)
	}
	if s.Mode != fsm.Running {
		t.Errorf("Expected running, got %v", s.Mode)
	}
	head, ok := s.Head()
	if !ok || head.Position != (core.Point{}) {
		t.Errorf("Expected head at origin, got %v", head.Position)
	}
	want := []core.Point{{X: 0, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: -2}, farApple}
	got := positions(s)
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Entity %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	apple := s.ByRole(component.RoleApple)[0]
	if apple.DeviceX != float32(10)/24 || apple.DeviceY != float32(-10)/24 {
		t.Errorf("Expected device coordinates (10/24, -10/24), got (%f, %f)", apple.DeviceX, apple.DeviceY)
	}
}

func TestScenario_StraightLine(t *testing.T) {
	for k := 1; k < 12; k++ {
		g := newTestGame(t)
		g.SetDirection(system.DirectionUp)

		g.Tick()
		if !g.State().StartMove {
			t.Fatalf("k=%d: expected StartMove after first tick", k)
		}
		if head, _ := g.Snapshot().Head(); head.Position != (core.Point{}) {
			t.Fatalf("k=%d: expected no movement on first tick, got %v", k, head.Position)
		}

		for i := 1; i <= k; i++ {
			g.Tick()
			head, _ := g.Snapshot().Head()
			if head.Position != (core.Point{X: 0, Y: i}) {
				t.Fatalf("k=%d tick %d: expected head (0,%d), got %v", k, i+1, i, head.Position)
			}
		}
		if g.Mode() != fsm.Running {
			t.Errorf("k=%d: expected running, got %v", k, g.Mode())
		}
	}
}

func TestScenario_EatGrowsNextTick(t *testing.T) {
	g := newTestGame(t, core.Point{X: 0, Y: 2}, farApple)
	g.SetDirection(system.DirectionUp)

	g.Tick() // arm
	g.Tick() // (0,1)
	g.Tick() // (0,2) eats

	s := g.Snapshot()
	if s.Score != 1 {
		t.Errorf("Expected score 1, got %d", s.Score)
	}
	apples := s.ByRole(component.RoleApple)
	if len(apples) != 1 || apples[0].Position != farApple {
		t.Errorf("Expected one replacement apple at %v, got %v", farApple, apples)
	}
	if g.Grid().OutOfBounds(apples[0].Position) {
		t.Errorf("Expected in-bounds replacement, got %v", apples[0].Position)
	}
	if tailCount(s) != 2 {
		t.Errorf("Expected 2 tails on eat tick, got %d", tailCount(s))
	}
	if !g.State().AteApple {
		t.Error("Expected AteApple pending")
	}

	g.Tick()
	if got := tailCount(g.Snapshot()); got != 3 {
		t.Errorf("Expected 3 tails after next tick, got %d", got)
	}
	if g.State().AteApple {
		t.Error("Expected AteApple consumed")
	}
}

func TestScenario_NEatsGrowByN(t *testing.T) {
	const n = 5
	cells := make([]core.Point, 0, n+1)
	for i := 0; i < n; i++ {
		cells = append(cells, core.Point{X: 0, Y: 2 + i})
	}
	cells = append(cells, farApple)

	g := newTestGame(t, cells...)
	g.SetDirection(system.DirectionUp)
	for i := 0; i < n+3; i++ {
		g.Tick()
	}

	s := g.Snapshot()
	if s.Score != n {
		t.Errorf("Expected score %d, got %d", n, s.Score)
	}
	if tailCount(s) != 2+n {
		t.Errorf("Expected %d tails, got %d", 2+n, tailCount(s))
	}
	if s.Mode != fsm.Running {
		t.Errorf("Expected running, got %v", s.Mode)
	}
}

func TestPause_FreezesPositions(t *testing.T) {
	g := newTestGame(t)
	g.SetDirection(system.DirectionRight)
	g.Tick()
	g.Tick()

	g.Pause()
	g.Tick()
	frozen := positions(g.Snapshot())

	for i := 0; i < 5; i++ {
		g.Tick()
		got := positions(g.Snapshot())
		for j := range frozen {
			if got[j] != frozen[j] {
				t.Fatalf("Tick %d: entity %d moved from %v to %v", i, j, frozen[j], got[j])
			}
		}
	}
	if g.Mode() != fsm.Paused {
		t.Errorf("Expected paused, got %v", g.Mode())
	}

	g.Resume()
	g.Tick()
	head, _ := g.Snapshot().Head()
	if head.Position != (core.Point{X: 2, Y: 0}) {
		t.Errorf("Expected head (2,0) after resume, got %v", head.Position)
	}
}

func TestCollision_WallPausesSameTick(t *testing.T) {
	g := newTestGame(t)
	g.SetDirection(system.DirectionLeft)
	g.Tick() // arm

	for i := 1; i <= 13; i++ {
		g.Tick()
		if i < 13 && g.Mode() != fsm.Running {
			t.Fatalf("Tick %d: expected running, got %v", i, g.Mode())
		}
	}
	if g.Mode() != fsm.Paused {
		t.Fatalf("Expected paused on the tick the head left the grid, got %v", g.Mode())
	}
	if !g.Snapshot().Crashed {
		t.Error("Expected crashed flag in snapshot")
	}

	var collision *event.CollisionPayload
	for _, ev := range drainEvents(g) {
		if ev.Type == event.EventCollision {
			collision = ev.Payload.(*event.CollisionPayload)
		}
	}
	if collision == nil {
		t.Fatal("Expected a collision event")
	}
	if collision.Cause != event.CauseWall || collision.Position != (core.Point{X: -13, Y: 0}) {
		t.Errorf("Expected wall at (-13,0), got %v at %v", collision.Cause, collision.Position)
	}
}

func TestCollision_SelfPausesSameTick(t *testing.T) {
	g := newTestGame(t)
	g.SetDirection(system.DirectionDown)
	g.Tick()
	g.Tick()

	if g.Mode() != fsm.Paused {
		t.Errorf("Expected paused after reversing into the body, got %v", g.Mode())
	}
}

func TestResume_IgnoredAfterCollision(t *testing.T) {
	g := newTestGame(t)
	g.SetDirection(system.DirectionDown)
	g.Tick()
	g.Tick()

	g.Resume()
	g.Tick()
	if g.Mode() != fsm.Paused {
		t.Errorf("Expected resume to be ignored after collision, got %v", g.Mode())
	}
}

func TestCollision_FreezesPositionsWhilePaused(t *testing.T) {
	g := newTestGame(t)
	g.SetDirection(system.DirectionLeft)
	for i := 0; i < 14; i++ {
		g.Tick()
	}
	if g.Mode() != fsm.Paused {
		t.Fatalf("Expected paused after wall collision, got %v", g.Mode())
	}
	s := g.Snapshot()
	if head, _ := s.Head(); head.Position != (core.Point{X: -13, Y: 0}) {
		t.Fatalf("Expected head at (-13,0), got %v", head.Position)
	}
	frozen := positions(s)
	length := s.Length

	// Steering and resuming while crashed must not move anything
	g.SetDirection(system.DirectionUp)
	g.Submit(event.GameEvent{
		Type:    event.EventDirectionRequest,
		Payload: &event.DirectionPayload{Velocity: system.DirectionDown},
	})
	g.Submit(event.GameEvent{Type: event.EventResumeRequest})

	for i := 0; i < 5; i++ {
		g.Tick()
		got := g.Snapshot()
		if got.Mode != fsm.Paused {
			t.Fatalf("Tick %d: expected paused, got %v", i, got.Mode)
		}
		if got.Length != length {
			t.Errorf("Tick %d: expected length %d, got %d", i, length, got.Length)
		}
		gotPos := positions(got)
		for j := range frozen {
			if gotPos[j] != frozen[j] {
				t.Fatalf("Tick %d: entity %d moved from %v to %v", i, j, frozen[j], gotPos[j])
			}
		}
	}
}

func TestSubmit_OverflowKeepsLatestCommands(t *testing.T) {
	g := newTestGame(t)
	for i := 0; i < parameter.CommandQueueSize+5; i++ {
		g.Submit(event.GameEvent{
			Type:    event.EventDirectionRequest,
			Payload: &event.DirectionPayload{Velocity: system.DirectionLeft},
		})
	}
	g.Submit(event.GameEvent{
		Type:    event.EventDirectionRequest,
		Payload: &event.DirectionPayload{Velocity: system.DirectionRight},
	})

	g.Tick()
	g.Tick()
	if head, _ := g.Snapshot().Head(); head.Position != (core.Point{X: 1, Y: 0}) {
		t.Errorf("Expected the newest direction to win, head at %v", head.Position)
	}
	if g.commands.Dropped() != 6 {
		t.Errorf("Expected 6 dropped commands, got %d", g.commands.Dropped())
	}
}

func TestRestart_ResetsSnake(t *testing.T) {
	g := newTestGame(t, core.Point{X: 0, Y: 2}, farApple)
	g.SetDirection(system.DirectionUp)
	for i := 0; i < 14; i++ {
		g.Tick()
	}
	if g.Mode() != fsm.Paused {
		t.Fatalf("Expected paused at the wall, got %v", g.Mode())
	}

	g.Restart()
	g.Tick()

	s := g.Snapshot()
	head, _ := s.Head()
	if head.Position != (core.Point{}) {
		t.Errorf("Expected head at origin, got %v", head.Position)
	}
	want := []core.Point{{X: 0, Y: -1}, {X: 0, Y: -2}}
	tails := s.ByRole(component.RoleTail)
	if len(tails) != 2 {
		t.Fatalf("Expected 2 tails, got %d", len(tails))
	}
	for i := range want {
		if tails[i].Position != want[i] {
			t.Errorf("Tail %d: expected %v, got %v", i, want[i], tails[i].Position)
		}
	}
	if s.Mode != fsm.Running {
		t.Errorf("Expected running, got %v", s.Mode)
	}
	if s.Crashed || s.Score != 0 {
		t.Errorf("Expected cleared crash and score, got crashed=%v score=%d", s.Crashed, s.Score)
	}
	st := g.State()
	if st.StartMove || st.AteApple {
		t.Errorf("Expected cleared flags, got %+v", st)
	}

	// Velocity is zero, the snake stays put
	g.Tick()
	if head, _ := g.Snapshot().Head(); head.Position != (core.Point{}) {
		t.Errorf("Expected head to stay at origin, got %v", head.Position)
	}

	restarted := false
	for _, ev := range drainEvents(g) {
		if ev.Type == event.EventRestarted {
			restarted = true
		}
	}
	if !restarted {
		t.Error("Expected a restarted event")
	}
}

func TestSubmit_ConcurrentCommands(t *testing.T) {
	g := newTestGame(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g.Submit(event.GameEvent{
				Type:    event.EventDirectionRequest,
				Payload: &event.DirectionPayload{Velocity: system.DirectionRight},
			})
		}()
	}
	wg.Wait()

	g.Tick()
	g.Tick()
	if head, _ := g.Snapshot().Head(); head.Position != (core.Point{X: 1, Y: 0}) {
		t.Errorf("Expected head (1,0), got %v", head.Position)
	}

	g.Submit(event.GameEvent{Type: event.EventPauseRequest})
	g.Tick()
	if g.Mode() != fsm.Paused {
		t.Errorf("Expected paused after submitted pause, got %v", g.Mode())
	}

	g.Submit(event.GameEvent{Type: event.EventResumeRequest})
	g.Tick()
	if g.Mode() != fsm.Running {
		t.Errorf("Expected running after submitted resume, got %v", g.Mode())
	}
}

func TestModeChangedEvents(t *testing.T) {
	g := newTestGame(t)
	g.Pause()
	g.Restart()
	g.Tick()

	var got []string
	for _, ev := range drainEvents(g) {
		if ev.Type == event.EventModeChanged {
			p := ev.Payload.(*event.ModeChangedPayload)
			got = append(got, p.From+">"+p.To)
		}
	}
	want := []string{"running>paused", "paused>restarting", "restarting>running"}
	if len(got) != len(want) {
		t.Fatalf("Expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Transition %d: expected %s, got %s", i, want[i], got[i])
		}
	}
}

func TestRandomApples_StayInBounds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.Apples = 3
	g, err := New(cfg, Deps{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	for _, a := range g.Snapshot().ByRole(component.RoleApple) {
		if g.Grid().OutOfBounds(a.Position) {
			t.Errorf("Apple %v out of bounds", a.Position)
		}
	}
	if n := len(g.Snapshot().ByRole(component.RoleApple)); n != 3 {
		t.Errorf("Expected 3 apples, got %d", n)
	}
}
