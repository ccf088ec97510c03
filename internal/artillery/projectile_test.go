package artillery

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

func TestNewProjectile_Velocity(t *testing.T) {
	tests := []struct {
		angle, velocity float64
		xvel, yvel      float64
	}{
		{0, 10, 10, 0},
		{90, 10, 0, 10},
		{180, 10, -10, 0},
		{45, math.Sqrt2, 1, 1},
	}
	for _, tt := range tests {
		p := NewProjectile(tt.angle, tt.velocity, 0, 0, 0, -10, 10)
		if math.Abs(p.xvel-tt.xvel) > epsilon || math.Abs(p.yvel-tt.yvel) > epsilon {
			t.Errorf("angle %v: velocity = (%v, %v), want (%v, %v)", tt.angle, p.xvel, p.yvel, tt.xvel, tt.yvel)
		}
	}
}

func TestProjectile_UpdateFalling(t *testing.T) {
	p := NewProjectile(90, 0, 0, 0, 5, -10, 10)

	p.Update(1)

	if math.Abs(p.Y()-0.1) > epsilon {
		t.Errorf("Y = %v, want 0.1", p.Y())
	}
	if p.X() != 0 {
		t.Errorf("X = %v, want 0", p.X())
	}
	if p.yvel != -9.8 {
		t.Errorf("yvel = %v, want -9.8", p.yvel)
	}
	if !p.IsMoving() {
		t.Error("projectile should still be moving")
	}

	p.Update(1)
	if p.Y() != 0 {
		t.Errorf("Y = %v, want 0 after hitting the ground", p.Y())
	}
	if p.IsMoving() {
		t.Error("projectile should have stopped")
	}
}

func TestProjectile_UpdateWind(t *testing.T) {
	p := NewProjectile(0, 0, 2, 0, 100, -10, 10)

	p.Update(1)

	// x = 1 * (0 + 2) / 2
	if p.X() != 1 {
		t.Errorf("X = %v, want 1", p.X())
	}
	if p.xvel != 2 {
		t.Errorf("xvel = %v, want 2", p.xvel)
	}
}

func TestProjectile_ClampBounds(t *testing.T) {
	right := NewProjectile(0, 1000, 0, 0, 50, -10, 10)
	right.Update(1)
	if right.X() != 10 {
		t.Errorf("X = %v, want 10", right.X())
	}
	if right.IsMoving() {
		t.Error("projectile at the upper bound should not move")
	}

	left := NewProjectile(180, 1000, 0, 0, 50, -10, 10)
	left.Update(1)
	if left.X() != -10 {
		t.Errorf("X = %v, want -10", left.X())
	}
	if left.IsMoving() {
		t.Error("projectile at the lower bound should not move")
	}
}

func TestProjectile_LandedStaysLanded(t *testing.T) {
	p := NewProjectile(45, 20, 0, 0, 0, -100, 100)
	p.Update(0.1)
	for p.IsMoving() {
		p.Update(0.1)
	}
	x := p.X()

	for i := 0; i < 10; i++ {
		p.Update(0.1)
		if p.IsMoving() {
			t.Fatal("landed projectile started moving again")
		}
		if p.Y() != 0 {
			t.Fatalf("Y = %v, want 0", p.Y())
		}
	}
	if p.X() < x {
		t.Errorf("X = %v, moved backwards from %v", p.X(), x)
	}
}

func TestProjectile_StaysInField(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		p := NewProjectile(
			rapid.Float64Range(-360, 360).Draw(t, "angle"),
			rapid.Float64Range(0, 200).Draw(t, "velocity"),
			rapid.Float64Range(-10, 10).Draw(t, "wind"),
			rapid.Float64Range(-110, 110).Draw(t, "x"),
			rapid.Float64Range(0, 50).Draw(t, "y"),
			-110, 110,
		)
		steps := rapid.SliceOfN(rapid.Float64Range(0, 2), 1, 200).Draw(t, "steps")
		for _, dt := range steps {
			p.Update(dt)
			if p.Y() < 0 {
				t.Fatalf("Y = %v below ground", p.Y())
			}
			if p.X() < -110 || p.X() > 110 {
				t.Fatalf("X = %v outside field", p.X())
			}
		}
	})
}

func TestProjectile_Terminates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		g := NewGame(10, 3)
		g.SetCurrentWind(rapid.Float64Range(-10, 10).Draw(t, "wind"))
		p := g.players[rapid.IntRange(0, 1).Draw(t, "player")]

		proj := p.Fire(
			rapid.Float64Range(1, 179).Draw(t, "angle"),
			rapid.Float64Range(1, 100).Draw(t, "velocity"),
		)
		for i := 0; proj.IsMoving(); i++ {
			if i > 100000 {
				t.Fatalf("projectile still moving at (%v, %v)", proj.X(), proj.Y())
			}
			proj.Update(0.05)
		}
	})
}
