package arena

import "testing"

func TestSpawn_HandlesGrowInCreationOrder(t *testing.T) {
	a := New()
	p := a.Spawn(KindPlayer)
	b1 := a.Spawn(KindBomb)
	b2 := a.Spawn(KindBomb)

	if p == NoHandle {
		t.Fatal("Spawn returned NoHandle")
	}
	if !(p < b1 && b1 < b2) {
		t.Errorf("handles = %d, %d, %d, want strictly increasing", p, b1, b2)
	}
	if got := a.KindOf(b1); got != KindBomb {
		t.Errorf("KindOf(bomb) = %v, want Bomb", got)
	}
	if got := a.Handles(KindBomb); len(got) != 2 || got[0] != b1 || got[1] != b2 {
		t.Errorf("Handles(Bomb) = %v, want [%d %d]", got, b1, b2)
	}
	if got := a.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestDespawn_IsIdempotent(t *testing.T) {
	a := New()
	h := a.Spawn(KindHazard)

	if !a.Despawn(h) {
		t.Fatal("Despawn(live) = false, want true")
	}
	if a.Despawn(h) {
		t.Error("Despawn(removed) = true, want false")
	}
	if a.Alive(h) {
		t.Error("Alive(removed) = true, want false")
	}
	if got := a.KindOf(h); got != KindNone {
		t.Errorf("KindOf(removed) = %v, want None", got)
	}
	if a.Is(h, KindNone) || a.Is(NoHandle, KindNone) {
		t.Error("Is(_, None) = true, want false")
	}
	if got := a.Count(KindHazard); got != 0 {
		t.Errorf("Count(Hazard) = %d, want 0", got)
	}

	// Handles are not reused after a despawn.
	if next := a.Spawn(KindHazard); next == h {
		t.Errorf("Spawn reused handle %d", h)
	}
}

func TestClassify(t *testing.T) {
	a := New()
	player := a.Spawn(KindPlayer)
	bomb := a.Spawn(KindBomb)
	hazard := a.Spawn(KindHazard)

	match, other, ok := a.Classify(player, bomb, KindBomb)
	if !ok || match != bomb || other != player {
		t.Errorf("Classify(player, bomb, Bomb) = %d, %d, %v; want %d, %d, true", match, other, ok, bomb, player)
	}

	h, p, ok := a.ClassifyPair(player, hazard, KindHazard, KindPlayer)
	if !ok || h != hazard || p != player {
		t.Errorf("ClassifyPair(player, hazard) = %d, %d, %v; want %d, %d, true", h, p, ok, hazard, player)
	}

	if _, _, ok := a.ClassifyPair(player, bomb, KindHazard, KindPlayer); ok {
		t.Error("ClassifyPair(player, bomb, Hazard, Player) ok = true, want false")
	}

	a.Despawn(bomb)
	if _, _, ok := a.Classify(player, bomb, KindBomb); ok {
		t.Error("Classify with a despawned bomb ok = true, want false")
	}
}
