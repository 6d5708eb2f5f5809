package member

import "testing"

func TestMember_ID(t *testing.T) {
	t.Parallel()

	m := New("Anja")
	if m.ID() != "Anja" {
		t.Errorf("ID() = %q, want %q", m.ID(), "Anja")
	}

	m.Name = "Tyranja"
	if m.ID() != "Tyranja" {
		t.Errorf("ID() after rename = %q, want %q", m.ID(), "Tyranja")
	}
}

func TestFromNames_PreservesOrder(t *testing.T) {
	t.Parallel()

	names := []string{"Maren", "Anja", "Maren"}
	members := FromNames(names)

	if len(members) != len(names) {
		t.Fatalf("len = %d, want %d", len(members), len(names))
	}
	for i, m := range members {
		if m.Name != names[i] {
			t.Errorf("members[%d].Name = %q, want %q", i, m.Name, names[i])
		}
	}
}

func TestFromNames_Empty(t *testing.T) {
	t.Parallel()

	members := FromNames(nil)
	if members == nil {
		t.Fatal("FromNames(nil) = nil, want empty non-nil slice")
	}
	if len(members) != 0 {
		t.Errorf("len = %d, want 0", len(members))
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	members := FromNames([]string{"Anja", "Maren"})

	got, ok := Find(members, "Maren")
	if !ok {
		t.Fatal("Find(Maren) ok = false, want true")
	}
	if got.Name != "Maren" {
		t.Errorf("Find(Maren).Name = %q, want %q", got.Name, "Maren")
	}

	if _, ok := Find(members, "Monsta"); ok {
		t.Error("Find(Monsta) ok = true, want false")
	}
}
