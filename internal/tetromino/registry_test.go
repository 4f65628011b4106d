package tetromino

import "testing"

func TestRegistrySize(t *testing.T) {
	ensureRegistry()
	if len(byID) != Range {
		t.Fatalf("registry has %d entries, want %d", len(byID), Range)
	}
}

func TestRegistryNullIsID0(t *testing.T) {
	null := Null()
	if !null.IsNull() {
		t.Fatal("Null() is not IsNull()")
	}
	if ID(null) != 0 {
		t.Fatalf("ID(Null()) = %d, want 0", ID(null))
	}
}

func TestRegistryRoundTrip(t *testing.T) {
	ensureRegistry()
	for id := 1; id < len(byID); id += 37 {
		got, err := FromID(id)
		if err != nil {
			t.Fatalf("FromID(%d): %v", id, err)
		}
		if ID(got) != id {
			t.Errorf("ID(FromID(%d)) = %d, want %d", id, ID(got), id)
		}
	}
}

func TestFromIDRejectsOutOfRange(t *testing.T) {
	ensureRegistry()
	if _, err := FromID(-1); err == nil {
		t.Error("want error for negative id")
	}
	if _, err := FromID(len(byID)); err == nil {
		t.Error("want error for id past range")
	}
}
