package scope

import "testing"

func TestParse(t *testing.T) {
	f := Parse(" nist-csf , iso-27001,,cis ")
	if f.Empty() {
		t.Fatal("filter should not be empty")
	}
	for _, id := range []string{"nist-csf", "iso-27001", "cis"} {
		if !f.Selected(id) {
			t.Errorf("Selected(%q) = false, want true", id)
		}
	}
	if f.Selected("soc2") {
		t.Error("Selected(soc2) = true, want false")
	}
}

func TestParseEmpty(t *testing.T) {
	for _, s := range []string{"", "  ", ",,"} {
		f := Parse(s)
		if !f.Empty() {
			t.Errorf("Parse(%q) should be empty", s)
		}
		// Empty filter means no restriction.
		if !f.Selected("anything") {
			t.Errorf("empty filter must select everything")
		}
		if f.IDs() != nil {
			t.Errorf("Parse(%q).IDs() = %v, want nil", s, f.IDs())
		}
	}
}

func TestFromIDs(t *testing.T) {
	f := FromIDs([]string{"a", "", "b"})
	if f.Empty() {
		t.Fatal("filter should not be empty")
	}
	if len(f.IDs()) != 2 {
		t.Errorf("IDs() = %v, want 2 entries", f.IDs())
	}
}
