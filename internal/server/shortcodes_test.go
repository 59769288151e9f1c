package server

import "testing"

func TestMapShortCodesCaseInsensitive(t *testing.T) {
	selected, err := mapShortCodes("A,tf, DCLOT")
	if err != nil {
		t.Fatalf("mapShortCodes: %v", err)
	}
	for _, name := range []string{"Arrow", "The Flash", "DC Legends of Tomorrow"} {
		if !selected[name] {
			t.Fatalf("expected %q selected: %#v", name, selected)
		}
	}
	if len(selected) != 3 {
		t.Fatalf("unexpected selection size: %#v", selected)
	}
}

func TestMapShortCodesUnknownCode(t *testing.T) {
	if _, err := mapShortCodes("a,xyz"); err == nil {
		t.Fatal("expected error for unknown code")
	}
}
