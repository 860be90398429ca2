//go:build !headless

package main

import "testing"

func TestVideoOutput_EbitenImplements(t *testing.T) {
	eo := &EbitenOutput{}
	if _, ok := any(eo).(VideoOutput); !ok {
		t.Fatal("expected EbitenOutput to implement VideoOutput")
	}
}

func TestVideoOutput_EbitenRejectsShortFrame(t *testing.T) {
	eo := &EbitenOutput{}
	if err := eo.SetDisplayConfig(defaultDisplayConfig()); err != nil {
		t.Fatalf("SetDisplayConfig returned error: %v", err)
	}
	if err := eo.UpdateFrame(make([]byte, 4)); err == nil {
		t.Fatal("expected error for short frame")
	}
	if err := eo.UpdateFrame(make([]byte, 640*400*4)); err != nil {
		t.Fatalf("full frame rejected: %v", err)
	}
}

func TestDisplayKind_Parse(t *testing.T) {
	for _, s := range []string{"window", "TCELL", "ansi", "none"} {
		if _, err := ParseDisplayKind(s); err != nil {
			t.Errorf("ParseDisplayKind(%q): %v", s, err)
		}
	}
	if _, err := ParseDisplayKind("crt"); err == nil {
		t.Error("expected error for unknown display")
	}
}
