package capability

import "testing"

func TestDetectIsStable(t *testing.T) {
	a := Detect()
	b := Detect()
	if a != b {
		t.Fatalf("Detect() returned different results across calls: %+v vs %+v", a, b)
	}
}

func TestStringNeverEmpty(t *testing.T) {
	s := Detect().String()
	if s == "" {
		t.Fatal("String() returned an empty summary")
	}
}
