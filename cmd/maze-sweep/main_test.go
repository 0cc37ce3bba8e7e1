package main

import (
	"testing"

	"mazewalk/internal/core"
)

func TestParseSizes(t *testing.T) {
	sizes, err := parseSizes(" 21x21, 40x30,,5x5 ")
	if err != nil {
		t.Fatalf("parseSizes: %v", err)
	}
	want := []core.Size{{W: 21, H: 21}, {W: 40, H: 30}, {W: 5, H: 5}}
	if len(sizes) != len(want) {
		t.Fatalf("got %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("size %d = %v, want %v", i, sizes[i], want[i])
		}
	}

	for _, bad := range []string{"", "21", "0x5", "ax5", "5x-1"} {
		if _, err := parseSizes(bad); err == nil {
			t.Fatalf("parseSizes(%q) succeeded", bad)
		}
	}
}

func TestRunJob(t *testing.T) {
	res := runJob(job{size: core.Size{W: 21, H: 21}, seed: 9})
	if res.err != nil {
		t.Fatalf("runJob: %v", res.err)
	}
	if !res.stats.Perfect() {
		t.Fatalf("stats not perfect: %+v", res.stats)
	}
	if res.distance == 0 {
		t.Fatal("21x21 maze should place the goal away from the start")
	}
}
