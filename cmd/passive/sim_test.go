package main

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/passive/internal/config"
	"github.com/vovakirdan/passive/internal/core"
	"github.com/vovakirdan/passive/internal/games/passive"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		in      string
		want    []core.Action
		wantErr bool
	}{
		{"", nil, false},
		{"up", []core.Action{core.ActionUp}, false},
		{"Up, LEFT", []core.Action{core.ActionUp, core.ActionLeft}, false},
		{"down,right", []core.Action{core.ActionDown, core.ActionRight}, false},
		{"jump", nil, true},
		{"up,,left", nil, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseKeys(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("parseKeys(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if len(got) != len(tc.want) {
				t.Fatalf("parseKeys(%q) = %v, expected %v", tc.in, got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("parseKeys(%q)[%d] = %v, expected %v", tc.in, i, got[i], tc.want[i])
				}
			}
		})
	}
}

func newSimGame(cfg config.PassiveConfig, seed int64) *passive.Game {
	return passive.New(cfg, 1, rand.New(rand.NewSource(seed)))
}

func TestSimulateIsReproducible(t *testing.T) {
	opts := simOptions{Ticks: 1200, DT: 1.0 / 60.0, Aspect: 1, Seed: 42, Keys: []core.Action{core.ActionLeft}}

	a := simulate(newSimGame(config.DefaultPassiveConfig(), 42), opts)
	b := simulate(newSimGame(config.DefaultPassiveConfig(), 42), opts)

	if a.Ticks != b.Ticks || a.Snapshot.Timer != b.Snapshot.Timer || a.Snapshot.Player != b.Snapshot.Player {
		t.Fatalf("runs diverged: %+v vs %+v", a, b)
	}
	if len(a.Snapshot.Enemies) != len(b.Snapshot.Enemies) {
		t.Fatalf("enemy counts diverged: %d vs %d", len(a.Snapshot.Enemies), len(b.Snapshot.Enemies))
	}
	for i := range a.Snapshot.Enemies {
		if a.Snapshot.Enemies[i] != b.Snapshot.Enemies[i] {
			t.Errorf("enemy %d diverged: %v vs %v", i, a.Snapshot.Enemies[i], b.Snapshot.Enemies[i])
		}
	}
}

func TestSimulateStopsOnCrash(t *testing.T) {
	cfg := config.DefaultPassiveConfig()
	// A large gate appears every tick; their spinning edges sweep the origin
	cfg.Gates.SpawnFreq = 0.001
	cfg.Gates.Radius = 1.5

	opts := simOptions{Ticks: 400, DT: 0.05, Aspect: 1, StopOnCrash: true}
	res := simulate(newSimGame(cfg, 1), opts)

	if !res.Snapshot.Crashed {
		t.Fatal("expected a crash")
	}
	if res.Ticks >= opts.Ticks {
		t.Errorf("ran %d ticks, expected an early stop", res.Ticks)
	}
}

func TestSimulateResumesAfterCrash(t *testing.T) {
	cfg := config.DefaultPassiveConfig()
	cfg.Gates.SpawnFreq = 0.001
	cfg.Gates.Radius = 1.5

	opts := simOptions{Ticks: 20, DT: 0.1, Aspect: 1, StopOnCrash: false}
	res := simulate(newSimGame(cfg, 1), opts)

	if res.Ticks != 20 {
		t.Errorf("ran %d ticks, expected 20", res.Ticks)
	}
	if res.Snapshot.Paused {
		t.Error("run should end resumed")
	}
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	opts := simOptions{Ticks: 10, Seed: 5}
	printSummary(&buf, opts, simResult{Ticks: 10, Snapshot: passive.Snapshot{Timer: 1.5, NextWave: 1}})

	out := buf.String()
	for _, want := range []string{"Seed:      5", "Ticks:     10 of 10", "Time:      1.50s", "survived"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
