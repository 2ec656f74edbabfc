package telemetry

import (
	"slices"
	"testing"

	"github.com/Faultbox/motorscope/internal/config"
)

func TestGenerateShape(t *testing.T) {
	set := Generate(DefaultSamples, 1)
	wantLines := map[Channel]int{Vibration: 1, Temperature: 1, Current: 3}
	for _, c := range Channels {
		s := set.Get(c)
		if s.Channel != c {
			t.Errorf("series %s reports channel %s", c, s.Channel)
		}
		if len(s.Lines) != wantLines[c] {
			t.Errorf("%s has %d lines, want %d", c, len(s.Lines), wantLines[c])
		}
		for _, l := range s.Lines {
			if len(l.Values) != DefaultSamples {
				t.Errorf("%s/%s has %d samples", c, l.Name, len(l.Values))
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(60, 42)
	b := Generate(60, 42)
	c := Generate(60, 43)
	for _, ch := range Channels {
		if !slices.Equal(a.Get(ch).Lines[0].Values, b.Get(ch).Lines[0].Values) {
			t.Errorf("%s differs for the same seed", ch)
		}
	}
	if slices.Equal(a.Get(Vibration).Lines[0].Values, c.Get(Vibration).Lines[0].Values) {
		t.Error("different seeds produced identical vibration")
	}
}

func TestGenerateRanges(t *testing.T) {
	set := Generate(60, 1740)
	tests := []struct {
		ch     Channel
		lo, hi float64
	}{
		{Vibration, 0, 10},
		{Temperature, 55, 80},
		{Current, 15, 33},
	}
	for _, tt := range tests {
		lo, hi := set.Get(tt.ch).Range()
		if lo < tt.lo || hi > tt.hi {
			t.Errorf("%s range [%g, %g] outside [%g, %g]", tt.ch, lo, hi, tt.lo, tt.hi)
		}
		if lo >= hi {
			t.Errorf("%s is flat", tt.ch)
		}
	}
}

func TestGenerateDefaultsLength(t *testing.T) {
	if n := Generate(0, 1).Get(Temperature).Len(); n != DefaultSamples {
		t.Errorf("len = %d, want %d", n, DefaultSamples)
	}
}

func TestFromConfig(t *testing.T) {
	cfg := config.Default().Telemetry
	set := FromConfig(cfg)
	if set.Samples != cfg.Samples || set.Seed != cfg.Seed {
		t.Errorf("set = %d/%d, want %d/%d", set.Samples, set.Seed, cfg.Samples, cfg.Seed)
	}
}

func TestChannelNames(t *testing.T) {
	for _, c := range Channels {
		got, err := ParseChannel(c.String())
		if err != nil || got != c {
			t.Errorf("ParseChannel(%q) = %v, %v", c.String(), got, err)
		}
		if c.Unit() == "" {
			t.Errorf("%s has no unit", c)
		}
	}
	if _, err := ParseChannel("pressure"); err == nil {
		t.Error("expected error for unknown channel")
	}
	if Current.Next() != Vibration {
		t.Error("Next does not wrap")
	}
	if Channel(9).String() != "channel(9)" {
		t.Errorf("unknown channel prints %q", Channel(9).String())
	}
}
