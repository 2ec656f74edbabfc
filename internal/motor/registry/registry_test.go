package registry

import "testing"

func TestRegistryCoversEveryComponent(t *testing.T) {
	want := []ComponentID{
		Housing, BearingDrive, BearingFan, StatorWinding,
		RotorBars, Shaft, FanGuard, JunctionBox,
	}
	ids := IDs()
	if len(ids) != len(want) {
		t.Fatalf("IDs() = %d entries, want %d", len(ids), len(want))
	}
	for i, id := range want {
		if ids[i] != id {
			t.Errorf("IDs()[%d] = %s, want %s", i, ids[i], id)
		}
	}
}

func TestRecordsWithinBounds(t *testing.T) {
	for _, r := range All() {
		if r.HealthPercent < 0 || r.HealthPercent > 100 {
			t.Errorf("%s health %g out of [0,100]", r.ID, r.HealthPercent)
		}
		if r.Label == "" || r.RemainingLife == "" {
			t.Errorf("%s missing label or remaining life", r.ID)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	recs := All()
	recs[0].Label = "mutated"
	if r, _ := Lookup(recs[0].ID); r.Label == "mutated" {
		t.Error("All() exposed the backing table")
	}
}

func TestRecordSlicesAreCopies(t *testing.T) {
	recs := All()
	for i := range recs {
		if len(recs[i].Faults) == 0 || len(recs[i].Actions) == 0 {
			continue
		}
		id := recs[i].ID
		recs[i].Faults[0] = "mutated"
		recs[i].Actions[0] = "mutated"

		r, _ := Lookup(id)
		if r.Faults[0] == "mutated" || r.Actions[0] == "mutated" {
			t.Fatalf("%s: All() shares fault or action slices with the table", id)
		}
		r.Faults[0] = "mutated"
		if again, _ := Lookup(id); again.Faults[0] == "mutated" {
			t.Fatalf("%s: Lookup shares the fault slice with the table", id)
		}
		return
	}
	t.Fatal("no record with both faults and actions")
}

func TestLookup(t *testing.T) {
	r, ok := Lookup(BearingDrive)
	if !ok {
		t.Fatal("bearing_drive not found")
	}
	if r.Status != StatusCritical {
		t.Errorf("bearing_drive status = %s, want critical", r.Status)
	}
	if len(r.Faults) == 0 {
		t.Error("bearing_drive should carry faults")
	}

	if _, ok := Lookup("rotor_cage"); ok {
		t.Error("unknown id should not be found")
	}
}

func TestParseComponentID(t *testing.T) {
	id, err := ParseComponentID("fan_guard")
	if err != nil || id != FanGuard {
		t.Errorf("ParseComponentID(fan_guard) = %q, %v", id, err)
	}
	if _, err := ParseComponentID("stator"); err == nil {
		t.Error("expected error for unknown component")
	}
}

func TestStatusString(t *testing.T) {
	tests := map[Status]string{
		StatusGood:     "good",
		StatusWarning:  "warning",
		StatusCritical: "critical",
		Status(9):      "status(9)",
	}
	for s, want := range tests {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

func TestSummarize(t *testing.T) {
	recs := []Record{
		{HealthPercent: 100, Status: StatusGood},
		{HealthPercent: 50, Status: StatusCritical, Faults: []string{"a", "b"}},
		{HealthPercent: 60, Status: StatusWarning, Faults: []string{"c"}},
	}
	s := Summarize(recs)
	if s.AverageHealth != 70 {
		t.Errorf("average = %g, want 70", s.AverageHealth)
	}
	if s.Good != 1 || s.Warning != 1 || s.Critical != 1 {
		t.Errorf("counts = %+v", s)
	}
	if s.Faults != 3 {
		t.Errorf("faults = %d, want 3", s.Faults)
	}

	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("empty summary = %+v", got)
	}
}

func TestRGBHex(t *testing.T) {
	if got := (RGB{0xe5, 0x48, 0x4d}).Hex(); got != "#e5484d" {
		t.Errorf("Hex() = %s", got)
	}
}

func TestSelectionToggle(t *testing.T) {
	var sel Selection
	if _, ok := sel.Current(); ok {
		t.Fatal("zero selection should be empty")
	}

	sel.Toggle(Shaft)
	if id, ok := sel.Current(); !ok || id != Shaft {
		t.Fatalf("after Toggle(shaft) got %q, %v", id, ok)
	}

	// Same id again clears
	sel.Toggle(Shaft)
	if _, ok := sel.Current(); ok {
		t.Error("toggling the selected id should clear the selection")
	}

	// X then Y yields Y
	sel.Toggle(Shaft)
	sel.Toggle(FanGuard)
	if id, ok := sel.Current(); !ok || id != FanGuard {
		t.Errorf("after X then Y got %q, %v", id, ok)
	}
	if !sel.Is(FanGuard) || sel.Is(Shaft) {
		t.Error("Is() disagrees with Current()")
	}

	sel.Clear()
	if _, ok := sel.Current(); ok {
		t.Error("Clear() left a selection")
	}
}
