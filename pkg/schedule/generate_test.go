package schedule

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/tmarchal/chamber/pkg/chamber"
	"github.com/tmarchal/chamber/pkg/config"
)

func TestExpand(t *testing.T) {
	sched := &Schedule{
		Start:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		Horizon: time.Hour,
		Stagger: 10 * time.Millisecond,
		Entries: []Entry{
			{Name: "student", Kind: "S", Cron: "*/15 * * * *"},
			{Name: "advisor", Kind: "A", Cron: "0 * * * *"},
		},
	}

	visitors, err := sched.Expand()
	if err != nil {
		t.Fatal(err)
	}

	// student fires at :15, :30, :45 and 01:00; advisor at 01:00 only.
	// The 01:00 tie is broken by name.
	wantNames := []string{"student-1", "student-2", "student-3", "advisor-1", "student-4"}
	if len(visitors) != len(wantNames) {
		t.Fatalf("expanded %d visitors, want %d", len(visitors), len(wantNames))
	}
	for i, v := range visitors {
		if v.Name != wantNames[i] {
			t.Errorf("visitor %d = %s, want %s", i, v.Name, wantNames[i])
		}
		if v.Delay != sched.Stagger {
			t.Errorf("visitor %d delay = %s, want %s", i, v.Delay, sched.Stagger)
		}
	}
	if visitors[3].Kind != chamber.KindAdmin {
		t.Errorf("advisor kind = %s, want A", visitors[3].Kind)
	}
}

func TestExpandBadCron(t *testing.T) {
	sched := &Schedule{
		Horizon: time.Hour,
		Entries: []Entry{{Name: "x", Kind: "S", Cron: "not a cron"}},
	}
	if _, err := sched.Expand(); err == nil {
		t.Fatal("expected error for malformed cron expression")
	}
}

func TestValidateSchedule(t *testing.T) {
	tests := []struct {
		name  string
		sched Schedule
	}{
		{"zero horizon", Schedule{Entries: []Entry{{Name: "x", Kind: "S", Cron: "* * * * *"}}}},
		{"no entries", Schedule{Horizon: time.Hour}},
		{"missing name", Schedule{Horizon: time.Hour, Entries: []Entry{{Kind: "S", Cron: "* * * * *"}}}},
		{"bad kind", Schedule{Horizon: time.Hour, Entries: []Entry{{Name: "x", Kind: "Z", Cron: "* * * * *"}}}},
		{"missing cron", Schedule{Horizon: time.Hour, Entries: []Entry{{Name: "x", Kind: "S"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateSchedule(&tt.sched); err == nil {
				t.Fatal("validateSchedule succeeded, want error")
			}
		})
	}
}

func TestWriteListRoundTrip(t *testing.T) {
	visitors := []config.Visitor{
		{Name: "student-1", Kind: chamber.KindStudent, Delay: 10 * time.Millisecond},
		{Name: "meeting-1", Kind: chamber.KindOnline, Delay: 0},
	}

	var buf bytes.Buffer
	if err := WriteList(&buf, visitors); err != nil {
		t.Fatal(err)
	}

	parsed, err := config.ParseVisitorList(&buf, 5*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	if len(parsed) != len(visitors) {
		t.Fatalf("parsed %d visitors, want %d", len(parsed), len(visitors))
	}
	for i, v := range parsed {
		if v != visitors[i] {
			t.Errorf("visitor %d = %+v, want %+v", i, v, visitors[i])
		}
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.yaml")
	data := `horizon: 3600000000000
stagger: 10000000
entries:
  - name: student
    kind: S
    cron: "*/15 * * * *"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	sched, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if sched.Horizon != time.Hour {
		t.Errorf("horizon = %s, want 1h", sched.Horizon)
	}
	if len(sched.Entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(sched.Entries))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("does-not-exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
