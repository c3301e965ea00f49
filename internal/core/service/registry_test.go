package service

import (
	"errors"
	"slices"
	"testing"

	"github.com/tradesim/platform/internal/core/domain"
)

func ids(seq []domain.Simulation) []string {
	out := make([]string, len(seq))
	for i, s := range seq {
		out[i] = s.ID
	}
	return out
}

func TestRegistry_Filter_ByIDPrefix(t *testing.T) {
	r := NewSimulationRegistry([]domain.Simulation{
		{ID: "SIM001", Status: domain.StatusActive},
		{ID: "SIM002", Status: domain.StatusCompleted},
	})

	got := ids(slices.Collect(r.Filter("SIM00")))
	if !slices.Equal(got, []string{"SIM001", "SIM002"}) {
		t.Fatalf("expected both simulations, got %v", got)
	}
}

func TestRegistry_Filter_StatusCaseInsensitive(t *testing.T) {
	r := NewSimulationRegistry([]domain.Simulation{
		{ID: "SIM001", Status: domain.StatusActive},
		{ID: "SIM002", Status: domain.StatusCompleted},
	})

	got := ids(slices.Collect(r.Filter("active")))
	if !slices.Equal(got, []string{"SIM001"}) {
		t.Fatalf("expected only SIM001, got %v", got)
	}
}

func TestRegistry_Filter_EmptyTermMatchesAll(t *testing.T) {
	r := NewSimulationRegistry(seedSimulations())

	if got := len(slices.Collect(r.Filter(""))); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestRegistry_Filter_IsLazyAndRestartable(t *testing.T) {
	r := NewSimulationRegistry(seedSimulations())
	seq := r.Filter("sim")

	if got := len(slices.Collect(seq)); got != 3 {
		t.Fatalf("first pass: expected 3, got %d", got)
	}

	// Additions after the sequence was built are seen on the next pass.
	if err := r.Add(domain.Simulation{ID: "SIM004", Status: domain.StatusPending}); err != nil {
		t.Fatalf("add: %v", err)
	}
	if got := len(slices.Collect(seq)); got != 4 {
		t.Fatalf("second pass: expected 4, got %d", got)
	}
}

func TestRegistry_Filter_EarlyBreak(t *testing.T) {
	r := NewSimulationRegistry(seedSimulations())

	n := 0
	for range r.Filter("") {
		n++
		break
	}
	if n != 1 {
		t.Fatalf("expected to stop after 1, got %d", n)
	}
}

func TestRegistry_Filter_ConsumerMayMutate(t *testing.T) {
	r := NewSimulationRegistry(seedSimulations())

	for sim := range r.Filter("pending") {
		if err := r.SetStatus(sim.ID, domain.StatusActive); err != nil {
			t.Fatalf("set status inside iteration: %v", err)
		}
	}
	if s, _ := r.Get("SIM003"); s.Status != domain.StatusActive {
		t.Fatalf("expected SIM003 active, got %s", s.Status)
	}
}

func TestRegistry_Add_PreservesOrder(t *testing.T) {
	r := NewSimulationRegistry(seedSimulations())
	_ = r.Add(domain.Simulation{ID: "SIM010", Status: domain.StatusPending})

	got := ids(r.List())
	want := []string{"SIM001", "SIM002", "SIM003", "SIM010"}
	if !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestRegistry_Add_RejectsDuplicateID(t *testing.T) {
	r := NewSimulationRegistry(seedSimulations())

	err := r.Add(domain.Simulation{ID: "SIM001", Status: domain.StatusPending})
	if !errors.Is(err, domain.ErrDuplicateSimulation) {
		t.Fatalf("expected ErrDuplicateSimulation, got %v", err)
	}
	if r.Len() != 3 {
		t.Fatalf("expected registry unchanged, got %d entries", r.Len())
	}
}

func TestRegistry_SetStatus(t *testing.T) {
	r := NewSimulationRegistry(seedSimulations())

	if err := r.SetStatus("SIM003", domain.StatusActive); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, _ := r.Get("SIM003")
	if s.Status != domain.StatusActive {
		t.Fatalf("expected Active, got %s", s.Status)
	}
}

func TestRegistry_SetStatus_NotFound(t *testing.T) {
	r := NewSimulationRegistry(seedSimulations())

	err := r.SetStatus("SIM999", domain.StatusActive)
	if !errors.Is(err, domain.ErrSimulationNotFound) {
		t.Fatalf("expected ErrSimulationNotFound, got %v", err)
	}
}

func TestRegistry_SetStatus_DoesNotEnforceOrdering(t *testing.T) {
	r := NewSimulationRegistry(seedSimulations())

	if err := r.SetStatus("SIM002", domain.StatusPending); err != nil {
		t.Fatalf("registry must not enforce ordering, got %v", err)
	}
}

func TestRegistry_ReturnsCopies(t *testing.T) {
	r := NewSimulationRegistry(seedSimulations())

	list := r.List()
	list[0].Status = domain.StatusCompleted

	s, _ := r.Get("SIM001")
	if s.Status != domain.StatusActive {
		t.Fatal("mutating a listed copy changed the registry")
	}
}

func TestRegistry_FirstPending(t *testing.T) {
	r := NewSimulationRegistry(seedSimulations())

	s, ok := r.FirstPending()
	if !ok || s.ID != "SIM003" {
		t.Fatalf("expected SIM003, got %v %v", s.ID, ok)
	}

	_ = r.SetStatus("SIM003", domain.StatusActive)
	if _, ok := r.FirstPending(); ok {
		t.Fatal("expected no pending simulation")
	}
}

func TestRegistry_NextIDIsPerRegistry(t *testing.T) {
	a := NewSimulationRegistry(seedSimulations())
	b := NewSimulationRegistry(seedSimulations())

	if id := a.NextID(); id != "SIM004" {
		t.Fatalf("expected SIM004, got %s", id)
	}
	if id := a.NextID(); id != "SIM005" {
		t.Fatalf("expected SIM005, got %s", id)
	}
	if id := b.NextID(); id != "SIM004" {
		t.Fatalf("second registry must count on its own, got %s", id)
	}
}
