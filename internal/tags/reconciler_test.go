package tags

import (
	"errors"
	"fmt"
	"testing"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/everfit"
)

// countingCreator mints sequential ids and remembers what it was asked for.
type countingCreator struct {
	created []string
}

func (c *countingCreator) CreateTag(name string) (string, error) {
	c.created = append(c.created, name)
	return fmt.Sprintf("new-%d", len(c.created)), nil
}

// TestReconcileExisting verifies catalog hits resolve without any creation
// and keep request order.
func TestReconcileExisting(t *testing.T) {
	creator := &countingCreator{}
	r := NewReconciler([]everfit.Tag{
		{ID: "t1", Name: "Core"},
		{ID: "t2", Name: "Barbell"},
	}, creator)

	ids, err := r.Reconcile([]string{"Barbell", "Core"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 2 || ids[0] != "t2" || ids[1] != "t1" {
		t.Errorf("ids = %v, want [t2 t1]", ids)
	}
	if len(creator.created) != 0 {
		t.Errorf("created %v, want none", creator.created)
	}
}

// TestReconcileCaseInsensitive verifies casing variants of one name
// collapse to a single id and a single creation.
func TestReconcileCaseInsensitive(t *testing.T) {
	creator := &countingCreator{}
	r := NewReconciler(nil, creator)

	ids, err := r.Reconcile([]string{"Core", "core", "CORE"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 {
		t.Fatalf("ids = %v, want one", ids)
	}
	if len(creator.created) != 1 || creator.created[0] != "Core" {
		t.Errorf("created = %v, want exactly [Core]", creator.created)
	}

	// The creation is remembered across calls within the run.
	ids2, err := r.Reconcile([]string{"core"})
	if err != nil {
		t.Fatal(err)
	}
	if len(creator.created) != 1 {
		t.Errorf("second call created again: %v", creator.created)
	}
	if ids2[0] != ids[0] {
		t.Errorf("id changed between calls: %s vs %s", ids[0], ids2[0])
	}
}

// TestReconcileMatchesCatalogFold verifies a requested name matches an
// existing catalog entry under a different casing instead of duplicating it.
func TestReconcileMatchesCatalogFold(t *testing.T) {
	creator := &countingCreator{}
	r := NewReconciler([]everfit.Tag{{ID: "t1", Name: "dumbbell"}}, creator)

	ids, err := r.Reconcile([]string{"Dumbbell"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 || ids[0] != "t1" {
		t.Errorf("ids = %v, want [t1]", ids)
	}
	if len(creator.created) != 0 {
		t.Errorf("created %v, want none", creator.created)
	}
}

// TestReconcileDropsEmpties verifies blank and whitespace-only names are
// skipped entirely.
func TestReconcileDropsEmpties(t *testing.T) {
	creator := &countingCreator{}
	r := NewReconciler(nil, creator)

	ids, err := r.Reconcile([]string{"", "  ", "Bands"})
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 1 {
		t.Errorf("ids = %v, want one", ids)
	}
	if len(creator.created) != 1 || creator.created[0] != "Bands" {
		t.Errorf("created = %v", creator.created)
	}
}

// TestReconcileCreateError verifies a failed creation aborts the whole
// resolution.
func TestReconcileCreateError(t *testing.T) {
	boom := errors.New("api down")
	r := NewReconciler(nil, CreatorFunc(func(name string) (string, error) {
		return "", boom
	}))

	_, err := r.Reconcile([]string{"Kettlebell"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped creator error, got %v", err)
	}
}
