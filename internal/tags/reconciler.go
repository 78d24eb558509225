// Package tags reconciles requested tag names against the remote tag
// catalog, creating the ones that do not exist yet.
package tags

import (
	"fmt"
	"strings"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/everfit"
)

// Creator creates one missing tag remotely and returns its id.
type Creator interface {
	CreateTag(name string) (string, error)
}

// CreatorFunc adapts a function to the Creator interface.
type CreatorFunc func(name string) (string, error)

func (f CreatorFunc) CreateTag(name string) (string, error) { return f(name) }

// Reconciler maps tag names to ids against a catalog fetched once per run.
// Creations are remembered for the rest of the run, but there is no
// persistent cache and no server-side existence check before create: the
// tool assumes a single operator, so two concurrent runs could still mint
// duplicate tags with the same name.
type Reconciler struct {
	byName  map[string]string // lowercased name -> id
	creator Creator
}

// NewReconciler builds a reconciler over an existing catalog.
func NewReconciler(catalog []everfit.Tag, creator Creator) *Reconciler {
	byName := make(map[string]string, len(catalog))
	for _, t := range catalog {
		byName[strings.ToLower(strings.TrimSpace(t.Name))] = t.ID
	}
	return &Reconciler{byName: byName, creator: creator}
}

// Reconcile resolves the requested names to ids, preserving first-occurrence
// order. Empty names are dropped, duplicates (case-insensitive) collapse to
// one lookup, and names absent from the catalog are created.
func (r *Reconciler) Reconcile(names []string) ([]string, error) {
	var ids []string
	seen := make(map[string]bool)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if seen[key] {
			continue
		}
		seen[key] = true

		id, ok := r.byName[key]
		if !ok {
			var err error
			id, err = r.creator.CreateTag(name)
			if err != nil {
				return nil, fmt.Errorf("creating tag %q: %w", name, err)
			}
			r.byName[key] = id
		}
		ids = append(ids, id)
	}
	return ids, nil
}
