package sync

import (
	"encoding/json"
	"strings"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/everfit"
)

// remoteDirectory resolves exercise titles against a catalog fetched once
// per run and pulls detail records on demand.
type remoteDirectory struct {
	client  *everfit.Client
	token   string
	catalog []everfit.CatalogExercise
}

func newRemoteDirectory(client *everfit.Client, token string) (*remoteDirectory, error) {
	catalog, err := client.FetchExerciseCatalog(token)
	if err != nil {
		return nil, err
	}
	return &remoteDirectory{client: client, token: token, catalog: catalog}, nil
}

// FindExercise matches a title against the catalog, case-insensitively and
// ignoring surrounding whitespace. First match wins.
func (d *remoteDirectory) FindExercise(title string) (string, bool, error) {
	want := strings.TrimSpace(title)
	for _, e := range d.catalog {
		if strings.EqualFold(strings.TrimSpace(e.Title), want) {
			return e.ID, true, nil
		}
	}
	return "", false, nil
}

func (d *remoteDirectory) ExerciseDetail(id string) (json.RawMessage, error) {
	return d.client.FetchExerciseDetail(d.token, id)
}

// findByTitle is the shared case-insensitive title match used by the
// update pass against a freshly fetched catalog.
func findByTitle(catalog []everfit.CatalogExercise, title string) (string, bool) {
	want := strings.TrimSpace(title)
	for _, e := range catalog {
		if strings.EqualFold(strings.TrimSpace(e.Title), want) {
			return e.ID, true
		}
	}
	return "", false
}
