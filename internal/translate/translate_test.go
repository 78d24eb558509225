package translate

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// TestDeepLTranslate verifies the request shape and that the first
// translation is returned.
func TestDeepLTranslate(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v2/translate" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "DeepL-Auth-Key dl-key" {
			t.Errorf("Authorization = %q", got)
		}

		var body struct {
			Text       []string `json:"text"`
			TargetLang string   `json:"target_lang"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatal(err)
		}
		if len(body.Text) != 1 || body.Text[0] != "Aprieta el core." {
			t.Errorf("text = %v", body.Text)
		}
		if body.TargetLang != "EN-US" {
			t.Errorf("target_lang = %q", body.TargetLang)
		}

		json.NewEncoder(w).Encode(map[string]any{ //nolint:errcheck
			"translations": []map[string]string{{"text": "Brace your core."}},
		})
	}))
	defer ts.Close()

	client := NewDeepLClient(ts.URL, "dl-key", 5*time.Second)
	got, err := client.Translate("Aprieta el core.", "EN-US")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Brace your core." {
		t.Errorf("translation = %q", got)
	}
}

// TestDeepLTranslateError verifies non-200 responses surface status and body.
func TestDeepLTranslateError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer ts.Close()

	client := NewDeepLClient(ts.URL, "dl-key", 5*time.Second)
	if _, err := client.Translate("hola", "EN-US"); err == nil {
		t.Fatal("expected error")
	}
}

// fakeEngine prefixes lines instead of translating, and can fail on demand.
type fakeEngine struct {
	failOn string
	calls  []string
}

func (f *fakeEngine) Translate(text, targetLang string) (string, error) {
	f.calls = append(f.calls, text)
	if text == f.failOn {
		return "", errors.New("engine down")
	}
	return "EN:" + text, nil
}

// TestTranslateLines verifies each line becomes bilingual in order.
func TestTranslateLines(t *testing.T) {
	engine := &fakeEngine{}
	tr := NewTranslator(engine, testLogger())

	lines, changed := tr.translateLines("Back Squat", []string{"Aprieta.", "Baja despacio."})
	if !changed {
		t.Fatal("expected a change")
	}
	if lines[0] != "EN:Aprieta. | Aprieta." || lines[1] != "EN:Baja despacio. | Baja despacio." {
		t.Errorf("lines = %v", lines)
	}
}

// TestTranslateLinesAlreadyBilingual verifies a row with any "|" line is
// left alone entirely.
func TestTranslateLinesAlreadyBilingual(t *testing.T) {
	engine := &fakeEngine{}
	tr := NewTranslator(engine, testLogger())

	_, changed := tr.translateLines("Back Squat", []string{"Done | Hecho", "Baja despacio."})
	if changed {
		t.Error("bilingual row should not change")
	}
	if len(engine.calls) != 0 {
		t.Errorf("engine called for bilingual row: %v", engine.calls)
	}
}

// TestTranslateLinesBlank verifies blank instructions and blank lines skip
// the whole row.
func TestTranslateLinesBlank(t *testing.T) {
	tr := NewTranslator(&fakeEngine{}, testLogger())

	if _, changed := tr.translateLines("Row", nil); changed {
		t.Error("empty row should not change")
	}
	if _, changed := tr.translateLines("Row", []string{"Primera.", ""}); changed {
		t.Error("row with a blank line should not change")
	}
}

// TestTranslateLinesEngineFailure verifies a failed call keeps the
// original line while the rest still translate.
func TestTranslateLinesEngineFailure(t *testing.T) {
	engine := &fakeEngine{failOn: "Baja despacio."}
	tr := NewTranslator(engine, testLogger())

	lines, changed := tr.translateLines("Back Squat", []string{"Aprieta.", "Baja despacio."})
	if !changed {
		t.Fatal("expected a change")
	}
	if lines[0] != "EN:Aprieta. | Aprieta." {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Baja despacio." {
		t.Errorf("line 1 = %q, want original kept", lines[1])
	}
}
