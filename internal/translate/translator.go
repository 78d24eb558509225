package translate

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/extract"
	"github.com/JeremyBischoff/Everfit-Exercise-Automation/internal/sheet"
)

// Engine is the translation backend; satisfied by DeepLClient.
type Engine interface {
	Translate(text, targetLang string) (string, error)
}

// Translator rewrites the Instructions column of a library sheet.
type Translator struct {
	engine Engine
	log    *slog.Logger
}

// NewTranslator creates a Translator over an engine.
func NewTranslator(engine Engine, log *slog.Logger) *Translator {
	return &Translator{engine: engine, log: log}
}

// File translates every library row's instructions in the workbook at
// inPath and saves the result to outPath. Rows already holding bilingual
// lines and rows with blank instructions are left untouched.
func (t *Translator) File(inPath, outPath string) error {
	book, err := sheet.Open(inPath)
	if err != nil {
		return err
	}
	defer book.Close()

	g, err := book.Grid()
	if err != nil {
		return err
	}

	rows, err := extract.LibraryRows(g)
	if err != nil {
		return err
	}

	col, ok := g.Col("Instructions")
	if !ok {
		return fmt.Errorf("column Instructions not found")
	}

	for _, row := range rows {
		lines, changed := t.translateLines(row.Name, splitLines(row.Instructions))
		if !changed {
			continue
		}
		if err := book.Set(row.Row, col, strings.Join(lines, "\n")); err != nil {
			return fmt.Errorf("writing instructions for %q: %w", row.Name, err)
		}
	}

	return book.SaveAs(outPath)
}

// translateLines produces bilingual lines for one row. It reports false
// when the row should be left alone: already translated, or any blank line.
func (t *Translator) translateLines(name string, lines []string) ([]string, bool) {
	if len(lines) == 0 {
		t.log.Info("skipping row with blank instructions", "exercise", name)
		return nil, false
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		if strings.Contains(line, "|") {
			t.log.Info("instructions already translated", "exercise", name)
			return nil, false
		}
		if line == "" {
			t.log.Info("skipping row with blank instruction line", "exercise", name)
			return nil, false
		}

		english, err := t.engine.Translate(line, "EN-US")
		if err != nil {
			// Keep the original line; one failed call should not lose text.
			t.log.Warn("translation failed, keeping original line", "exercise", name, "error", err)
			out[i] = line
			continue
		}
		out[i] = english + " | " + line
	}
	return out, true
}

func splitLines(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
