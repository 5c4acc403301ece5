package tui

import "testing"

func TestShowFlashOverwritesSlot(t *testing.T) {
	m := newTestModel(t, "")
	_ = (&m).showFlash(flashInfo, "first")
	_ = (&m).showFlash(flashError, "second")

	if m.flashText != "second" || m.flashKind != flashError {
		t.Fatalf("expected newest flash, got kind=%q text=%q", m.flashKind, m.flashText)
	}
	if !m.flashVisible {
		t.Fatal("expected flash visible")
	}
}

func TestNewerFlashSurvivesOlderTimer(t *testing.T) {
	m := newTestModel(t, "")
	_ = (&m).showFlash(flashInfo, "first")
	firstSeq := m.flashSeq
	_ = (&m).showFlash(flashSuccess, "second")

	nm, _ := m.Update(flashDoneMsg{seq: firstSeq})
	got := nm.(appModel)
	if !got.flashVisible {
		t.Fatal("stale timer dismissed the newer flash")
	}
	if got.flashText != "second" {
		t.Fatalf("expected second, got=%q", got.flashText)
	}

	nm, _ = got.Update(flashDoneMsg{seq: got.flashSeq})
	got = nm.(appModel)
	if got.flashVisible {
		t.Fatal("expected flash hidden by its own timer")
	}
	if got.flashText != "second" {
		t.Fatalf("dismiss should keep the text, got=%q", got.flashText)
	}
}

func TestHiddenFlashNotRendered(t *testing.T) {
	m := newTestModel(t, "")
	_ = (&m).showFlash(flashInfo, "hello")
	m.flashVisible = false
	if got := m.renderFlash(); got != "" {
		t.Fatalf("expected empty render, got=%q", got)
	}
}
