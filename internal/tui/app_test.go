package tui

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestInitEntersList(t *testing.T) {
	m := newTestModel(t, "")
	cmd := m.Init()
	if cmd == nil {
		t.Fatal("expected init command")
	}
	if _, ok := cmd().(initMsg); !ok {
		t.Fatal("expected initMsg")
	}

	nm, reload := m.Update(initMsg{})
	if reload == nil {
		t.Fatal("expected startup reload")
	}
	got := nm.(appModel)
	if got.view != viewList || !got.loading {
		t.Fatalf("expected loading list view, got view=%d loading=%v", got.view, got.loading)
	}
}

func TestEnterStatsFetchesOnce(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		if r.URL.Path != "/api/stats" {
			t.Errorf("unexpected path: %q", r.URL.Path)
		}
		w.Write([]byte(`{"totalRecords": 5, "currentPageSize": 10, "averageRating": 7.1}`))
	}))
	defer srv.Close()

	m := newTestModel(t, srv.URL)
	m.stats = nil
	cmd := (&m).enterView(viewStats)
	if m.view != viewStats {
		t.Fatalf("expected stats view, got=%d", m.view)
	}

	msgs := execCmds(cmd)
	if n := atomic.LoadInt32(&requests); n != 1 {
		t.Fatalf("expected exactly one fetch, got=%d", n)
	}
	var loaded *statsLoadedMsg
	for _, msg := range msgs {
		if s, ok := msg.(statsLoadedMsg); ok {
			loaded = &s
		}
	}
	if loaded == nil || loaded.err != nil {
		t.Fatalf("expected stats loaded, got=%+v", loaded)
	}
	if loaded.result.TotalRecords != 5 {
		t.Fatalf("unexpected stats: %+v", loaded.result)
	}
}

func TestEnterListIssuesOneReload(t *testing.T) {
	var requests int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Write([]byte(`{"movies": [], "page": 1, "pageSize": 10, "totalPages": 1, "totalFiltered": 0}`))
	}))
	defer srv.Close()

	m := newTestModel(t, srv.URL)
	msgs := execCmds((&m).enterView(viewList))
	if n := atomic.LoadInt32(&requests); n != 1 {
		t.Fatalf("expected exactly one reload, got=%d", n)
	}
	found := false
	for _, msg := range msgs {
		if loaded, ok := msg.(moviesLoadedMsg); ok {
			found = true
			if loaded.seq != m.listSeq {
				t.Fatalf("expected current seq %d, got=%d", m.listSeq, loaded.seq)
			}
		}
	}
	if !found {
		t.Fatal("no moviesLoadedMsg produced")
	}
}

func TestWindowSizeTracked(t *testing.T) {
	m := newTestModel(t, "")
	nm, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	got := nm.(appModel)
	if got.width != 120 || got.height != 40 {
		t.Fatalf("expected 120x40, got %dx%d", got.width, got.height)
	}
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(t, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected tea.QuitMsg")
	}
}
