package nav

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in         string
		controller string
		action     string
		query      string
	}{
		{"dvhc/children?parent=3", "dvhc", "children", "3"},
		{"/Home/Index", "home", "index", ""},
		{"dvhc", "dvhc", "index", ""},
		{"", "home", "index", ""},
		{"  app/quit  ", "app", "quit", ""},
	}
	for _, tt := range tests {
		req, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tt.in, err)
		}
		if req.Controller != tt.controller || req.Action != tt.action {
			t.Errorf("Parse(%q) = %s/%s, want %s/%s", tt.in, req.Controller, req.Action, tt.controller, tt.action)
		}
		if got := req.Query.Get("parent"); got != tt.query {
			t.Errorf("Parse(%q) parent = %q, want %q", tt.in, got, tt.query)
		}
	}
}

func TestDispatch(t *testing.T) {
	e := NewEngine()
	var got Request
	e.Register("DVHC/Children", func(req Request) error {
		got = req
		return nil
	})

	if err := e.Dispatch("dvhc/children?parent=7"); err != nil {
		t.Fatalf("Dispatch error: %v", err)
	}
	if got.Query.Get("parent") != "7" {
		t.Errorf("handler saw parent=%q, want 7", got.Query.Get("parent"))
	}
	if e.Current() != "dvhc/children?parent=7" {
		t.Errorf("Current() = %q", e.Current())
	}
}

func TestDispatchNoRoute(t *testing.T) {
	e := NewEngine()
	err := e.Dispatch("missing/page")
	if !errors.Is(err, ErrNoRoute) {
		t.Errorf("Dispatch(missing) error = %v, want ErrNoRoute", err)
	}
	if e.Current() != "" {
		t.Errorf("Current() = %q after failed dispatch, want empty", e.Current())
	}
}

func TestExecuteReportsErrors(t *testing.T) {
	e := NewEngine()
	handlerErr := errors.New("boom")
	e.Register("home/index", func(Request) error { return handlerErr })

	var gotURL string
	var gotErr error
	e.OnError = func(u string, err error) {
		gotURL, gotErr = u, err
	}

	e.Execute("home/index")
	if gotURL != "home/index" || !errors.Is(gotErr, handlerErr) {
		t.Errorf("OnError got (%q, %v)", gotURL, gotErr)
	}

	gotErr = nil
	e.Execute("nowhere/at-all")
	if !errors.Is(gotErr, ErrNoRoute) {
		t.Errorf("OnError for unknown route got %v", gotErr)
	}
}

func TestEngineIsNavigator(t *testing.T) {
	var _ Navigator = NewEngine()
}
