package pagination

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func newContext(query string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tests?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec)
}

func TestFromContext_Defaults(t *testing.T) {
	p := FromContext(newContext(""))
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit %d, got %d", DefaultLimit, p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0, got %d", p.Offset)
	}
}

func TestFromContext_ExplicitParams(t *testing.T) {
	p := FromContext(newContext("limit=50&offset=100"))
	if p.Limit != 50 {
		t.Errorf("expected limit 50, got %d", p.Limit)
	}
	if p.Offset != 100 {
		t.Errorf("expected offset 100, got %d", p.Offset)
	}
}

func TestFromContext_ClampsToMax(t *testing.T) {
	p := FromContext(newContext("limit=500"))
	if p.Limit != MaxLimit {
		t.Errorf("expected limit clamped to %d, got %d", MaxLimit, p.Limit)
	}
}

func TestFromContext_NegativeValues(t *testing.T) {
	p := FromContext(newContext("limit=-5&offset=-10"))
	if p.Limit != DefaultLimit {
		t.Errorf("expected default limit for negative input, got %d", p.Limit)
	}
	if p.Offset != 0 {
		t.Errorf("expected offset 0 for negative input, got %d", p.Offset)
	}
}

func TestParams_SQL(t *testing.T) {
	p := Params{Limit: 25, Offset: 50}
	if got := p.SQL(); got != "LIMIT 25 OFFSET 50" {
		t.Errorf("unexpected SQL clause: %q", got)
	}
}

func TestParams_Navigation(t *testing.T) {
	p := Params{Limit: 20, Offset: 40}

	if !p.HasNext(100) {
		t.Error("expected HasNext for total 100")
	}
	if p.HasNext(60) {
		t.Error("did not expect HasNext for total 60")
	}
	if !p.HasPrevious() {
		t.Error("expected HasPrevious for offset 40")
	}
	if p.NextOffset() != 60 {
		t.Errorf("expected next offset 60, got %d", p.NextOffset())
	}
	if p.PreviousOffset() != 20 {
		t.Errorf("expected previous offset 20, got %d", p.PreviousOffset())
	}

	first := Params{Limit: 20, Offset: 10}
	if first.PreviousOffset() != 0 {
		t.Errorf("expected previous offset clamped to 0, got %d", first.PreviousOffset())
	}
}

func TestNewResponse(t *testing.T) {
	resp := NewResponse([]string{"a", "b"}, 50, 20, 0)
	if resp.Total != 50 {
		t.Errorf("expected total 50, got %d", resp.Total)
	}
	if !resp.HasMore {
		t.Error("expected HasMore")
	}

	last := NewResponse([]string{"a"}, 21, 20, 20)
	if last.HasMore {
		t.Error("did not expect HasMore on last page")
	}
}

func TestParams_Links(t *testing.T) {
	p := Params{Limit: 20, Offset: 20}
	links := p.Links("/api/v1/tests", 100)

	if len(links) != 3 {
		t.Fatalf("expected 3 links, got %d", len(links))
	}
	if links[0].Relation != "self" || links[0].URL != "/api/v1/tests?offset=20&limit=20" {
		t.Errorf("unexpected self link: %+v", links[0])
	}
	if links[1].Relation != "next" || links[1].URL != "/api/v1/tests?offset=40&limit=20" {
		t.Errorf("unexpected next link: %+v", links[1])
	}
	if links[2].Relation != "previous" || links[2].URL != "/api/v1/tests?offset=0&limit=20" {
		t.Errorf("unexpected previous link: %+v", links[2])
	}
}

func TestParams_Links_FirstPage(t *testing.T) {
	p := Params{Limit: 20, Offset: 0}
	links := p.Links("/api/v1/tests", 10)

	if len(links) != 1 {
		t.Fatalf("expected only self link, got %d", len(links))
	}
	if links[0].Relation != "self" {
		t.Errorf("expected self relation, got %s", links[0].Relation)
	}
}

func TestSetMaxLimit(t *testing.T) {
	defer SetMaxLimit(MaxLimit)
	SetMaxLimit(200)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?limit=150", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if p := FromContext(c); p.Limit != 150 {
		t.Errorf("limit = %d, want 150 after raising the cap", p.Limit)
	}

	SetMaxLimit(0) // ignored
	req = httptest.NewRequest(http.MethodGet, "/?limit=500", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	if p := FromContext(c); p.Limit != 200 {
		t.Errorf("limit = %d, want 200 after no-op SetMaxLimit(0)", p.Limit)
	}
}
