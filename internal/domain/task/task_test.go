package task

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/evalhub/evalhub/internal/platform/backend"
	"github.com/evalhub/evalhub/internal/platform/odata"
)

type stubBackend struct {
	gotCollection string
	gotQuery      backend.Query
}

func (s *stubBackend) QueryCollection(_ context.Context, collection string, q backend.Query) (*backend.Page, error) {
	s.gotCollection = collection
	s.gotQuery = q
	return &backend.Page{}, nil
}

func TestServiceRemapsStatusField(t *testing.T) {
	stub := &stubBackend{}
	svc := NewService(stub, zerolog.Nop())

	req := odata.GridRequest{
		Filter: odata.FilterModel{
			Items: []odata.FilterItem{{Field: "status", Operator: "equals", Value: "open"}},
		},
	}
	if _, err := svc.Query(context.Background(), req, 20, 0); err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if stub.gotCollection != "tasks" {
		t.Errorf("collection = %q, want %q", stub.gotCollection, "tasks")
	}
	want := "tolower(status/name) eq tolower('open')"
	if stub.gotQuery.Filter != want {
		t.Errorf("filter = %q, want %q", stub.gotQuery.Filter, want)
	}
}

func TestServiceQuickFilterSkipsTags(t *testing.T) {
	stub := &stubBackend{}
	svc := NewService(stub, zerolog.Nop())

	req := odata.GridRequest{QuickFilter: []string{"review"}}
	if _, err := svc.Query(context.Background(), req, 20, 0); err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	for _, path := range []string{"title", "description"} {
		if !strings.Contains(stub.gotQuery.Filter, path) {
			t.Errorf("filter %q missing %q", stub.gotQuery.Filter, path)
		}
	}
	if strings.Contains(stub.gotQuery.Filter, "_tags_relationship") {
		t.Errorf("filter %q should not match tags", stub.gotQuery.Filter)
	}
}
