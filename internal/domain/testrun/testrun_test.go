package testrun

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

func TestServiceQueriesTestRunsCollection(t *testing.T) {
	stub := &stubBackend{}
	svc := NewService(stub, zerolog.Nop())

	req := odata.GridRequest{
		Filter: odata.FilterModel{
			Items: []odata.FilterItem{{Field: "name", Operator: "startsWith", Value: "nightly"}},
		},
	}
	if _, err := svc.Query(context.Background(), req, 20, 0); err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	if stub.gotCollection != "test-runs" {
		t.Errorf("collection = %q, want %q", stub.gotCollection, "test-runs")
	}
	want := "startswith(tolower(name), tolower('nightly'))"
	if stub.gotQuery.Filter != want {
		t.Errorf("filter = %q, want %q", stub.gotQuery.Filter, want)
	}
}

func TestServiceQuickFilterUsesRunSearchFields(t *testing.T) {
	stub := &stubBackend{}
	svc := NewService(stub, zerolog.Nop())

	req := odata.GridRequest{QuickFilter: []string{"baseline"}}
	if _, err := svc.Query(context.Background(), req, 20, 0); err != nil {
		t.Fatalf("Query() error = %v", err)
	}

	for _, path := range []string{"test_configuration/test_set/name", "user/name", "status/name", "_tags_relationship"} {
		if !strings.Contains(stub.gotQuery.Filter, path) {
			t.Errorf("filter %q missing %q", stub.gotQuery.Filter, path)
		}
	}
}
