package repository_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
	"github.com/ech0p1ng/articles-rest/internal/repository"
)

func TestFilterValidate(t *testing.T) {
	if err := (repository.Filter{"id": 1}).Validate(); err != nil {
		t.Errorf("Validate() on non-empty filter = %v, want nil", err)
	}

	err := (repository.Filter{}).Validate()
	if !errors.Is(err, entity.ErrInvalidFilter) {
		t.Errorf("Validate() on empty filter = %v, want ErrInvalidFilter", err)
	}

	var nilFilter repository.Filter
	if !errors.Is(nilFilter.Validate(), entity.ErrInvalidFilter) {
		t.Error("Validate() on nil filter should be ErrInvalidFilter")
	}
}

func TestFilterSortedKeys(t *testing.T) {
	f := repository.Filter{"title": "go", "id": 1, "article_id": 2}

	want := []string{"article_id", "id", "title"}
	if diff := cmp.Diff(want, f.SortedKeys()); diff != "" {
		t.Errorf("SortedKeys() mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterString(t *testing.T) {
	tests := []struct {
		name   string
		filter repository.Filter
		want   string
	}{
		{name: "single pair", filter: repository.Filter{"id": 7}, want: "id=7"},
		{
			name:   "multiple pairs sorted",
			filter: repository.Filter{"title": "go", "id": 1},
			want:   "id=1, title=go",
		},
		{name: "empty", filter: repository.Filter{}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApplyLoadOptions(t *testing.T) {
	o := repository.ApplyLoadOptions(nil)
	if len(o.Relations) != 0 {
		t.Errorf("Relations = %v, want empty", o.Relations)
	}

	o = repository.ApplyLoadOptions([]repository.LoadOption{
		repository.WithRelations("comments"),
		repository.WithRelations("tags", "authors"),
	})
	want := []string{"comments", "tags", "authors"}
	if diff := cmp.Diff(want, o.Relations); diff != "" {
		t.Errorf("Relations mismatch (-want +got):\n%s", diff)
	}
}
