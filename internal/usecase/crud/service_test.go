package crud_test

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/ech0p1ng/articles-rest/internal/domain/entity"
	"github.com/ech0p1ng/articles-rest/internal/repository"
	"github.com/ech0p1ng/articles-rest/internal/usecase/crud"
)

// stubRepo is an in-memory EntityRepository for articles. err forces every
// call to fail, for infra-error paths.
type stubRepo struct {
	data   map[int64]*entity.Article
	nextID int64
	err    error
}

func newStub() *stubRepo {
	return &stubRepo{data: map[int64]*entity.Article{}, nextID: 1}
}

func (s *stubRepo) matches(a *entity.Article, filter repository.Filter) bool {
	for k, v := range filter {
		switch k {
		case "id":
			if a.ID != toInt64(v) {
				return false
			}
		case "title":
			if a.Title != v.(string) {
				return false
			}
		}
	}
	return true
}

func toInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	}
	return -1
}

func (s *stubRepo) FindAll(_ context.Context, filter repository.Filter, _ ...repository.LoadOption) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]*entity.Article, 0, len(s.data))
	for _, a := range s.data {
		if s.matches(a, filter) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *stubRepo) One(ctx context.Context, filter repository.Filter, opts ...repository.LoadOption) (*entity.Article, error) {
	rec, ok, err := s.MaybeOne(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, repository.ErrNotExactlyOne
	}
	return rec, nil
}

func (s *stubRepo) MaybeOne(ctx context.Context, filter repository.Filter, _ ...repository.LoadOption) (*entity.Article, bool, error) {
	if s.err != nil {
		return nil, false, s.err
	}
	matches, _ := s.FindAll(ctx, filter)
	switch len(matches) {
	case 0:
		return nil, false, nil
	case 1:
		return matches[0], true, nil
	default:
		return nil, false, repository.ErrNotExactlyOne
	}
}

func (s *stubRepo) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	matches, err := s.FindAll(ctx, filter)
	return int64(len(matches)), err
}

func (s *stubRepo) Insert(_ context.Context, a *entity.Article) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	if a.ID == 0 {
		a.ID = s.nextID
		s.nextID++
	} else if _, taken := s.data[a.ID]; taken {
		return nil, repository.ErrDuplicate
	}
	s.data[a.ID] = a
	return a, nil
}

func (s *stubRepo) Update(_ context.Context, a *entity.Article) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.data[a.ID]; !ok {
		return nil, repository.ErrNoRows
	}
	s.data[a.ID] = a
	return a, nil
}

func (s *stubRepo) DeleteWhere(ctx context.Context, filter repository.Filter) error {
	if s.err != nil {
		return s.err
	}
	matches, _ := s.FindAll(ctx, filter)
	for _, a := range matches {
		delete(s.data, a.ID)
	}
	return nil
}

func newService(stub *stubRepo) *crud.Service[*entity.Article] {
	return &crud.Service[*entity.Article]{Repo: stub, Label: "article"}
}

func TestGet(t *testing.T) {
	stub := newStub()
	stub.data[1] = entity.NewArticleWithID(1, "First", "text", nil)
	svc := newService(stub)

	got, err := svc.Get(context.Background(), repository.Filter{"id": int64(1)})
	if err != nil {
		t.Fatalf("Get err=%v", err)
	}
	if got.Title != "First" {
		t.Errorf("Title = %q, want First", got.Title)
	}
}

func TestGet_emptyFilter(t *testing.T) {
	svc := newService(newStub())

	_, err := svc.Get(context.Background(), repository.Filter{})
	if !errors.Is(err, entity.ErrInvalidFilter) {
		t.Errorf("Get with empty filter err=%v, want ErrInvalidFilter", err)
	}
}

func TestGet_notFound(t *testing.T) {
	svc := newService(newStub())

	_, err := svc.Get(context.Background(), repository.Filter{"id": int64(99)})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Get err=%v, want ErrNotFound", err)
	}

	var nf *entity.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatal("error should be a NotFoundError")
	}
	if nf.Entity != "article" || nf.Filter != "id=99" {
		t.Errorf("NotFoundError = {%q, %q}, want {article, id=99}", nf.Entity, nf.Filter)
	}
}

func TestGet_infraError(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("connection reset")
	svc := newService(stub)

	_, err := svc.Get(context.Background(), repository.Filter{"id": int64(1)})
	if err == nil || errors.Is(err, entity.ErrNotFound) {
		t.Errorf("Get err=%v, want wrapped infra error", err)
	}
}

func TestGetMultiple(t *testing.T) {
	stub := newStub()
	stub.data[1] = entity.NewArticleWithID(1, "Go", "a", nil)
	stub.data[2] = entity.NewArticleWithID(2, "Go", "b", nil)
	stub.data[3] = entity.NewArticleWithID(3, "Rust", "c", nil)
	svc := newService(stub)

	got, err := svc.GetMultiple(context.Background(), repository.Filter{"title": "Go"})
	if err != nil {
		t.Fatalf("GetMultiple err=%v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}

	if _, err := svc.GetMultiple(context.Background(), repository.Filter{}); !errors.Is(err, entity.ErrInvalidFilter) {
		t.Errorf("empty filter err=%v, want ErrInvalidFilter", err)
	}
}

func TestGetAll(t *testing.T) {
	stub := newStub()
	svc := newService(stub)

	got, err := svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll err=%v", err)
	}
	if len(got) != 0 {
		t.Errorf("len on empty store = %d, want 0", len(got))
	}

	stub.data[1] = entity.NewArticleWithID(1, "A", "x", nil)
	stub.data[2] = entity.NewArticleWithID(2, "B", "y", nil)

	got, err = svc.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll err=%v", err)
	}
	if len(got) != 2 {
		t.Errorf("len = %d, want 2", len(got))
	}
}

func TestExists(t *testing.T) {
	stub := newStub()
	stub.data[5] = entity.NewArticleWithID(5, "A", "x", nil)
	svc := newService(stub)

	ok, err := svc.Exists(context.Background(), repository.Filter{"id": int64(5)})
	if err != nil || !ok {
		t.Errorf("Exists(5) = (%v, %v), want (true, nil)", ok, err)
	}

	ok, err = svc.Exists(context.Background(), repository.Filter{"id": int64(6)})
	if err != nil || ok {
		t.Errorf("Exists(6) = (%v, %v), want (false, nil)", ok, err)
	}

	if _, err := svc.Exists(context.Background(), repository.Filter{}); !errors.Is(err, entity.ErrInvalidFilter) {
		t.Errorf("empty filter err=%v, want ErrInvalidFilter", err)
	}
}

func TestCreate(t *testing.T) {
	svc := newService(newStub())

	created, err := svc.Create(context.Background(), entity.NewArticle("New", "text"))
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if created.ID == 0 {
		t.Error("created article should carry a storage-assigned id")
	}
}

func TestCreate_duplicate(t *testing.T) {
	stub := newStub()
	stub.data[3] = entity.NewArticleWithID(3, "Taken", "x", nil)
	svc := newService(stub)

	_, err := svc.Create(context.Background(), entity.NewArticleWithID(3, "New", "y", nil))
	if !errors.Is(err, entity.ErrAlreadyExists) {
		t.Errorf("Create duplicate err=%v, want ErrAlreadyExists", err)
	}
}

func TestUpdate(t *testing.T) {
	stub := newStub()
	stub.data[1] = entity.NewArticleWithID(1, "Old", "x", nil)
	svc := newService(stub)

	updated, err := svc.Update(context.Background(), entity.NewArticleWithID(1, "New", "y", nil))
	if err != nil {
		t.Fatalf("Update err=%v", err)
	}
	if updated.Title != "New" {
		t.Errorf("Title = %q, want New", updated.Title)
	}
}

func TestUpdate_missing(t *testing.T) {
	svc := newService(newStub())

	_, err := svc.Update(context.Background(), entity.NewArticleWithID(42, "X", "y", nil))
	if !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("Update missing err=%v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	stub := newStub()
	stub.data[1] = entity.NewArticleWithID(1, "A", "x", nil)
	svc := newService(stub)

	if err := svc.Delete(context.Background(), repository.Filter{"id": int64(1)}); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if len(stub.data) != 0 {
		t.Error("article not removed from store")
	}
}

func TestDelete_missing(t *testing.T) {
	svc := newService(newStub())

	err := svc.Delete(context.Background(), repository.Filter{"id": int64(9)})
	if !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("Delete missing err=%v, want ErrNotFound", err)
	}
}

func TestDelete_emptyFilter(t *testing.T) {
	stub := newStub()
	stub.data[1] = entity.NewArticleWithID(1, "A", "x", nil)
	svc := newService(stub)

	err := svc.Delete(context.Background(), repository.Filter{})
	if !errors.Is(err, entity.ErrInvalidFilter) {
		t.Errorf("Delete with empty filter err=%v, want ErrInvalidFilter", err)
	}
	if len(stub.data) != 1 {
		t.Error("empty filter must not delete anything")
	}
}
