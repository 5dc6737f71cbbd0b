// internal/content/repository_test.go
//
// Unit-tests for the content repository using sqlmock.
//
// Run: go test ./internal/content -v

package content

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestPostBySlug(t *testing.T) {
	repo, mock := newMockRepo(t)
	published := time.Date(2021, 7, 4, 9, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, post_type, slug, author, comment_count, published_at, deleted_at\s+FROM\s+post`).
		WithArgs("post", "hello-world").
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "post_type", "slug", "author", "comment_count", "published_at", "deleted_at"}).
			AddRow(7, "post", "hello-world", "alexis", 3, published, nil))

	p, err := repo.PostBySlug(context.Background(), "post", "hello-world")
	if err != nil {
		t.Fatalf("PostBySlug error: %v", err)
	}
	if p.ID != 7 || p.Author != "alexis" || p.CommentCount != 3 || !p.PublishedAt.Equal(published) {
		t.Fatalf("unexpected post: %#v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestPostBySlug_CancelledCallerDoesNotAbortSharedQuery(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM\s+post`).
		WithArgs("post", "hello-world").
		WillDelayFor(300 * time.Millisecond).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "post_type", "slug", "author", "comment_count", "published_at", "deleted_at"}).
			AddRow(7, "post", "hello-world", "alexis", 3, time.Now(), nil))

	gone, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := repo.PostBySlug(gone, "post", "hello-world"); !errors.Is(err, context.Canceled) {
		t.Fatalf("cancelled caller err = %v, want context.Canceled", err)
	}

	// Joins the query the cancelled caller started.
	p, err := repo.PostBySlug(context.Background(), "post", "hello-world")
	if err != nil {
		t.Fatalf("shared caller error: %v", err)
	}
	if p.ID != 7 {
		t.Fatalf("unexpected post: %#v", p)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}

func TestPostBySlug_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM\s+post`).
		WithArgs("page", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.PostBySlug(context.Background(), "page", "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestPostBySlug_DriverErrorIsWrapped(t *testing.T) {
	repo, mock := newMockRepo(t)
	boom := errors.New("connection reset")

	mock.ExpectQuery(`FROM\s+post`).
		WithArgs("post", "x").
		WillReturnError(boom)

	_, err := repo.PostBySlug(context.Background(), "post", "x")
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("driver error must not map to ErrNotFound")
	}
}

func TestTaxonomies(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT\s+name\s+FROM\s+taxonomy`).
		WithArgs("post").
		WillReturnRows(sqlmock.NewRows([]string{"name"}).
			AddRow("category").AddRow("post_tag").AddRow("post_format"))

	got, err := repo.Taxonomies(context.Background(), "post")
	if err != nil {
		t.Fatalf("Taxonomies error: %v", err)
	}
	if len(got) != 3 || got[0] != "category" || got[1] != "post_tag" || got[2] != "post_format" {
		t.Fatalf("unexpected result: %#v", got)
	}
}

func TestPostTerms(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM\s+post_term pt\s+JOIN\s+term t`).
		WithArgs(uint64(7), "category").
		WillReturnRows(sqlmock.NewRows([]string{"id", "taxonomy", "slug", "name"}).
			AddRow(1, "category", "news", "News").
			AddRow(2, "category", "travel", "Travel"))

	got, err := repo.PostTerms(context.Background(), 7, "category")
	if err != nil {
		t.Fatalf("PostTerms error: %v", err)
	}
	if len(got) != 2 || got[0].Slug != "news" || got[1].Slug != "travel" {
		t.Fatalf("unexpected result: %#v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet SQL expectations: %v", err)
	}
}
