package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookcollection/internal/domain/book"
	apperrors "github.com/xiebiao/bookcollection/pkg/errors"
)

type stubSource struct {
	calls int
	books []*book.Book
	err   error
}

func (s *stubSource) FindByISBNs(_ context.Context, _ []string) ([]*book.Book, error) {
	s.calls++
	return s.books, s.err
}

func TestGuardedSource_PassThrough(t *testing.T) {
	stub := &stubSource{books: []*book.Book{book.NewBook("111", "Go", "Pike", 100, 1)}}
	g := NewGuardedSource(stub, Options{RatePerSecond: 100, Burst: 10, MaxFailures: 3, Timeout: time.Minute})

	books, err := g.FindByISBNs(context.Background(), []string{"111"})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "111", books[0].ISBN)
	assert.Equal(t, 1, stub.calls)
}

func TestGuardedSource_BreakerOpens(t *testing.T) {
	stub := &stubSource{err: errors.New("connection refused")}
	g := NewGuardedSource(stub, Options{RatePerSecond: 100, Burst: 10, MaxFailures: 3, Timeout: time.Minute})

	for i := 0; i < 3; i++ {
		_, err := g.FindByISBNs(context.Background(), []string{"111"})
		require.Error(t, err)
		assert.False(t, errors.Is(err, book.ErrCatalogUnavailable))
	}
	assert.Equal(t, gobreaker.StateOpen, g.State())

	// 熔断打开后快速失败，不再调用下游
	_, err := g.FindByISBNs(context.Background(), []string{"111"})
	assert.ErrorIs(t, err, book.ErrCatalogUnavailable)
	assert.Equal(t, 3, stub.calls)
}

func TestGuardedSource_CanceledDoesNotTrip(t *testing.T) {
	stub := &stubSource{err: context.Canceled}
	g := NewGuardedSource(stub, Options{RatePerSecond: 100, Burst: 10, MaxFailures: 1, Timeout: time.Minute})

	_, err := g.FindByISBNs(context.Background(), []string{"111"})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, gobreaker.StateClosed, g.State())
}

func TestGuardedSource_RateLimited(t *testing.T) {
	stub := &stubSource{}
	g := NewGuardedSource(stub, Options{RatePerSecond: 0.001, Burst: 1, Timeout: time.Minute})

	_, err := g.FindByISBNs(context.Background(), []string{"111"})
	require.NoError(t, err)

	_, err = g.FindByISBNs(context.Background(), []string{"111"})
	assert.ErrorIs(t, err, apperrors.ErrTooManyRequests)
	assert.Equal(t, 1, stub.calls)
}

func TestDisabledSource(t *testing.T) {
	_, err := DisabledSource{}.FindByISBNs(context.Background(), []string{"111"})
	assert.ErrorIs(t, err, book.ErrCatalogUnavailable)
}
