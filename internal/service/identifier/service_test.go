package identifier

import (
	"context"
	"sync"
	"testing"

	"github.com/dayflow-hq/dayflow-backend-go/internal/domain/identifier"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCounterRepo struct {
	mu      sync.Mutex
	serials map[int]int
	calls   int
}

func newFakeCounterRepo() *fakeCounterRepo {
	return &fakeCounterRepo{serials: make(map[int]int)}
}

func (f *fakeCounterRepo) NextSerial(_ context.Context, year int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.serials[year]++
	return f.serials[year], nil
}

func (f *fakeCounterRepo) CurrentSerial(_ context.Context, year int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.serials[year], nil
}

func TestGenerator_Issue_SequentialSerials(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(newFakeCounterRepo(), "DF")
	ctx := context.Background()

	first, err := gen.Issue(ctx, "John", "Doe", 2022)
	require.NoError(t, err)
	second, err := gen.Issue(ctx, "Alice", "Smith", 2022)
	require.NoError(t, err)
	otherYear, err := gen.Issue(ctx, "Bob", "Jones", 2023)
	require.NoError(t, err)

	assert.Equal(t, "DFJODO20220001", first)
	assert.Equal(t, "DFALSM20220002", second)
	assert.Equal(t, "DFBOJO20230001", otherYear, "each joining year counts from 1")
}

func TestGenerator_Issue_ConcurrentCallersGetDistinctIDs(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(newFakeCounterRepo(), "DF")
	ctx := context.Background()

	const workers = 32

	var wg sync.WaitGroup
	ids := make(chan string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id, err := gen.Issue(ctx, "John", "Doe", 2025)
			if err != nil {
				t.Errorf("Issue returned error: %v", err)
				return
			}
			ids <- id
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{})
	for id := range ids {
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate login ID issued: %s", id)
		}
		seen[id] = struct{}{}
	}

	assert.Len(t, seen, workers)
}

func TestGenerator_Issue_ShortNameDoesNotConsumeSerial(t *testing.T) {
	t.Parallel()

	repo := newFakeCounterRepo()
	gen := NewGenerator(repo, "DF")
	ctx := context.Background()

	_, err := gen.Issue(ctx, "J", "Doe", 2025)
	assert.ErrorIs(t, err, identifier.ErrNameTooShort)

	_, err = gen.Issue(ctx, "John", " D ", 2025)
	assert.ErrorIs(t, err, identifier.ErrNameTooShort)

	assert.Zero(t, repo.calls, "a rejected name must not advance the counter")

	id, err := gen.Issue(ctx, "John", "Doe", 2025)
	require.NoError(t, err)
	assert.Equal(t, "DFJODO20250001", id)
}

func TestGenerator_Preview_DoesNotConsumeSerial(t *testing.T) {
	t.Parallel()

	repo := newFakeCounterRepo()
	gen := NewGenerator(repo, "DF")
	ctx := context.Background()

	previewed, err := gen.Preview(ctx, "John", "Doe", 2025)
	require.NoError(t, err)
	again, err := gen.Preview(ctx, "John", "Doe", 2025)
	require.NoError(t, err)

	assert.Equal(t, previewed, again, "repeated previews must not advance the counter")
	assert.Zero(t, repo.calls)

	issued, err := gen.Issue(ctx, "John", "Doe", 2025)
	require.NoError(t, err)
	assert.Equal(t, previewed, issued)

	next, err := gen.Preview(ctx, "Alice", "Smith", 2025)
	require.NoError(t, err)
	assert.Equal(t, "DFALSM20250002", next)
}

func TestGenerator_Preview_ShortName(t *testing.T) {
	t.Parallel()

	gen := NewGenerator(newFakeCounterRepo(), "DF")

	_, err := gen.Preview(context.Background(), "A", "B", 2025)

	assert.ErrorIs(t, err, identifier.ErrNameTooShort)
}
