package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webtor-io/video-collection/models"
)

// --- Mock implementations ---

type mockStore struct {
	createErr error
	listErr   error
	countErr  error
	created   []*models.Video
	lastTerm  string
}

func (m *mockStore) Create(_ context.Context, v *models.Video) error {
	if m.createErr != nil {
		return m.createErr
	}
	m.created = append(m.created, v)
	return nil
}

func (m *mockStore) List(_ context.Context, term string) ([]*models.Video, error) {
	m.lastTerm = term
	return m.created, m.listErr
}

func (m *mockStore) Count(_ context.Context) (int, error) {
	return len(m.created), m.countErr
}

// --- Test helpers ---

func names(videos []*models.Video) []string {
	res := make([]string, 0, len(videos))
	for _, v := range videos {
		res = append(res, v.Name)
	}
	return res
}

func mustAdd(t *testing.T, c *Catalog, name, link string) *models.Video {
	t.Helper()
	v, err := c.Add(context.Background(), AddArgs{Name: name, URL: link, Notes: "example"})
	require.NoError(t, err)
	return v
}

// --- Add ---

func TestCatalog_Add(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c.now = func() time.Time { return now }

	v, err := c.Add(ctx, AddArgs{
		Name:  "test",
		URL:   "https://www.youtube.com/watch?v=aGCdLKXNF3w",
		Notes: "music video",
	})
	require.NoError(t, err)
	assert.Equal(t, "test", v.Name)
	assert.Equal(t, "https://www.youtube.com/watch?v=aGCdLKXNF3w", v.URL)
	assert.Equal(t, "music video", v.Notes)
	assert.Equal(t, "aGCdLKXNF3w", v.YoutubeID)
	assert.Equal(t, now, v.CreatedAt)
	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", v.ID.String())

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCatalog_Add_NotesOptional(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())

	v, err := c.Add(ctx, AddArgs{Name: "example", URL: "https://www.youtube.com/watch?v=67890"})
	require.NoError(t, err)
	assert.Equal(t, "", v.Notes)
	assert.Equal(t, "67890", v.YoutubeID)
}

func TestCatalog_Add_MissingFields(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())

	tests := []struct {
		name  string
		args  AddArgs
		field string
	}{
		{name: "empty name", args: AddArgs{URL: "https://www.youtube.com/watch?v=aGCdLKXNF3w"}, field: "name"},
		{name: "blank name", args: AddArgs{Name: "   ", URL: "https://www.youtube.com/watch?v=aGCdLKXNF3w"}, field: "name"},
		{name: "empty url", args: AddArgs{Name: "test"}, field: "url"},
		{name: "both empty", args: AddArgs{Notes: "some vid"}, field: "name"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Add(ctx, tt.args)
			var fe *FieldError
			require.True(t, errors.As(err, &fe), "expected FieldError, got %v", err)
			assert.Equal(t, tt.field, fe.Field)
		})
	}

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCatalog_Add_TooLong(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())

	long := make([]rune, models.VideoNameMaxLength+1)
	for i := range long {
		long[i] = 'n'
	}
	_, err := c.Add(ctx, AddArgs{Name: string(long), URL: "https://www.youtube.com/watch?v=1"})
	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "name", fe.Field)
}

func TestCatalog_Add_InvalidLink(t *testing.T) {
	ctx := context.Background()
	store := &mockStore{}
	c := New(store)

	for _, link := range []string{
		"https://www.youtube.com/watch",
		"https://www.youtube.com/watch?abc=123",
		"https://www.youtube.com/watch?v=",
		"http://www.youtube.com/watch?v=1234567",
		"https://github.com",
		"12345678",
	} {
		_, err := c.Add(ctx, AddArgs{Name: "title", URL: link, Notes: "notes"})
		assert.True(t, errors.Is(err, ErrInvalidLink), "link %q: got %v", link, err)
	}
	assert.Empty(t, store.created)
}

func TestCatalog_Add_Duplicate(t *testing.T) {
	ctx := context.Background()
	c := New(NewMemoryStore())

	mustAdd(t, c, "example", "https://www.youtube.com/watch?v=IODxDxX7oi4")

	_, err := c.Add(ctx, AddArgs{Name: "another name", URL: "https://www.youtube.com/watch?v=IODxDxX7oi4&ts=14"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateVideo))

	count, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestCatalog_Add_StoreError(t *testing.T) {
	store := &mockStore{createErr: errors.New("connection refused")}
	c := New(store)

	_, err := c.Add(context.Background(), AddArgs{Name: "n", URL: "https://www.youtube.com/watch?v=1"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDuplicateVideo))
	assert.False(t, errors.Is(err, ErrInvalidLink))
}

// --- Search ---

func TestCatalog_Search_AllOrderedByName(t *testing.T) {
	c := New(NewMemoryStore())
	mustAdd(t, c, "XYZ", "https://www.youtube.com/watch?v=123")
	mustAdd(t, c, "ABC", "https://www.youtube.com/watch?v=456")
	mustAdd(t, c, "lmn", "https://www.youtube.com/watch?v=789")
	mustAdd(t, c, "def", "https://www.youtube.com/watch?v=101")

	list, err := c.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC", "def", "lmn", "XYZ"}, names(list))
}

func TestCatalog_Search_Matches(t *testing.T) {
	c := New(NewMemoryStore())
	mustAdd(t, c, "ABC", "https://www.youtube.com/watch?v=456")
	mustAdd(t, c, "nope", "https://www.youtube.com/watch?v=789")
	mustAdd(t, c, "abc", "https://www.youtube.com/watch?v=123")
	mustAdd(t, c, "hello aBc!!!", "https://www.youtube.com/watch?v=101")

	list, err := c.Search(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, []string{"ABC", "abc", "hello aBc!!!"}, names(list))

	list, err = c.Search(context.Background(), "  ABC  ")
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestCatalog_Search_NoMatches(t *testing.T) {
	c := New(NewMemoryStore())
	mustAdd(t, c, "ABC", "https://www.youtube.com/watch?v=456")

	list, err := c.Search(context.Background(), "kittens")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestCatalog_Search_EmptyCatalog(t *testing.T) {
	c := New(NewMemoryStore())

	list, err := c.Search(context.Background(), "anything")
	require.NoError(t, err)
	assert.Empty(t, list)

	list, err = c.Search(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCatalog_Search_TrimsTerm(t *testing.T) {
	store := &mockStore{}
	c := New(store)

	_, err := c.Search(context.Background(), "  cats ")
	require.NoError(t, err)
	assert.Equal(t, "cats", store.lastTerm)
}

func TestCatalog_Search_StoreError(t *testing.T) {
	c := New(&mockStore{listErr: errors.New("boom")})

	_, err := c.Search(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to search videos")
}

func TestSearch_UnicodeFolding(t *testing.T) {
	videos := []*models.Video{
		{Name: "Straße"},
		{Name: "ÉCOLE"},
		{Name: "école du soir"},
	}
	assert.Equal(t, []string{"ÉCOLE", "école du soir"}, names(Search(videos, "école")))
	assert.Equal(t, []string{"Straße"}, names(Search(videos, "STRAßE")))
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	v := &models.Video{Name: "a", YoutubeID: "1"}
	require.NoError(t, s.Create(ctx, v))

	v.Name = "changed"
	list, err := s.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a", list[0].Name)

	list[0].Name = "changed again"
	list, err = s.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "a", list[0].Name)
}
