package pagination_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/andyle182810/twitchkit/pagination"
)

func TestPage_Done(t *testing.T) {
	t.Parallel()

	var nilPage *pagination.Page

	require.True(t, nilPage.Done())
	require.True(t, (&pagination.Page{Cursor: ""}).Done())
	require.False(t, (&pagination.Page{Cursor: "abc"}).Done())
}

func TestClampPageSize(t *testing.T) {
	t.Parallel()

	require.Equal(t, pagination.DefaultPageSize, pagination.ClampPageSize(0))
	require.Equal(t, pagination.DefaultPageSize, pagination.ClampPageSize(-5))
	require.Equal(t, 50, pagination.ClampPageSize(50))
	require.Equal(t, pagination.MaxPageSize, pagination.ClampPageSize(500))
}

func TestCollect_WalksAllPages(t *testing.T) {
	t.Parallel()

	pages := map[string][]string{
		"":   {"a", "b"},
		"p2": {"c", "d"},
		"p3": {"e"},
	}
	cursors := map[string]string{"": "p2", "p2": "p3", "p3": ""}

	var requested []string

	fetch := func(_ context.Context, cursor string) ([]string, *pagination.Page, error) {
		requested = append(requested, cursor)

		return pages[cursor], &pagination.Page{Cursor: cursors[cursor]}, nil
	}

	items, err := pagination.Collect(context.Background(), fetch, 0)

	require.NoError(t, err)
	require.Equal(t, []string{"a", "b", "c", "d", "e"}, items)
	require.Equal(t, []string{"", "p2", "p3"}, requested)
}

func TestCollect_StopsAtMaxItems(t *testing.T) {
	t.Parallel()

	calls := 0

	fetch := func(_ context.Context, _ string) ([]int, *pagination.Page, error) {
		calls++

		return []int{1, 2, 3}, &pagination.Page{Cursor: "more"}, nil
	}

	items, err := pagination.Collect(context.Background(), fetch, 5)

	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3, 1, 2}, items)
	require.Equal(t, 2, calls)
}

func TestCollect_PropagatesFetchError(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")

	fetch := func(_ context.Context, cursor string) ([]string, *pagination.Page, error) {
		if cursor == "" {
			return []string{"a"}, &pagination.Page{Cursor: "p2"}, nil
		}

		return nil, nil, errBoom
	}

	items, err := pagination.Collect(context.Background(), fetch, 0)

	require.ErrorIs(t, err, errBoom)
	require.Equal(t, []string{"a"}, items)
}

func TestCollect_SinglePage(t *testing.T) {
	t.Parallel()

	fetch := func(_ context.Context, _ string) ([]string, *pagination.Page, error) {
		return []string{"only"}, nil, nil
	}

	items, err := pagination.Collect(context.Background(), fetch, 0)

	require.NoError(t, err)
	require.Equal(t, []string{"only"}, items)
}
