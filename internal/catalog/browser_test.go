package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidIcons() []string {
	list := icons(100)
	return append(list, "x-solid", "y-solid")
}

func TestBrowser_ToggleFilterResetsPage(t *testing.T) {
	b := NewBrowser(solidIcons(), DefaultPageSize, State{})
	b.SetPage(3)
	assert.Equal(t, 3, b.State().Page)

	b.ToggleFilter("solid")
	assert.Equal(t, 1, b.State().Page)
	assert.Equal(t, []string{"solid"}, b.State().ActiveFilters)

	page, err := b.View()
	require.NoError(t, err)
	assert.Equal(t, []string{"x-solid", "y-solid"}, page.Items)
}

func TestBrowser_ToggleFilterOff(t *testing.T) {
	b := NewBrowser(solidIcons(), DefaultPageSize, State{ActiveFilters: []string{"solid", "x"}})
	b.ToggleFilter("solid")
	assert.Equal(t, []string{"x"}, b.State().ActiveFilters)
}

func TestBrowser_SearchResetsPage(t *testing.T) {
	b := NewBrowser(solidIcons(), DefaultPageSize, State{Page: 3})
	b.SetSearch("ICON-00")
	assert.Equal(t, 1, b.State().Page)

	page, err := b.View()
	require.NoError(t, err)
	assert.Len(t, page.Items, 10)
}

func TestBrowser_PageBeyondFilteredTotalIsEmpty(t *testing.T) {
	b := NewBrowser(solidIcons(), DefaultPageSize, State{})
	b.ToggleFilter("solid")
	b.SetPage(3)

	page, err := b.View()
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.TotalPages)
}

func TestBrowser_Navigation(t *testing.T) {
	b := NewBrowser(icons(100), DefaultPageSize, State{})

	b.Prev()
	assert.Equal(t, 1, b.State().Page)

	require.NoError(t, b.Next())
	require.NoError(t, b.Next())
	assert.Equal(t, 3, b.State().Page)

	require.NoError(t, b.Next())
	assert.Equal(t, 3, b.State().Page, "next stops at the last page")

	b.Prev()
	assert.Equal(t, 2, b.State().Page)

	require.NoError(t, b.Last())
	assert.Equal(t, 3, b.State().Page)

	b.First()
	assert.Equal(t, 1, b.State().Page)
}

func TestBrowser_NextOnEmptyResult(t *testing.T) {
	b := NewBrowser(icons(10), DefaultPageSize, State{Search: "nothing"})
	require.NoError(t, b.Next())
	assert.Equal(t, 1, b.State().Page)
}

func TestBrowser_InvalidFilter(t *testing.T) {
	b := NewBrowser(icons(10), DefaultPageSize, State{ActiveFilters: []string{"["}})
	assert.ErrorIs(t, b.Next(), ErrInvalidFilter)
	_, err := b.View()
	assert.ErrorIs(t, err, ErrInvalidFilter)
}

func TestBrowser_StateIsCopied(t *testing.T) {
	active := []string{"a"}
	b := NewBrowser(icons(10), DefaultPageSize, State{ActiveFilters: active})
	b.ToggleFilter("b")
	assert.Equal(t, []string{"a"}, active)

	s := b.State()
	s.ActiveFilters[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, b.State().ActiveFilters)
}
