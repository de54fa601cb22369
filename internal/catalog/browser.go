package catalog

import "slices"

// State is the navigation state of one picker.
type State struct {
	ActiveFilters []string `json:"activeFilters"`
	Search        string   `json:"search"`
	Page          int      `json:"page"`
}

// Browser applies picker actions to a State over a fixed icon list.
type Browser struct {
	icons    []string
	pageSize int
	state    State
}

func NewBrowser(icons []string, pageSize int, state State) *Browser {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if state.Page < 1 {
		state.Page = 1
	}
	state.ActiveFilters = slices.Clone(state.ActiveFilters)
	return &Browser{icons: icons, pageSize: pageSize, state: state}
}

func (b *Browser) State() State {
	s := b.state
	s.ActiveFilters = slices.Clone(b.state.ActiveFilters)
	if s.ActiveFilters == nil {
		s.ActiveFilters = []string{}
	}
	return s
}

// ToggleFilter switches a filter value on or off and returns to page 1.
func (b *Browser) ToggleFilter(value string) {
	if i := slices.Index(b.state.ActiveFilters, value); i >= 0 {
		b.state.ActiveFilters = slices.Delete(b.state.ActiveFilters, i, i+1)
	} else {
		b.state.ActiveFilters = append(b.state.ActiveFilters, value)
	}
	b.state.Page = 1
}

// SetSearch replaces the search term and returns to page 1.
func (b *Browser) SetSearch(term string) {
	b.state.Search = term
	b.state.Page = 1
}

// SetPage accepts any page; pages past the end render empty.
func (b *Browser) SetPage(page int) {
	b.state.Page = max(page, 1)
}

func (b *Browser) First() {
	b.state.Page = 1
}

func (b *Browser) Prev() {
	if b.state.Page > 1 {
		b.state.Page--
	}
}

func (b *Browser) Next() error {
	total, err := b.totalPages()
	if err != nil {
		return err
	}
	if b.state.Page < total {
		b.state.Page++
	}
	return nil
}

func (b *Browser) Last() error {
	total, err := b.totalPages()
	if err != nil {
		return err
	}
	b.state.Page = total
	return nil
}

func (b *Browser) View() (Page, error) {
	return View(b.icons, b.state.ActiveFilters, b.state.Search, b.state.Page, b.pageSize)
}

func (b *Browser) totalPages() (int, error) {
	matchers, err := CompileFilters(b.state.ActiveFilters)
	if err != nil {
		return 0, err
	}
	return TotalPages(len(Select(b.icons, matchers, b.state.Search)), b.pageSize), nil
}
