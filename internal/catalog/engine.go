// Package catalog filters, searches, sorts and paginates icon names.
package catalog

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// DefaultPageSize is used when a caller passes a non-positive page size.
const DefaultPageSize = 36

// ErrInvalidFilter wraps filter values that do not compile as expressions.
var ErrInvalidFilter = errors.New("invalid filter expression")

// Page is one slice of the selected icons. Page is 1-based and TotalPages
// is at least 1, even for an empty selection.
type Page struct {
	Items      []string `json:"items"`
	Page       int      `json:"page"`
	PageSize   int      `json:"pageSize"`
	TotalPages int      `json:"totalPages"`
	Total      int      `json:"total"`
}

// CompileFilters turns filter values into case-insensitive matchers.
func CompileFilters(values []string) ([]*regexp.Regexp, error) {
	matchers := make([]*regexp.Regexp, 0, len(values))
	for _, v := range values {
		re, err := regexp.Compile("(?i)" + v)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidFilter, v, err)
		}
		matchers = append(matchers, re)
	}
	return matchers, nil
}

// Select keeps icons matched by every matcher and containing search
// (case-folded substring), sorted byte-wise. The input is not modified.
func Select(icons []string, matchers []*regexp.Regexp, search string) []string {
	needle := strings.ToLower(search)
	out := make([]string, 0, len(icons))
	for _, icon := range icons {
		if !matchAll(icon, matchers) {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(icon), needle) {
			continue
		}
		out = append(out, icon)
	}
	slices.Sort(out)
	return out
}

func matchAll(icon string, matchers []*regexp.Regexp) bool {
	for _, re := range matchers {
		if !re.MatchString(icon) {
			return false
		}
	}
	return true
}

// TotalPages is never below 1, even for an empty result.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (count + pageSize - 1) / pageSize
	return max(pages, 1)
}

// Paginate returns the window [(page-1)*pageSize, page*pageSize) of sorted.
// Out-of-range pages yield no items.
func Paginate(sorted []string, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	result := Page{
		Items:      []string{},
		Page:       page,
		PageSize:   pageSize,
		TotalPages: TotalPages(len(sorted), pageSize),
		Total:      len(sorted),
	}
	if page < 1 {
		return result
	}
	start := (page - 1) * pageSize
	if start >= len(sorted) {
		return result
	}
	end := min(start+pageSize, len(sorted))
	result.Items = append(result.Items, sorted[start:end]...)
	return result
}

// View runs the whole pipeline. It only fails on an invalid filter expression.
func View(icons, activeFilters []string, search string, page, pageSize int) (Page, error) {
	matchers, err := CompileFilters(activeFilters)
	if err != nil {
		return Page{}, err
	}
	return Paginate(Select(icons, matchers, search), page, pageSize), nil
}
