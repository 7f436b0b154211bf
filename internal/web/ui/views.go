package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abgdnv/catalog/internal/catalog"
	"github.com/abgdnv/catalog/internal/catalog/form"
	"github.com/abgdnv/catalog/internal/catalog/query"
)

// ListView is the data for the list page: the active filter, one page of
// matching products and the navigation derived from both.
type ListView struct {
	Spec       query.Spec
	Categories []string
	Tabs       []CategoryTab
	Items      []ListItem
	Page       int
	TotalPages int
	TotalItems int
	PrevURL    string
	NextURL    string
}

// ListItem is one row of the product table with its action URLs. The
// delete URL carries the current filter so the list stays where it was
// after the removal.
type ListItem struct {
	catalog.Product
	DetailURL string
	EditURL   string
	DeleteURL string
}

// CategoryTab is one entry of the category quick-filter row. Selecting a
// tab replaces the category and resets the page to 1.
type CategoryTab struct {
	Label  string
	URL    string
	Active bool
}

func newListView(spec query.Spec, window query.Page) ListView {
	view := ListView{
		Spec:       spec,
		Categories: catalog.Categories(),
		Page:       window.Number,
		TotalPages: window.TotalPages,
		TotalItems: window.TotalItems,
	}

	currentQuery := listQuery(spec, window.Number)
	view.Items = make([]ListItem, len(window.Items))
	for i, p := range window.Items {
		deleteURL := fmt.Sprintf("/products/%d/delete", p.ID)
		if currentQuery != "" {
			deleteURL += "?" + currentQuery
		}
		view.Items[i] = ListItem{
			Product:   p,
			DetailURL: fmt.Sprintf("/products/%d", p.ID),
			EditURL:   fmt.Sprintf("/edit/%d", p.ID),
			DeleteURL: deleteURL,
		}
	}

	if window.Number > 1 {
		view.PrevURL = listPath(listQuery(spec, window.Number-1))
	}
	if window.Number < window.TotalPages {
		view.NextURL = listPath(listQuery(spec, window.Number+1))
	}

	all := ""
	view.Tabs = append(view.Tabs, CategoryTab{
		Label:  "Tất cả",
		URL:    listPath(listQuery(query.Patch{Category: &all}.ApplyTo(spec), 1)),
		Active: spec.Category == "",
	})
	for _, label := range catalog.Categories() {
		category := label
		view.Tabs = append(view.Tabs, CategoryTab{
			Label:  label,
			URL:    listPath(listQuery(query.Patch{Category: &category}.ApplyTo(spec), 1)),
			Active: spec.Category == label,
		})
	}
	return view
}

// DetailView is the data for the product detail page.
type DetailView struct {
	Product   catalog.Product
	EditURL   string
	DeleteURL string
}

func newDetailView(p catalog.Product) DetailView {
	return DetailView{
		Product:   p,
		EditURL:   fmt.Sprintf("/edit/%d", p.ID),
		DeleteURL: fmt.Sprintf("/products/%d/delete", p.ID),
	}
}

// FormView is the data for the add and edit pages.
type FormView struct {
	Title      string
	Action     string
	CancelURL  string
	Draft      form.Draft
	Errors     form.Errors
	Categories []string
}

func newFormView(f *form.Form) FormView {
	view := FormView{
		Draft:      f.Draft(),
		Errors:     f.VisibleErrors(),
		Categories: catalog.Categories(),
	}
	if f.Mode() == form.ModeEdit {
		view.Title = "Chỉnh Sửa Sản Phẩm"
		view.Action = fmt.Sprintf("/edit/%d", f.EditID())
		view.CancelURL = fmt.Sprintf("/products/%d", f.EditID())
	} else {
		view.Title = "Thêm Sản Phẩm"
		view.Action = "/add"
		view.CancelURL = "/"
	}
	return view
}

// NotFoundView is the data for the not-found page.
type NotFoundView struct {
	Message string
}

// listQuery renders the canonical query string for a filter and page.
// Empty parameters are omitted, and so is page 1, being the default.
func listQuery(spec query.Spec, page int) string {
	values := spec.Values()
	if page > 1 {
		values.Set(query.ParamPage, strconv.Itoa(page))
	}
	return values.Encode()
}

// listPath turns a canonical query string into a list URL.
func listPath(rawQuery string) string {
	if rawQuery == "" {
		return "/"
	}
	return "/?" + rawQuery
}

// formatVND renders a price in đồng with dot-separated thousand groups,
// e.g. 15990000 becomes "15.990.000 ₫".
func formatVND(price int64) string {
	digits := strconv.FormatInt(price, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteString(" ₫")
	return b.String()
}
