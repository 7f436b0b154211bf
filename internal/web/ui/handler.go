// Package ui serves the server-rendered HTML pages of the catalog: the
// filterable product list, product details, and the add and edit forms.
//
// Filter state lives in the URL query string and nowhere else; every page
// load re-derives it, and mutations navigate rather than answer in place.
package ui

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/abgdnv/catalog/internal/catalog"
	"github.com/abgdnv/catalog/internal/catalog/form"
	"github.com/abgdnv/catalog/internal/catalog/query"
	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Catalog is the slice of the product store the UI depends on.
type Catalog interface {
	// List returns all products in display order, most recently added first.
	List() []catalog.Product
	// Get returns the product with the given identifier.
	Get(id int64) (catalog.Product, bool)
	// Add assigns an identifier to the draft and prepends it to the list.
	Add(draft catalog.Product) catalog.Product
	// Update replaces the product with a matching identifier.
	Update(p catalog.Product)
	// Remove deletes the product with the given identifier if present.
	Remove(id int64)
}

type Handler struct {
	store  Catalog
	logger *slog.Logger

	list     *template.Template
	detail   *template.Template
	form     *template.Template
	notFound *template.Template
}

// NewHandler creates the UI handler and parses the embedded page templates.
// A nil store or a malformed template is a programming error and panics.
func NewHandler(store Catalog, logger *slog.Logger) *Handler {
	if store == nil {
		panic("ui: nil store")
	}
	return &Handler{
		store:    store,
		logger:   logger.With("component", "ui"),
		list:     parsePage("list.gohtml"),
		detail:   parsePage("detail.gohtml"),
		form:     parsePage("form.gohtml"),
		notFound: parsePage("notfound.gohtml"),
	}
}

// parsePage combines the shared layout with one page template.
func parsePage(page string) *template.Template {
	return template.Must(template.New("layout.gohtml").Funcs(template.FuncMap{
		"vnd": formatVND,
	}).ParseFS(templateFS, "templates/layout.gohtml", "templates/"+page))
}

// RegisterRoutes registers the HTML routes for the catalog UI.
func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Get("/", h.List)
	r.Get("/add", h.AddForm)
	r.Post("/add", h.AddSubmit)
	r.Get("/products/{id}", h.Detail)
	r.Post("/products/{id}/delete", h.Delete)
	r.Get("/edit/{id}", h.EditForm)
	r.Post("/edit/{id}", h.EditSubmit)
	r.NotFound(h.NotFound)
}

// List renders the product list for the filter and page carried by the URL.
// The query string is the only source of filter state; when the requested
// form differs from the canonical one (empty parameters submitted by the
// filter form, a page beyond range) the browser is redirected to the
// canonical location instead of rendering it directly.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	spec := query.ParseSpec(r.URL.Query())
	page := rawPage(r.URL.Query().Get(query.ParamPage))

	filtered := query.Apply(h.store.List(), spec)
	if total := query.TotalPages(len(filtered)); page > total {
		page = total
	}

	if canonical := listQuery(spec, page); canonical != r.URL.RawQuery {
		http.Redirect(w, r, listPath(canonical), http.StatusFound)
		return
	}

	h.render(w, http.StatusOK, h.list, newListView(spec, query.Paginate(filtered, page)))
}

// Detail renders a single product, or the not-found page when the
// identifier is unknown.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request) {
	product, ok := h.lookup(r)
	if !ok {
		h.renderNotFound(w)
		return
	}
	h.render(w, http.StatusOK, h.detail, newDetailView(product))
}

// AddForm renders a blank product form.
func (h *Handler) AddForm(w http.ResponseWriter, _ *http.Request) {
	h.render(w, http.StatusOK, h.form, newFormView(form.NewAdd()))
}

// AddSubmit validates the submitted draft. On failure the form is
// re-rendered with every error visible; on success the product is stored
// and the browser returns to the list.
func (h *Handler) AddSubmit(w http.ResponseWriter, r *http.Request) {
	f := form.NewAdd()
	fillForm(f, r)
	draft, ok := f.Submit()
	if !ok {
		h.render(w, http.StatusUnprocessableEntity, h.form, newFormView(f))
		return
	}
	product := h.store.Add(draft)
	h.logger.Info("Product created", "ID", product.ID, "Name", product.Name)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// EditForm renders the form pre-filled from an existing product.
func (h *Handler) EditForm(w http.ResponseWriter, r *http.Request) {
	product, ok := h.lookup(r)
	if !ok {
		h.renderNotFound(w)
		return
	}
	h.render(w, http.StatusOK, h.form, newFormView(form.NewEdit(product)))
}

// EditSubmit validates the submitted draft against the product being
// edited. On success the stored product is replaced wholesale and the
// browser moves on to its detail page.
func (h *Handler) EditSubmit(w http.ResponseWriter, r *http.Request) {
	product, ok := h.lookup(r)
	if !ok {
		h.renderNotFound(w)
		return
	}
	f := form.NewEdit(product)
	fillForm(f, r)
	updated, ok := f.Submit()
	if !ok {
		h.render(w, http.StatusUnprocessableEntity, h.form, newFormView(f))
		return
	}
	h.store.Update(updated)
	h.logger.Info("Product updated", "ID", updated.ID, "Name", updated.Name)
	http.Redirect(w, r, fmt.Sprintf("/products/%d", updated.ID), http.StatusSeeOther)
}

// Delete removes a product after the browser-side confirmation and returns
// to the list. The query string of the delete URL carries the filter along
// so the list stays where it was; removing an unknown identifier is a no-op.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if id, err := strconv.ParseInt(r.PathValue("id"), 10, 64); err == nil && id > 0 {
		h.store.Remove(id)
		h.logger.Info("Product deleted", "ID", id)
	}
	http.Redirect(w, r, listPath(r.URL.RawQuery), http.StatusSeeOther)
}

// NotFound renders the catch-all page for unknown routes.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	h.render(w, http.StatusNotFound, h.notFound, NotFoundView{Message: "Trang không tồn tại."})
}

// lookup resolves the {id} path parameter to a product.
func (h *Handler) lookup(r *http.Request) (catalog.Product, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return catalog.Product{}, false
	}
	return h.store.Get(id)
}

// fillForm copies the posted field values into the form draft.
func fillForm(f *form.Form, r *http.Request) {
	for _, field := range form.Fields {
		f.SetField(field, r.PostFormValue(field))
	}
}

// rawPage parses the requested page number, defaulting to the first page
// when the parameter is absent or unusable.
func rawPage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func (h *Handler) renderNotFound(w http.ResponseWriter) {
	h.render(w, http.StatusNotFound, h.notFound, NotFoundView{Message: "Không tìm thấy sản phẩm."})
}

// render executes a page template into a buffer first, so a template error
// still produces a clean 500 instead of a half-written page.
func (h *Handler) render(w http.ResponseWriter, status int, page *template.Template, data any) {
	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, "layout.gohtml", data); err != nil {
		h.logger.Error("Error rendering page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
