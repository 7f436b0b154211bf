package ui

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/abgdnv/catalog/internal/catalog"
	"github.com/abgdnv/catalog/internal/catalog/store"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopPersister struct{}

func (nopPersister) Save(_ []catalog.Product) error { return nil }

// newTestApp wires a UI handler over a real store hydrated with products.
func newTestApp(products []catalog.Product) (*chi.Mux, *store.Store) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	st := store.NewStore(nopPersister{}, logger)
	st.Hydrate(products)
	mux := chi.NewRouter()
	NewHandler(st, logger).RegisterRoutes(mux)
	return mux, st
}

func get(t *testing.T, mux *chi.Mux, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func postForm(t *testing.T, mux *chi.Mux, target string, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)
	return rr
}

func validProductForm() url.Values {
	return url.Values{
		"name":        {"Bàn Phím Cơ"},
		"category":    {"Điện tử"},
		"price":       {"50000"},
		"quantity":    {"10"},
		"description": {"Switch đỏ"},
	}
}

func Test_UI_List_RendersSeedCatalog(t *testing.T) {
	// given
	mux, _ := newTestApp(catalog.Seed())

	// when
	rr := get(t, mux, "/")

	// then the first page shows the first six products and the pager
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Laptop Dell Inspiron 15")
	assert.Contains(t, body, "15.990.000 ₫")
	assert.Contains(t, body, "11 sản phẩm")
	assert.Contains(t, body, "Trang 1/2")
	assert.Contains(t, body, `href="/?page=2"`)
	assert.NotContains(t, body, "Nồi Cơm Điện Toshiba", "seventh product belongs to page 2")
}

func Test_UI_List_SecondPage(t *testing.T) {
	// given
	mux, _ := newTestApp(catalog.Seed())

	// when
	rr := get(t, mux, "/?page=2")

	// then the remainder is shown with only a previous link
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Trang 2/2")
	assert.Contains(t, body, "Sách Kinh Tế Học")
	assert.NotContains(t, body, "Laptop Dell Inspiron 15")
	assert.Contains(t, body, "&laquo; Trước")
	assert.NotContains(t, body, "Sau &raquo;")
}

func Test_UI_List_FiltersByCategory(t *testing.T) {
	// given
	mux, _ := newTestApp(catalog.Seed())

	// when
	rr := get(t, mux, "/?category=S%C3%A1ch")

	// then exactly the two seeded books are listed
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "2 sản phẩm")
	assert.Contains(t, body, "Sách Dạy Nấu Ăn")
	assert.Contains(t, body, "Sách Kinh Tế Học")
	assert.NotContains(t, body, "Laptop Dell Inspiron 15")
}

func Test_UI_List_EmptyState(t *testing.T) {
	// given
	mux, _ := newTestApp(catalog.Seed())

	// when
	rr := get(t, mux, "/?q=kh%C3%B4ng+c%C3%B3+s%E1%BA%A3n+ph%E1%BA%A9m+n%C3%A0y")

	// then
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "0 sản phẩm")
	assert.Contains(t, body, "Không tìm thấy sản phẩm nào.")
	assert.NotContains(t, body, "<td>")
}

func Test_UI_List_CanonicalLocation(t *testing.T) {
	testCases := []struct {
		name             string
		target           string
		expectedLocation string
	}{
		{
			name:             "empty filter parameters are dropped",
			target:           "/?q=&category=&min=&max=",
			expectedLocation: "/",
		},
		{
			name:             "page 1 is the default and is omitted",
			target:           "/?page=1",
			expectedLocation: "/",
		},
		{
			name:             "page beyond range is clamped to the last page",
			target:           "/?page=99",
			expectedLocation: "/?page=2",
		},
		{
			name:             "unparseable page falls back to the first page",
			target:           "/?page=abc",
			expectedLocation: "/",
		},
		{
			name:             "clamping respects the filtered total",
			target:           "/?category=S%C3%A1ch&page=5",
			expectedLocation: "/?category=S%C3%A1ch",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mux, _ := newTestApp(catalog.Seed())

			// when
			rr := get(t, mux, tc.target)

			// then
			assert.Equal(t, http.StatusFound, rr.Code, "status code should match")
			assert.Equal(t, tc.expectedLocation, rr.Header().Get("Location"), "redirect target should match")
		})
	}
}

func Test_UI_Detail(t *testing.T) {
	testCases := []struct {
		name           string
		target         string
		expectedCode   int
		expectedInBody string
	}{
		{
			name:           "Success - product found",
			target:         "/products/1",
			expectedCode:   http.StatusOK,
			expectedInBody: "Laptop Dell Inspiron 15",
		},
		{
			name:           "Error - unknown identifier",
			target:         "/products/999",
			expectedCode:   http.StatusNotFound,
			expectedInBody: "Không tìm thấy sản phẩm.",
		},
		{
			name:           "Error - malformed identifier",
			target:         "/products/abc",
			expectedCode:   http.StatusNotFound,
			expectedInBody: "Không tìm thấy sản phẩm.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mux, _ := newTestApp(catalog.Seed())

			// when
			rr := get(t, mux, tc.target)

			// then
			assert.Equal(t, tc.expectedCode, rr.Code, "status code should match")
			assert.Contains(t, rr.Body.String(), tc.expectedInBody)
		})
	}
}

func Test_UI_AddFlow(t *testing.T) {
	// given
	mux, st := newTestApp(catalog.Seed())

	rr := get(t, mux, "/add")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Thêm Sản Phẩm")

	// when
	rr = postForm(t, mux, "/add", validProductForm())

	// then the browser returns to the list and the product is at the front
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	require.Equal(t, 12, st.Len())
	front := st.List()[0]
	assert.Equal(t, int64(12), front.ID)
	assert.Equal(t, "Bàn Phím Cơ", front.Name)
	assert.Equal(t, int64(50000), front.Price)
	assert.Equal(t, int32(10), front.Quantity)
}

func Test_UI_AddSubmit_ValidationFailure(t *testing.T) {
	// given
	mux, st := newTestApp(catalog.Seed())
	values := validProductForm()
	values.Set("name", "AB")

	// when
	rr := postForm(t, mux, "/add", values)

	// then the form is re-rendered with the error and nothing is stored
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Name must be at least 3 characters long")
	assert.Contains(t, body, `value="AB"`, "draft should keep the submitted text")
	assert.Equal(t, 11, st.Len())
}

func Test_UI_EditFlow(t *testing.T) {
	// given the seeded rice cooker
	mux, st := newTestApp(catalog.Seed())

	rr := get(t, mux, "/edit/7")
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "Chỉnh Sửa Sản Phẩm")
	assert.Contains(t, body, `value="890000"`, "draft should render the price as text")

	// when the price is changed and the form submitted
	values := url.Values{
		"name":        {"Nồi Cơm Điện Toshiba"},
		"category":    {"Gia dụng"},
		"price":       {"990000"},
		"quantity":    {"8"},
		"description": {"Nồi cơm điện 1.8 lít, lòng nồi chống dính."},
	}
	rr = postForm(t, mux, "/edit/7", values)

	// then the browser moves on to the detail page and the store is updated
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/products/7", rr.Header().Get("Location"))
	updated, ok := st.Get(7)
	require.True(t, ok)
	assert.Equal(t, int64(990000), updated.Price)
	assert.Equal(t, "Nồi Cơm Điện Toshiba", updated.Name)
}

func Test_UI_EditForm_UnknownID(t *testing.T) {
	// given
	mux, st := newTestApp(catalog.Seed())

	// when / then
	rr := get(t, mux, "/edit/999")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = postForm(t, mux, "/edit/999", validProductForm())
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, 11, st.Len())
}

func Test_UI_Delete(t *testing.T) {
	// given
	mux, st := newTestApp(catalog.Seed())

	// when deleting from a filtered list
	rr := postForm(t, mux, "/products/9/delete?category=S%C3%A1ch", nil)

	// then the browser returns to the same filtered list
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/?category=S%C3%A1ch", rr.Header().Get("Location"))
	assert.Equal(t, 10, st.Len())
	_, ok := st.Get(9)
	assert.False(t, ok)

	// and deleting the same product again is a harmless no-op
	rr = postForm(t, mux, "/products/9/delete?category=S%C3%A1ch", nil)
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, 10, st.Len())
}

func Test_UI_DeleteLastFilteredProduct(t *testing.T) {
	// given a filter matching exactly one product
	mux, st := newTestApp(catalog.Seed())

	// when it is deleted
	rr := postForm(t, mux, "/products/11/delete?q=Lego", nil)

	// then the browser returns to the filtered list
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/?q=Lego", rr.Header().Get("Location"))
	assert.Equal(t, 10, st.Len())

	// and the list renders the empty state with zero items on page 1
	rr = get(t, mux, "/?q=Lego")
	assert.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.Contains(t, body, "0 sản phẩm")
	assert.Contains(t, body, "Không tìm thấy sản phẩm nào.")

	// and a stale page parameter is forced back to page 1
	rr = get(t, mux, "/?q=Lego&page=2")
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/?q=Lego", rr.Header().Get("Location"))
}

func Test_UI_CatchAllNotFound(t *testing.T) {
	// given
	mux, _ := newTestApp(catalog.Seed())

	// when
	rr := get(t, mux, "/does-not-exist")

	// then
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Contains(t, rr.Body.String(), "Trang không tồn tại.")
}

func Test_UI_NilStorePanics(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	assert.Panics(t, func() {
		NewHandler(nil, logger)
	})
}
