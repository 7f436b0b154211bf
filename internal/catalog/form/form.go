// Package form implements the add/edit product form: a text draft of the
// product fields, per-field validation rules, and touched-field gating
// that decides which errors a view may show.
package form

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/abgdnv/catalog/internal/catalog"
)

// Field names, used as keys in Draft updates and Errors.
const (
	FieldName        = "name"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldQuantity    = "quantity"
	FieldDescription = "description"
)

// Fields lists every field name in display order.
var Fields = []string{FieldName, FieldCategory, FieldPrice, FieldQuantity, FieldDescription}

// Draft holds the raw text of each product field prior to numeric
// coercion. It is transient: never persisted, discarded after a
// successful submit.
type Draft struct {
	Name        string
	Category    string
	Price       string
	Quantity    string
	Description string
}

// DraftFromProduct renders an existing product's fields as text, the
// starting point for an edit form.
func DraftFromProduct(p catalog.Product) Draft {
	return Draft{
		Name:        p.Name,
		Category:    p.Category,
		Price:       strconv.FormatInt(p.Price, 10),
		Quantity:    strconv.FormatInt(int64(p.Quantity), 10),
		Description: p.Description,
	}
}

// Errors maps a field name to the message describing its failing rule.
type Errors map[string]string

// Validate evaluates every field rule on the draft and returns the
// failures. An empty result means the draft is submittable.
func Validate(d Draft) Errors {
	errs := Errors{}

	if utf8.RuneCountInString(strings.TrimSpace(d.Name)) < 3 {
		errs[FieldName] = "Name must be at least 3 characters long"
	}
	if !catalog.IsCategory(d.Category) {
		errs[FieldCategory] = "Choose one of the listed categories"
	}
	if price, err := strconv.ParseInt(strings.TrimSpace(d.Price), 10, 64); err != nil || price <= 0 {
		errs[FieldPrice] = "Price must be a whole number greater than 0"
	}
	if quantity, err := strconv.ParseInt(strings.TrimSpace(d.Quantity), 10, 32); err != nil || quantity <= 0 {
		errs[FieldQuantity] = "Quantity must be a whole number greater than 0"
	}
	if strings.TrimSpace(d.Description) == "" {
		errs[FieldDescription] = "Description cannot be blank"
	}

	return errs
}

// Mode selects between add and edit behavior.
type Mode int

const (
	// ModeAdd starts from a blank draft and emits an identifier-less payload.
	ModeAdd Mode = iota
	// ModeEdit starts from an existing product and keeps its identifier.
	ModeEdit
)

// Form tracks a draft and which of its fields have been interacted with.
// Validation runs on every read, but errors surface only for touched
// fields until a submit attempt reveals everything. The form never talks
// to the store; Submit emits a payload for the caller to dispatch.
type Form struct {
	mode    Mode
	editID  int64
	draft   Draft
	touched map[string]bool
}

// NewAdd returns a blank form in add mode.
func NewAdd() *Form {
	return &Form{
		mode:    ModeAdd,
		touched: make(map[string]bool),
	}
}

// NewEdit returns a form in edit mode initialized from p.
func NewEdit(p catalog.Product) *Form {
	return &Form{
		mode:    ModeEdit,
		editID:  p.ID,
		draft:   DraftFromProduct(p),
		touched: make(map[string]bool),
	}
}

// Mode reports whether the form adds a new product or edits an existing one.
func (f *Form) Mode() Mode { return f.mode }

// EditID returns the identifier of the product being edited, 0 in add mode.
func (f *Form) EditID() int64 { return f.editID }

// Draft returns the current raw field values.
func (f *Form) Draft() Draft { return f.draft }

// SetField updates one field's text and marks the field touched.
func (f *Form) SetField(field, value string) {
	switch field {
	case FieldName:
		f.draft.Name = value
	case FieldCategory:
		f.draft.Category = value
	case FieldPrice:
		f.draft.Price = value
	case FieldQuantity:
		f.draft.Quantity = value
	case FieldDescription:
		f.draft.Description = value
	default:
		return
	}
	f.touched[field] = true
}

// Touch marks a field as interacted with without changing its value.
func (f *Form) Touch(field string) {
	f.touched[field] = true
}

// Touched reports whether the field has been interacted with.
func (f *Form) Touched(field string) bool {
	return f.touched[field]
}

// Errors returns every failing rule regardless of touched state.
func (f *Form) Errors() Errors {
	return Validate(f.draft)
}

// VisibleErrors returns the failing rules for touched fields only. After a
// failed submit every field is touched, so everything becomes visible.
func (f *Form) VisibleErrors() Errors {
	visible := Errors{}
	for field, msg := range Validate(f.draft) {
		if f.touched[field] {
			visible[field] = msg
		}
	}
	return visible
}

// Submit validates the whole draft. If any rule fails, every field is
// marked touched and no payload is emitted. Otherwise text fields are
// trimmed, numeric fields coerced, and the resulting product is returned;
// its identifier is 0 in add mode and the original identifier in edit mode.
func (f *Form) Submit() (catalog.Product, bool) {
	if errs := Validate(f.draft); len(errs) > 0 {
		for _, field := range Fields {
			f.touched[field] = true
		}
		return catalog.Product{}, false
	}

	price, _ := strconv.ParseInt(strings.TrimSpace(f.draft.Price), 10, 64)
	quantity, _ := strconv.ParseInt(strings.TrimSpace(f.draft.Quantity), 10, 32)

	return catalog.Product{
		ID:          f.editID,
		Name:        strings.TrimSpace(f.draft.Name),
		Category:    f.draft.Category,
		Price:       price,
		Quantity:    int32(quantity),
		Description: strings.TrimSpace(f.draft.Description),
	}, true
}
