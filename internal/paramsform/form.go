package paramsform

import "github.com/kyaoi/mdreader/internal/articleprops"

// Form holds the selection being edited in the panel. It is not applied to
// the article until the user presses Apply.
type Form struct {
	state articleprops.ArticleState
}

// NewForm returns a form holding the catalog default.
func NewForm() *Form {
	return &Form{state: articleprops.Default()}
}

// SetField replaces one field. The option is trusted to come from the
// field's catalog list.
func (f *Form) SetField(field articleprops.Field, opt articleprops.Option) {
	f.state = f.state.With(field, opt)
}

// Reset restores the catalog default.
func (f *Form) Reset() {
	f.state = articleprops.Default()
}

// State returns a snapshot of the current selection.
func (f *Form) State() articleprops.ArticleState {
	return f.state
}
