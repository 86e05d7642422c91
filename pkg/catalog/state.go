package catalog

// State is the complete application state of the catalog client: the local
// product mirror plus UI state. It is a value; Reduce returns a new State
// and never mutates its input.
type State struct {
	// Products is the local mirror of the full collection. It is loaded
	// wholesale once and then patched incrementally after each successful
	// mutation; it is never re-fetched.
	Products []Product

	Query   string
	SortBy  SortBy
	Page    int
	PerPage int

	Loading bool
	// ErrMsg is the single error banner slot. The latest failure overwrites
	// it; it is cleared when the next operation starts.
	ErrMsg string

	// FormOpen reports whether the create/edit form is showing.
	FormOpen bool
	// EditingID is the ID of the product being edited, or "" in create mode.
	EditingID string
	Form      Form
}

// NewState returns the initial state: default sort, first page, fixed page size.
func NewState() State {
	return State{
		SortBy:  SortByNewest,
		Page:    1,
		PerPage: ItemsPerPage,
	}
}

// View derives the current filtered/sorted/paginated projection.
func (s State) View() View {
	return DeriveView(s.Products, s.Query, s.SortBy, s.Page, s.PerPage)
}

// Action is a state transition request handled by Reduce.
type Action interface{ isAction() }

// LoadStarted marks the initial list fetch as in flight.
type LoadStarted struct{}

// LoadSucceeded replaces the product mirror wholesale.
type LoadSucceeded struct{ Products []Product }

// LoadFailed records the load failure; the mirror stays empty.
type LoadFailed struct{ Message string }

// QueryChanged sets the search text. The current page is left alone; the
// derived view clamps it if the filtered set shrinks.
type QueryChanged struct{ Query string }

// SortChanged sets the sort order. Like QueryChanged, it does not reset the page.
type SortChanged struct{ SortBy SortBy }

// PageChanged navigates to a page (1-based).
type PageChanged struct{ Page int }

// FormOpened opens the form: in edit mode pre-populated from Product, in
// create mode (nil Product) cleared.
type FormOpened struct{ Product *Product }

// FormChanged replaces the form's field text.
type FormChanged struct{ Form Form }

// FormClosed dismisses the form without saving.
type FormClosed struct{}

// MutationStarted marks a save or delete as dispatched; it clears the error banner.
type MutationStarted struct{}

// CreateSucceeded prepends the created product to the mirror and closes the form.
type CreateSucceeded struct{ Product Product }

// UpdateSucceeded replaces the matching product in the mirror and closes the form.
type UpdateSucceeded struct{ Product Product }

// DeleteSucceeded removes the product from the mirror.
type DeleteSucceeded struct{ ID string }

// MutationFailed records a failed save or delete; the form stays open.
type MutationFailed struct{ Message string }

func (LoadStarted) isAction()     {}
func (LoadSucceeded) isAction()   {}
func (LoadFailed) isAction()      {}
func (QueryChanged) isAction()    {}
func (SortChanged) isAction()     {}
func (PageChanged) isAction()     {}
func (FormOpened) isAction()      {}
func (FormChanged) isAction()     {}
func (FormClosed) isAction()      {}
func (MutationStarted) isAction() {}
func (CreateSucceeded) isAction() {}
func (UpdateSucceeded) isAction() {}
func (DeleteSucceeded) isAction() {}
func (MutationFailed) isAction()  {}

// Reduce applies an action to a state and returns the next state. It is pure:
// no I/O, no mutation of the given state.
func Reduce(s State, a Action) State {
	switch action := a.(type) {
	case LoadStarted:
		s.Loading = true
		s.ErrMsg = ""

	case LoadSucceeded:
		s.Loading = false
		s.Products = action.Products

	case LoadFailed:
		s.Loading = false
		s.ErrMsg = action.Message

	case QueryChanged:
		s.Query = action.Query

	case SortChanged:
		s.SortBy = action.SortBy

	case PageChanged:
		page := action.Page
		if page < 1 {
			page = 1
		}
		s.Page = page

	case FormOpened:
		s.FormOpen = true
		if action.Product != nil {
			s.EditingID = action.Product.ID
			s.Form = FormFromProduct(*action.Product)
		} else {
			s.EditingID = ""
			s.Form = Form{}
		}

	case FormChanged:
		s.Form = action.Form

	case FormClosed:
		s.FormOpen = false
		s.EditingID = ""

	case MutationStarted:
		s.ErrMsg = ""

	case CreateSucceeded:
		s.Products = prepend(s.Products, action.Product)
		s.FormOpen = false
		s.EditingID = ""

	case UpdateSucceeded:
		s.Products = replaceByID(s.Products, action.Product)
		s.FormOpen = false
		s.EditingID = ""

	case DeleteSucceeded:
		s.Products = removeByID(s.Products, action.ID)

	case MutationFailed:
		s.ErrMsg = action.Message
	}
	return s
}

// prepend returns a new slice with p at the front of products.
func prepend(products []Product, p Product) []Product {
	next := make([]Product, 0, len(products)+1)
	next = append(next, p)
	return append(next, products...)
}

// replaceByID returns a new slice with the product matching p.ID replaced.
func replaceByID(products []Product, p Product) []Product {
	next := make([]Product, len(products))
	for i, existing := range products {
		if existing.ID == p.ID {
			next[i] = p
		} else {
			next[i] = existing
		}
	}
	return next
}

// removeByID returns a new slice without the product matching id.
func removeByID(products []Product, id string) []Product {
	next := make([]Product, 0, len(products))
	for _, existing := range products {
		if existing.ID != id {
			next = append(next, existing)
		}
	}
	return next
}
