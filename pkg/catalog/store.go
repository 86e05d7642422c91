package catalog

import "context"

// Failure banner text. The client never distinguishes error kinds: every
// failure collapses into the single ErrMsg slot with one of these messages.
const (
	loadFailedMsg   = "Failed to load products"
	saveFailedMsg   = "Error while saving product"
	deleteFailedMsg = "Error while deleting product"
)

// Store binds the pure reducer to a Gateway. All network effects go through
// here; the reducer itself never performs I/O. A Store is single-threaded:
// one in-flight request per user action, no cancellation, no retries.
type Store struct {
	gateway Gateway
	state   State
}

// NewStore creates a Store with the initial state.
func NewStore(gateway Gateway) *Store {
	return &Store{
		gateway: gateway,
		state:   NewState(),
	}
}

// State returns the current application state.
func (s *Store) State() State {
	return s.state
}

// View derives the current filtered/sorted/paginated projection.
func (s *Store) View() View {
	return s.state.View()
}

// Dispatch applies a pure state transition.
func (s *Store) Dispatch(a Action) {
	s.state = Reduce(s.state, a)
}

// Load fetches the full product list and replaces the local mirror. On
// failure the mirror is left empty and the error banner is set.
func (s *Store) Load(ctx context.Context) error {
	s.Dispatch(LoadStarted{})
	products, err := s.gateway.List(ctx)
	if err != nil {
		s.Dispatch(LoadFailed{Message: loadFailedMsg})
		return err
	}
	s.Dispatch(LoadSucceeded{Products: products})
	return nil
}

// Save validates the open form and dispatches a create or an update
// depending on the form mode. A form that fails local validation aborts
// before any request is sent; the caller surfaces the returned
// ErrInvalidForm to the user directly. On a server or transport failure the
// form stays open and the error banner is set.
func (s *Store) Save(ctx context.Context) error {
	fields, err := s.state.Form.Parse()
	if err != nil {
		return err
	}

	s.Dispatch(MutationStarted{})

	if id := s.state.EditingID; id != "" {
		updated, err := s.gateway.Update(ctx, id, fields)
		if err != nil {
			s.Dispatch(MutationFailed{Message: saveFailedMsg})
			return err
		}
		s.Dispatch(UpdateSucceeded{Product: *updated})
		return nil
	}

	created, err := s.gateway.Create(ctx, fields)
	if err != nil {
		s.Dispatch(MutationFailed{Message: saveFailedMsg})
		return err
	}
	s.Dispatch(CreateSucceeded{Product: *created})
	return nil
}

// Delete removes a product and patches it out of the local mirror.
// Confirmation is the front-end's responsibility; by the time Delete is
// called the user has already agreed.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.Dispatch(MutationStarted{})
	if err := s.gateway.Delete(ctx, id); err != nil {
		s.Dispatch(MutationFailed{Message: deleteFailedMsg})
		return err
	}
	s.Dispatch(DeleteSucceeded{ID: id})
	return nil
}
