package product

import (
	"context"
	"sync"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	alertLoad       = "Could not load products!"
	alertMissing    = "Fill in the name and price!"
	alertPrice      = "Price must be a number!"
	alertAdd        = "Could not add the product!"
	alertUpdate     = "Could not update the product!"
	alertDelete     = "Could not delete the product!"
	alertNotListed  = "This product is no longer listed."
	alertEditClosed = "The edit dialog is closed."
	alertPageSize   = "That number of rows per page is not available."
	alertPage       = "Page must not be negative."
)

// Service drives the products screen: the list, the add form, the edit
// dialog and the pager. Every successful mutation re-reads the whole
// collection; a failed one leaves the screen as it was.
type Service interface {
	Refresh(ctx context.Context) error
	Products() ListState

	Form() Form
	Add(ctx context.Context, form Form) (Form, error)
	Delete(ctx context.Context, id int64) error

	BeginEdit(id int64) (Draft, error)
	Editing() (Draft, bool)
	SaveEdit(ctx context.Context, draft Draft) error
	CancelEdit(session uuid.UUID)

	Page() PageView
	SetPage(page int) (PageView, error)
	SetItemsPerPage(size int) (PageView, error)
	SetPagination(page, size *int) (PageView, error)
}

type service struct {
	repo   Repository
	list   *List
	pager  *Pager
	editor *Editor
	log    zerolog.Logger

	formMu sync.Mutex
	form   Form
}

// NewService creates the products screen state on top of repo.
func NewService(repo Repository, pageSizes []int, log zerolog.Logger) Service {
	return &service{
		repo:   repo,
		list:   NewList(),
		pager:  NewPager(pageSizes),
		editor: &Editor{},
		log:    log.With().Str("module", "product").Logger(),
	}
}

// Refresh is not coordinated with other refreshes: when two overlap, the first
// to finish clears the loading flag and the last to finish wins, even if it
// started earlier.
func (s *service) Refresh(ctx context.Context) error {
	s.list.SetLoading(true)
	products, err := s.repo.List(ctx)
	if err != nil {
		s.list.SetLoading(false)
		err = remote("select", err)
		s.log.Error().Err(err).Msg("fetch products failed")
		return alert(alertLoad, err)
	}
	s.list.Replace(products)
	s.log.Debug().Int("count", len(products)).Msg("products refreshed")
	return nil
}

// refreshAfter re-reads the list after a confirmed mutation. Its failure is
// logged only; the mutation itself already succeeded.
func (s *service) refreshAfter(ctx context.Context) {
	_ = s.Refresh(ctx)
}

func (s *service) Products() ListState { return s.list.State() }

func (s *service) Form() Form {
	s.formMu.Lock()
	defer s.formMu.Unlock()
	return s.form
}

func (s *service) setForm(f Form) {
	s.formMu.Lock()
	defer s.formMu.Unlock()
	s.form = f
}

func (s *service) Add(ctx context.Context, form Form) (Form, error) {
	s.setForm(form)
	in, err := form.Input()
	if err != nil {
		return form, validationAlert(err)
	}
	if err := s.repo.Create(ctx, in); err != nil {
		err = remote("insert", err)
		s.log.Error().Err(err).Str("name", in.Name).Msg("add product failed")
		return form, alert(alertAdd, err)
	}
	s.log.Info().Str("name", in.Name).Float64("price", in.Price).Msg("product added")

	form.Clear()
	s.setForm(form)
	s.refreshAfter(ctx)
	return form, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		err = remote("delete", err)
		s.log.Error().Err(err).Int64("id", id).Msg("delete product failed")
		return alert(alertDelete, err)
	}
	s.log.Info().Int64("id", id).Msg("product deleted")

	s.editor.CloseFor(id)
	s.refreshAfter(ctx)
	return nil
}

func (s *service) BeginEdit(id int64) (Draft, error) {
	p, ok := s.list.Find(id)
	if !ok {
		return Draft{}, alert(alertNotListed, ErrNotFound)
	}
	return s.editor.Open(p), nil
}

func (s *service) Editing() (Draft, bool) { return s.editor.Current() }

func (s *service) SaveEdit(ctx context.Context, draft Draft) error {
	d, err := s.editor.Edit(draft.Session, draft.Name, draft.Price)
	if err != nil {
		return alert(alertEditClosed, err)
	}
	in, err := d.form().Input()
	if err != nil {
		return validationAlert(err)
	}
	if err := s.repo.Update(ctx, d.ID, in); err != nil {
		err = remote("update", err)
		s.log.Error().Err(err).Int64("id", d.ID).Msg("update product failed")
		return alert(alertUpdate, err)
	}
	s.log.Info().Int64("id", d.ID).Str("name", in.Name).Float64("price", in.Price).Msg("product updated")

	s.editor.Close(d.Session)
	s.refreshAfter(ctx)
	return nil
}

func (s *service) CancelEdit(session uuid.UUID) { s.editor.Close(session) }

func (s *service) Page() PageView {
	return s.pager.View(s.list.State().Products)
}

func (s *service) SetPage(page int) (PageView, error) {
	if err := s.pager.SetPage(page); err != nil {
		return PageView{}, alert(alertPage, err)
	}
	return s.Page(), nil
}

func (s *service) SetItemsPerPage(size int) (PageView, error) {
	if err := s.pager.SetItemsPerPage(size); err != nil {
		return PageView{}, alert(alertPageSize, err)
	}
	return s.Page(), nil
}

func (s *service) SetPagination(page, size *int) (PageView, error) {
	if err := s.pager.Set(page, size); err != nil {
		if errors.Is(err, ErrInvalidPage) {
			return PageView{}, alert(alertPage, err)
		}
		return PageView{}, alert(alertPageSize, err)
	}
	return s.Page(), nil
}

func validationAlert(err error) error {
	if errors.Is(err, ErrMissingFields) {
		return alert(alertMissing, err)
	}
	return alert(alertPrice, err)
}
