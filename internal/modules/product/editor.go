package product

import (
	"sync"

	"github.com/google/uuid"
)

// Draft is the content of the edit dialog. Session identifies one opening of
// the dialog so that a save from a dialog that was since closed or reopened
// for another product is refused.
type Draft struct {
	Session uuid.UUID `json:"session"`
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Price   string    `json:"price"`
}

func (d Draft) form() Form { return Form{Name: d.Name, Price: d.Price} }

// Editor is the state of the edit dialog. At most one product is edited at a
// time.
type Editor struct {
	mu    sync.Mutex
	draft *Draft
}

// Open shows the dialog pre-filled with p, replacing any open draft.
func (e *Editor) Open(p Product) Draft {
	d := Draft{
		Session: uuid.New(),
		ID:      p.ID,
		Name:    p.Name,
		Price:   formatPrice(p.Price),
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = &d
	return d
}

func (e *Editor) Current() (Draft, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return Draft{}, false
	}
	return *e.draft, true
}

// Edit stores the field values of an open draft and returns the draft to save.
func (e *Editor) Edit(session uuid.UUID, name, price string) (Draft, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return Draft{}, ErrNoEditor
	}
	if e.draft.Session != session {
		return Draft{}, ErrStaleEdit
	}
	e.draft.Name = name
	e.draft.Price = price
	return *e.draft, nil
}

// Close hides the dialog if session is still the open one. uuid.Nil closes
// whatever is open.
func (e *Editor) Close(session uuid.UUID) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft == nil {
		return
	}
	if session == uuid.Nil || e.draft.Session == session {
		e.draft = nil
	}
}

// CloseFor hides the dialog if it is editing id.
func (e *Editor) CloseFor(id int64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.draft != nil && e.draft.ID == id {
		e.draft = nil
	}
}
