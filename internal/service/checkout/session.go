package checkout

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"minishop-storefront/internal/domain"
)

// CartSource is the slice of the cart store the flow consumes.
type CartSource interface {
	Snapshot() domain.CartSnapshot
	Clear()
}

// Session is the checkout state machine: shipping -> review -> confirmed,
// with review -> shipping permitted for editing. It exists only for the
// lifetime of the checkout screen and is discarded afterwards.
//
// Review and confirmation pricing read the snapshot frozen when shipping was
// submitted, never the live cart, so a concurrent cart mutation during review
// cannot retroactively change the order being placed.
type Session struct {
	mu       sync.Mutex
	cart     CartSource
	step     domain.Step
	shipping *domain.ShippingDetails
	frozen   *domain.CartSnapshot
	order    *domain.Order
}

// NewSession starts a checkout for the given cart. An empty cart refuses
// entry: the surrounding page redirects to its empty-cart state instead.
func NewSession(cart CartSource) (*Session, error) {
	if cart.Snapshot().TotalItems == 0 {
		return nil, domain.ErrEmptyCart
	}
	return &Session{cart: cart, step: domain.StepShipping}, nil
}

// Step returns the current checkout step.
func (s *Session) Step() domain.Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

// SubmitShipping validates the form and, on success, freezes the submitted
// values and a snapshot of the current cart, then advances to review. On
// validation failure the session stays on shipping and the field errors are
// returned.
func (s *Session) SubmitShipping(form ShippingForm) (FieldErrors, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != domain.StepShipping {
		return nil, fmt.Errorf("submit shipping from %s: %w", s.step, domain.ErrInvalidTransition)
	}
	if errs := ValidateShipping(form); errs != nil {
		return errs, nil
	}
	s.shipping = &domain.ShippingDetails{
		FullName: strings.TrimSpace(form.FullName),
		Email:    strings.TrimSpace(form.Email),
		Address:  strings.TrimSpace(form.Address),
		City:     strings.TrimSpace(form.City),
		ZipCode:  strings.TrimSpace(form.ZipCode),
	}
	snap := s.cart.Snapshot()
	s.frozen = &snap
	s.step = domain.StepReview
	return nil, nil
}

// Back returns from review to shipping for editing. The previously entered
// form values stay in place.
func (s *Session) Back() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != domain.StepReview {
		return fmt.Errorf("back from %s: %w", s.step, domain.ErrInvalidTransition)
	}
	s.step = domain.StepShipping
	return nil
}

// PlaceOrder commits the order: it clears the cart store and advances to
// confirmed as one logical step, and returns the order built from the frozen
// snapshot.
func (s *Session) PlaceOrder() (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.step != domain.StepReview {
		return nil, fmt.Errorf("place order from %s: %w", s.step, domain.ErrInvalidTransition)
	}
	order := &domain.Order{
		ID:         uuid.NewString(),
		PlacedAt:   time.Now().UTC(),
		Shipping:   *s.shipping,
		Lines:      s.frozen.Lines,
		TotalCents: s.frozen.SubtotalCents,
	}
	s.cart.Clear()
	s.step = domain.StepConfirmed
	s.order = order
	return order, nil
}

// Shipping returns the captured form values, present from review onward and
// preserved across the back transition.
func (s *Session) Shipping() *domain.ShippingDetails {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shipping == nil {
		return nil
	}
	d := *s.shipping
	return &d
}

// ReviewSnapshot returns the cart snapshot frozen at the shipping
// submission, if one exists.
func (s *Session) ReviewSnapshot() (domain.CartSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.frozen == nil {
		return domain.CartSnapshot{}, false
	}
	return *s.frozen, true
}

// Order returns the confirmation, present only once the session is confirmed.
func (s *Session) Order() *domain.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.order
}
