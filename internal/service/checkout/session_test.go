package checkout

import (
	"errors"
	"testing"

	"minishop-storefront/internal/domain"
	"minishop-storefront/internal/service/cart"
)

func validForm() ShippingForm {
	return ShippingForm{
		FullName: "Sara Ahmed",
		Email:    "sara@example.com",
		Address:  "12 Nile Street, Apt 4",
		City:     "Cairo",
		ZipCode:  "11511",
	}
}

func stockedCart(t *testing.T) *cart.Store {
	t.Helper()
	s := cart.NewStore()
	a := domain.Product{ID: "a", NameEN: "A", NameAR: "أ", Category: domain.CategoryApparel, PriceCents: 1000}
	b := domain.Product{ID: "b", NameEN: "B", NameAR: "ب", Category: domain.CategoryHome, PriceCents: 2500, OriginalPriceCents: 3000}
	s.Add(a)
	s.Add(a)
	s.Add(b)
	return s
}

func TestNewSession_RefusesEmptyCart(t *testing.T) {
	_, err := NewSession(cart.NewStore())
	if !errors.Is(err, domain.ErrEmptyCart) {
		t.Fatalf("expected empty cart refusal, got %v", err)
	}
}

func TestSubmitShipping_FieldErrorsKeepShippingStep(t *testing.T) {
	sess, err := NewSession(stockedCart(t))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	form := validForm()
	form.ZipCode = "1151" // four digits
	fieldErrs, err := sess.SubmitShipping(form)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fieldErrs == nil || fieldErrs["zipCode"] == "" {
		t.Fatalf("expected zipCode field error, got %v", fieldErrs)
	}
	if len(fieldErrs) != 1 {
		t.Fatalf("errors must be field-scoped, got %v", fieldErrs)
	}
	if sess.Step() != domain.StepShipping {
		t.Fatalf("state must remain shipping, got %s", sess.Step())
	}
}

func TestValidateShipping_AllFieldsRequired(t *testing.T) {
	errs := ValidateShipping(ShippingForm{})
	for _, field := range []string{"fullName", "email", "address", "city", "zipCode"} {
		if errs[field] == "" {
			t.Fatalf("expected error for %s, got %v", field, errs)
		}
	}
}

func TestValidateShipping_EmailSyntax(t *testing.T) {
	form := validForm()
	for _, bad := range []string{"not-an-email", "a@", "Sara <sara@example.com>", " "} {
		form.Email = bad
		if errs := ValidateShipping(form); errs["email"] == "" {
			t.Fatalf("expected email error for %q", bad)
		}
	}
	form.Email = "sara@example.com"
	if errs := ValidateShipping(form); errs != nil {
		t.Fatalf("expected valid form, got %v", errs)
	}
}

func TestSubmitShipping_FreezesReviewPricing(t *testing.T) {
	store := stockedCart(t)
	sess, err := NewSession(store)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if fieldErrs, err := sess.SubmitShipping(validForm()); err != nil || fieldErrs != nil {
		t.Fatalf("valid submission rejected: %v %v", fieldErrs, err)
	}
	if sess.Step() != domain.StepReview {
		t.Fatalf("expected review, got %s", sess.Step())
	}

	snap, ok := sess.ReviewSnapshot()
	if !ok || snap.SubtotalCents != 4500 {
		t.Fatalf("expected frozen subtotal 4500, got %+v", snap)
	}

	// Another surface mutates the cart during review.
	store.Add(domain.Product{ID: "c", NameEN: "C", NameAR: "ج", Category: domain.CategoryHome, PriceCents: 99900})

	snap, _ = sess.ReviewSnapshot()
	if snap.SubtotalCents != 4500 {
		t.Fatalf("review pricing must not track live cart, got %d", snap.SubtotalCents)
	}
}

func TestBack_PreservesShippingValues(t *testing.T) {
	sess, _ := NewSession(stockedCart(t))
	sess.SubmitShipping(validForm())

	if err := sess.Back(); err != nil {
		t.Fatalf("Back: %v", err)
	}
	if sess.Step() != domain.StepShipping {
		t.Fatalf("expected shipping, got %s", sess.Step())
	}
	if d := sess.Shipping(); d == nil || d.FullName != "Sara Ahmed" {
		t.Fatalf("shipping values must survive the back transition, got %+v", d)
	}
}

func TestBack_OnlyFromReview(t *testing.T) {
	sess, _ := NewSession(stockedCart(t))
	if err := sess.Back(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestPlaceOrder_ClearsCartAndConfirms(t *testing.T) {
	store := stockedCart(t)
	sess, _ := NewSession(store)
	sess.SubmitShipping(validForm())

	order, err := sess.PlaceOrder()
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if sess.Step() != domain.StepConfirmed {
		t.Fatalf("expected confirmed, got %s", sess.Step())
	}
	if len(store.Lines()) != 0 {
		t.Fatalf("cart must be cleared on order placement")
	}
	if order.ID == "" || order.TotalCents != 4500 || len(order.Lines) != 2 {
		t.Fatalf("unexpected order %+v", order)
	}
	if order.Shipping.City != "Cairo" {
		t.Fatalf("order must carry shipping details, got %+v", order.Shipping)
	}
}

func TestConfirmed_IsTerminal(t *testing.T) {
	sess, _ := NewSession(stockedCart(t))
	sess.SubmitShipping(validForm())
	if _, err := sess.PlaceOrder(); err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if err := sess.Back(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("no transition back from confirmed, got %v", err)
	}
	if _, err := sess.PlaceOrder(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("placing twice must fail, got %v", err)
	}
	if _, err := sess.SubmitShipping(validForm()); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("submitting after confirmation must fail, got %v", err)
	}
}

func TestPlaceOrder_OnlyFromReview(t *testing.T) {
	sess, _ := NewSession(stockedCart(t))
	if _, err := sess.PlaceOrder(); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected invalid transition, got %v", err)
	}
}

func TestCheckout_EndToEnd(t *testing.T) {
	store := cart.NewStore()
	a := domain.Product{ID: "A", NameEN: "A", NameAR: "أ", Category: domain.CategoryApparel, PriceCents: 1000}
	b := domain.Product{ID: "B", NameEN: "B", NameAR: "ب", Category: domain.CategoryHome, PriceCents: 2500, OriginalPriceCents: 3000}
	store.Add(a)
	store.Add(a)
	store.Add(b)

	if store.SubtotalCents() != 4500 {
		t.Fatalf("expected subtotal 4500, got %d", store.SubtotalCents())
	}

	sess, err := NewSession(store)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if fieldErrs, err := sess.SubmitShipping(validForm()); err != nil || fieldErrs != nil {
		t.Fatalf("shipping rejected: %v %v", fieldErrs, err)
	}
	order, err := sess.PlaceOrder()
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if order.TotalCents != 4500 {
		t.Fatalf("expected order total 4500, got %d", order.TotalCents)
	}
	if sess.Step() != domain.StepConfirmed || len(store.Lines()) != 0 {
		t.Fatalf("expected confirmed session and empty cart")
	}
}
