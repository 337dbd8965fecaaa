package cart

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"andicot_proforma/internal/domain/pricing"

	"github.com/shopspring/decimal"
)

var catalog = Services{
	{ID: "cctv-1", Title: "CCTV con IA", UnitPrice: decimal.NewFromInt(150)},
	{ID: "acceso", Title: "Control de Acceso", UnitPrice: decimal.NewFromInt(200)},
	{ID: "sin-precio", Title: "Consultoría", UnitPrice: decimal.Zero},
}

type fakeTimer struct {
	fn      func()
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	was := !f.stopped
	f.stopped = true
	return was
}

type fakeClock struct {
	timers []*fakeTimer
	delays []time.Duration
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Stopper {
	t := &fakeTimer{fn: f}
	c.timers = append(c.timers, t)
	c.delays = append(c.delays, d)
	return t
}

// fire runs the i-th scheduled callback unless it was stopped.
func (c *fakeClock) fire(i int) {
	if !c.timers[i].stopped {
		c.timers[i].fn()
	}
}

func sequentialUIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("uid-%d", n)
	}
}

func newTestSession(clock *fakeClock) *Session {
	return NewSession(
		WithUIDGenerator(sequentialUIDs()),
		WithNotice(NewNotice(DefaultNoticeDelay, clock.AfterFunc)),
	)
}

func TestSession_InitialState(t *testing.T) {
	s := NewSession()
	snap := s.Snapshot()
	if snap.SelectedServiceID != "" || snap.PendingQuantity != 1 || len(snap.Items) != 0 || snap.ItemAddedVisible {
		t.Fatalf("unexpected initial state: %+v", snap)
	}
}

func TestSession_SelectService(t *testing.T) {
	s := newTestSession(&fakeClock{})

	if err := s.SelectService(catalog, "cctv-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.SelectService(catalog, "nope"); !errors.Is(err, ErrUnknownService) {
		t.Fatalf("expected ErrUnknownService, got %v", err)
	}
	if got := s.Snapshot().SelectedServiceID; got != "cctv-1" {
		t.Fatalf("rejected selection must keep the previous one, got %q", got)
	}

	s.SetQuantity(3)
	if err := s.SelectService(catalog, " "); err != nil {
		t.Fatalf("clearing should not fail: %v", err)
	}
	snap := s.Snapshot()
	if snap.SelectedServiceID != "" {
		t.Fatalf("expected cleared selection")
	}
	if snap.PendingQuantity != 3 {
		t.Fatalf("selection must not reset quantity, got %d", snap.PendingQuantity)
	}
}

func TestSession_QuantityFloor(t *testing.T) {
	for _, n := range []int{0, -5} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			s := newTestSession(&fakeClock{})
			_ = s.SelectService(catalog, "cctv-1")
			if got := s.SetQuantity(n); got != 1 {
				t.Fatalf("expected clamp to 1, got %d", got)
			}
			li, err := s.ConfirmAddition(catalog)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if li.Quantity != 1 {
				t.Fatalf("expected quantity 1, got %d", li.Quantity)
			}
		})
	}

	s := newTestSession(&fakeClock{})
	if got := s.Decrement(); got != 1 {
		t.Fatalf("decrement must floor at 1, got %d", got)
	}
	s.Increment()
	s.Increment()
	if got := s.Decrement(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := s.SetQuantity(10000); got != 10000 {
		t.Fatalf("no upper cap expected, got %d", got)
	}
}

func TestSession_ConfirmAddition(t *testing.T) {
	t.Run("no selection", func(t *testing.T) {
		s := newTestSession(&fakeClock{})
		s.SetQuantity(4)
		if _, err := s.ConfirmAddition(catalog); !errors.Is(err, ErrNoServiceSelected) {
			t.Fatalf("expected ErrNoServiceSelected, got %v", err)
		}
		snap := s.Snapshot()
		if len(snap.Items) != 0 || snap.PendingQuantity != 4 || snap.ItemAddedVisible {
			t.Fatalf("rejected addition must not change state: %+v", snap)
		}
	})

	t.Run("service removed from catalog", func(t *testing.T) {
		s := newTestSession(&fakeClock{})
		_ = s.SelectService(catalog, "cctv-1")
		if _, err := s.ConfirmAddition(Services{}); !errors.Is(err, ErrUnknownService) {
			t.Fatalf("expected ErrUnknownService, got %v", err)
		}
		if len(s.Items()) != 0 {
			t.Fatalf("expected no items")
		}
	})

	t.Run("success", func(t *testing.T) {
		clock := &fakeClock{}
		s := newTestSession(clock)
		_ = s.SelectService(catalog, "cctv-1")
		s.SetQuantity(2)

		li, err := s.ConfirmAddition(catalog)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if li.UID != "uid-1" || li.ServiceID != "cctv-1" || li.Title != "CCTV con IA" || li.Quantity != 2 {
			t.Fatalf("unexpected line item: %+v", li)
		}
		if !li.UnitPrice.Equal(decimal.NewFromInt(150)) {
			t.Fatalf("unexpected unit price %s", li.UnitPrice)
		}

		snap := s.Snapshot()
		if snap.PendingQuantity != 1 {
			t.Fatalf("pending quantity must reset to 1, got %d", snap.PendingQuantity)
		}
		if snap.SelectedServiceID != "cctv-1" {
			t.Fatalf("selection is kept after addition")
		}
		if !snap.ItemAddedVisible {
			t.Fatalf("expected notice to be visible")
		}
		if clock.delays[0] != DefaultNoticeDelay {
			t.Fatalf("unexpected notice delay %v", clock.delays[0])
		}
	})

	t.Run("zero price is accepted", func(t *testing.T) {
		s := newTestSession(&fakeClock{})
		_ = s.SelectService(catalog, "sin-precio")
		li, err := s.ConfirmAddition(catalog)
		if err != nil || !li.UnitPrice.IsZero() {
			t.Fatalf("expected zero-priced item, got %+v err=%v", li, err)
		}
	})
}

func TestSession_RemoveItem(t *testing.T) {
	s := newTestSession(&fakeClock{})
	_ = s.SelectService(catalog, "cctv-1")
	first, _ := s.ConfirmAddition(catalog)
	_ = s.SelectService(catalog, "acceso")
	second, _ := s.ConfirmAddition(catalog)

	if err := s.RemoveItem(first.UID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := s.Items()

	if err := s.RemoveItem(first.UID); !errors.Is(err, ErrLineItemNotFound) {
		t.Fatalf("expected ErrLineItemNotFound, got %v", err)
	}
	again := s.Items()
	if len(after) != 1 || len(again) != 1 || again[0].UID != second.UID {
		t.Fatalf("second removal must be a no-op: %+v / %+v", after, again)
	}
}

func TestSession_ItemsAreCopies(t *testing.T) {
	s := newTestSession(&fakeClock{})
	_ = s.SelectService(catalog, "cctv-1")
	_, _ = s.ConfirmAddition(catalog)

	items := s.Items()
	items[0].Quantity = 99
	if s.Items()[0].Quantity != 1 {
		t.Fatalf("callers must not be able to mutate the session")
	}
}

func TestSession_EndToEndTotals(t *testing.T) {
	s := newTestSession(&fakeClock{})
	if err := s.SelectService(catalog, "cctv-1"); err != nil {
		t.Fatal(err)
	}
	s.SetQuantity(2)
	if _, err := s.ConfirmAddition(catalog); err != nil {
		t.Fatal(err)
	}

	totals := s.Totals(pricing.ParseRates("15", "10"))
	want := map[string]string{
		"subtotal": "300.00", "discount": "30.00", "base": "270.00", "tax": "40.50", "total": "310.50",
	}
	got := map[string]string{
		"subtotal": pricing.Money(totals.Subtotal),
		"discount": pricing.Money(totals.DiscountValue),
		"base":     pricing.Money(totals.TaxableBase),
		"tax":      pricing.Money(totals.TaxValue),
		"total":    pricing.Money(totals.Total),
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("%s = %s, want %s", k, got[k], v)
		}
	}
}

func TestNotice_Supersedes(t *testing.T) {
	clock := &fakeClock{}
	s := newTestSession(clock)
	_ = s.SelectService(catalog, "cctv-1")

	_, _ = s.ConfirmAddition(catalog)
	_, _ = s.ConfirmAddition(catalog)

	if !clock.timers[0].stopped {
		t.Fatalf("first timer should be stopped by the second addition")
	}
	// Even if the first callback already started, it must not hide the newer flash.
	clock.timers[0].fn()
	if !s.Snapshot().ItemAddedVisible {
		t.Fatalf("stale timer hid the notice")
	}

	clock.fire(1)
	if s.Snapshot().ItemAddedVisible {
		t.Fatalf("expected notice hidden after its own delay")
	}
}

func TestSession_CloseCancelsNotice(t *testing.T) {
	clock := &fakeClock{}
	s := newTestSession(clock)
	_ = s.SelectService(catalog, "cctv-1")
	_, _ = s.ConfirmAddition(catalog)

	s.Close()
	if !clock.timers[0].stopped {
		t.Fatalf("expected timer to be stopped")
	}
	if s.Snapshot().ItemAddedVisible {
		t.Fatalf("expected notice hidden on close")
	}
}

func TestNotice_RealTimer(t *testing.T) {
	n := NewNotice(10*time.Millisecond, nil)
	n.Flash()
	if !n.Visible() {
		t.Fatalf("expected visible right after flash")
	}
	deadline := time.Now().Add(2 * time.Second)
	for n.Visible() && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if n.Visible() {
		t.Fatalf("notice never expired")
	}
}

var _ Catalog = Services(nil)
