package appointment

import (
	"context"
	"testing"

	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

func newUpdateUC(repo *memAppointments) *UpdateAppointment {
	return NewUpdateAppointment(repo, servicesWith(haircut), fixedClock{now: testNow}, &recordedAudit{})
}

func TestUpdateAppointment(t *testing.T) {
	seed := func(t *testing.T, repo *memAppointments) *models.Appointment {
		t.Helper()
		uc, _ := newCreateUC(repo)
		ap, err := uc.Execute(context.Background(), bookingAt(tenOClock))
		if err != nil {
			t.Fatalf("seed booking failed: %v", err)
		}
		return ap
	}

	t.Run("keeping the same slot does not conflict with itself", func(t *testing.T) {
		repo := newMemAppointments()
		ap := seed(t, repo)

		uc := newUpdateUC(repo)

		in := bookingAt(tenOClock)
		in.ClientName = "Alice Updated"

		got, err := uc.Execute(context.Background(), ap.ID, in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ClientName != "Alice Updated" {
			t.Errorf("ClientName = %q, want %q", got.ClientName, "Alice Updated")
		}
	})

	t.Run("moving onto another booking conflicts", func(t *testing.T) {
		repo := newMemAppointments()
		first := seed(t, repo)

		createUC, _ := newCreateUC(repo)
		if _, err := createUC.Execute(context.Background(), bookingAt(elevenSharp)); err != nil {
			t.Fatalf("second seed failed: %v", err)
		}

		uc := newUpdateUC(repo)

		_, err := uc.Execute(context.Background(), first.ID, bookingAt(elevenSharp))
		if !httperr.IsBusiness(err, httperr.CodeDoubleBooking) {
			t.Fatalf("got %v, want %s", err, httperr.CodeDoubleBooking)
		}
	})

	t.Run("unknown appointment", func(t *testing.T) {
		repo := newMemAppointments()
		uc := newUpdateUC(repo)

		_, err := uc.Execute(context.Background(), 99, bookingAt(tenOClock))
		if !httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			t.Fatalf("got %v, want %s", err, httperr.CodeAppointmentNotFound)
		}
	})

	t.Run("update is validated like a create", func(t *testing.T) {
		repo := newMemAppointments()
		ap := seed(t, repo)

		uc := newUpdateUC(repo)

		in := bookingAt(tenOClock)
		in.ClientName = ""

		_, err := uc.Execute(context.Background(), ap.ID, in)
		if !httperr.IsBusiness(err, httperr.CodeValidation) {
			t.Fatalf("got %v, want %s", err, httperr.CodeValidation)
		}
	})
}

func TestDeleteAppointment(t *testing.T) {
	t.Run("delete existing", func(t *testing.T) {
		repo := newMemAppointments()
		createUC, _ := newCreateUC(repo)
		ap, err := createUC.Execute(context.Background(), bookingAt(tenOClock))
		if err != nil {
			t.Fatalf("seed booking failed: %v", err)
		}

		uc := NewDeleteAppointment(repo, &recordedAudit{})
		if err := uc.Execute(context.Background(), ap.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if n, _ := repo.CountForService(context.Background(), haircut.ID); n != 0 {
			t.Errorf("appointments stored = %d, want 0", n)
		}
	})

	t.Run("delete missing", func(t *testing.T) {
		uc := NewDeleteAppointment(newMemAppointments(), &recordedAudit{})
		err := uc.Execute(context.Background(), 42)
		if !httperr.IsBusiness(err, httperr.CodeAppointmentNotFound) {
			t.Fatalf("got %v, want %s", err, httperr.CodeAppointmentNotFound)
		}
	})

	t.Run("deleted slot can be rebooked", func(t *testing.T) {
		repo := newMemAppointments()
		createUC, _ := newCreateUC(repo)

		ap, err := createUC.Execute(context.Background(), bookingAt(tenOClock))
		if err != nil {
			t.Fatalf("seed booking failed: %v", err)
		}

		if err := NewDeleteAppointment(repo, &recordedAudit{}).Execute(context.Background(), ap.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}

		if _, err := createUC.Execute(context.Background(), bookingAt(tenOClock)); err != nil {
			t.Fatalf("rebooking freed slot failed: %v", err)
		}
	})
}
