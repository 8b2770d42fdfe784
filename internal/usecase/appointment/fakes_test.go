package appointment

import (
	"context"
	"time"

	"github.com/phukrit7171/appointment-booking-api/internal/audit"
	"github.com/phukrit7171/appointment-booking-api/internal/httperr"
	"github.com/phukrit7171/appointment-booking-api/internal/models"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

type recordedAudit struct {
	events []audit.Event
}

func (r *recordedAudit) Dispatch(ev audit.Event) {
	r.events = append(r.events, ev)
}

// memAppointments is an in-memory AppointmentRepository with real range
// query semantics, so conflict detection is exercised end to end.
type memAppointments struct {
	nextID uint
	items  []models.Appointment
}

func newMemAppointments() *memAppointments {
	return &memAppointments{nextID: 1}
}

func (m *memAppointments) GetByID(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			ap := m.items[i]
			return &ap, nil
		}
	}
	return nil, httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
}

func (m *memAppointments) List(context.Context) ([]models.Appointment, error) {
	return m.items, nil
}

func (m *memAppointments) Create(_ context.Context, ap *models.Appointment) error {
	ap.ID = m.nextID
	m.nextID++
	m.items = append(m.items, *ap)
	return nil
}

func (m *memAppointments) Update(_ context.Context, ap *models.Appointment) error {
	for i := range m.items {
		if m.items[i].ID == ap.ID {
			m.items[i] = *ap
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
}

func (m *memAppointments) Delete(_ context.Context, id uint) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return httperr.ErrBusiness(httperr.CodeAppointmentNotFound)
}

func (m *memAppointments) FindByServiceInRange(
	_ context.Context,
	serviceID uint,
	start time.Time,
	end time.Time,
	excludeID *uint,
) ([]models.Appointment, error) {

	var out []models.Appointment
	for _, ap := range m.items {
		if ap.ServiceID != serviceID {
			continue
		}
		if excludeID != nil && ap.ID == *excludeID {
			continue
		}
		at := ap.AppointmentTime.Time
		if at.Before(start) || !at.Before(end) {
			continue
		}
		out = append(out, ap)
	}
	return out, nil
}

func (m *memAppointments) CountForService(_ context.Context, serviceID uint) (int64, error) {
	var n int64
	for _, ap := range m.items {
		if ap.ServiceID == serviceID {
			n++
		}
	}
	return n, nil
}

type fakeServices struct {
	getFn    func(ctx context.Context, id uint) (*models.Service, error)
	existsFn func(ctx context.Context, id uint) (bool, error)
}

func (f *fakeServices) GetByID(ctx context.Context, id uint) (*models.Service, error) {
	if f.getFn == nil {
		panic("GetByID not configured")
	}
	return f.getFn(ctx, id)
}

func (f *fakeServices) Exists(ctx context.Context, id uint) (bool, error) {
	if f.existsFn == nil {
		panic("Exists not configured")
	}
	return f.existsFn(ctx, id)
}

func (f *fakeServices) List(context.Context) ([]models.Service, error) {
	panic("List not configured")
}

func (f *fakeServices) Create(context.Context, *models.Service) error {
	panic("Create not configured")
}

func (f *fakeServices) Update(context.Context, *models.Service) error {
	panic("Update not configured")
}

func (f *fakeServices) Delete(context.Context, uint) error {
	panic("Delete not configured")
}

func servicesWith(svc *models.Service) *fakeServices {
	return &fakeServices{
		getFn: func(_ context.Context, id uint) (*models.Service, error) {
			if id == svc.ID {
				s := *svc
				return &s, nil
			}
			return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound)
		},
		existsFn: func(_ context.Context, id uint) (bool, error) {
			return id == svc.ID, nil
		},
	}
}
