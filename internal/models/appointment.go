package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`

	AppointmentTime LocalTime `gorm:"not null;index" json:"appointment_time"`

	ServiceID uint    `gorm:"not null;index" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EndTime is derived, never stored: start plus the referenced service's
// default duration.
func (a *Appointment) EndTime(svc *Service) time.Time {
	return a.AppointmentTime.Add(svc.Duration())
}
