package appointment

import (
	"context"
	"strings"

	"github.com/jwalitptl/clinic-cli/internal/handler"
	"github.com/jwalitptl/clinic-cli/internal/handler/patient"
	"github.com/jwalitptl/clinic-cli/internal/model"
)

const (
	ChoiceAdd  = 3
	ChoiceMake = 4
)

const timeFormatHint = "in this format 'hour:minutes' (ie. 8:00 or 14:30)"

func statusHint() string {
	names := make([]string, len(model.AppointmentStatuses))
	for i, st := range model.AppointmentStatuses {
		names[i] = string(st)
	}
	return "(" + strings.Join(names, ", ") + ")"
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r handler.Registrar) {
	r.Register(ChoiceAdd, "Add Appointment", h.Add)
	r.Register(ChoiceMake, "Make an Appointment", h.Make)
}

func (h *Handler) Add(ctx context.Context, s *handler.Session) error {
	var req model.AppointmentForm

	f := s.Form()
	f.Ask("Enter Appointment ID", &req.ID)
	f.Ask("Enter Appointment month", &req.Month)
	f.Ask("Enter Appointment day", &req.Day)
	f.Ask("Enter Appointment year", &req.Year)
	f.Ask("Enter Appointment starting time "+timeFormatHint, &req.StartTime)
	f.Ask("Enter Appointment ending time "+timeFormatHint, &req.EndTime)
	f.Ask("Enter Appointment status "+statusHint(), &req.Status)
	if err := f.Err(); err != nil {
		return err
	}

	if err := s.Gateway.ExecuteUpdate(ctx, req.Insert()); err != nil {
		return err
	}
	s.Added()
	return nil
}

// Make books a doctor's available appointment for a new patient. Every
// field is read first so the input stays aligned with the menu; availability
// is then checked in the same transaction as the insert.
func (h *Handler) Make(ctx context.Context, s *handler.Session) error {
	var req model.BookingForm

	f := s.Form()
	f.Ask("Enter Doctor ID", &req.DoctorID)
	f.Ask("Enter Appointment ID", &req.AppointmentID)
	f.Say("\tEnter the patient taking this appointment")
	patient.AskPatient(f, &req.Patient, "Enter number of appointments")
	if err := f.Err(); err != nil {
		return err
	}

	inserted, err := s.Gateway.InsertIfExists(ctx, req.Guard(), req.Insert())
	if err != nil {
		return err
	}
	if !inserted {
		s.Prompt.Println(handler.MsgNotAvailable)
		return nil
	}
	s.Added()
	return nil
}
