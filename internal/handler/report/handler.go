package report

import (
	"context"

	"github.com/jwalitptl/clinic-cli/internal/handler"
	"github.com/jwalitptl/clinic-cli/internal/model"
)

const (
	ChoiceAppointmentsOfDoctor   = 5
	ChoiceAvailableOfDepartment  = 6
	ChoiceStatusCountsPerDoctor  = 7
	ChoicePatientCountWithStatus = 8
)

const dateFormatHint = "in this format: month/day/year (3/10/2021 or 11/5/2020)"

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r handler.Registrar) {
	r.Register(ChoiceAppointmentsOfDoctor, "List appointments of a given doctor", h.AppointmentsOfDoctor)
	r.Register(ChoiceAvailableOfDepartment, "List all available appointments of a given department", h.AvailableOfDepartment)
	r.Register(ChoiceStatusCountsPerDoctor, "List total number of different types of appointments per doctor in descending order", h.StatusCountsPerDoctor)
	r.Register(ChoicePatientCountWithStatus, "Find total number of patients per doctor with a given status", h.PatientCountWithStatus)
}

// AppointmentsOfDoctor lists a doctor's active and available appointments
// strictly inside a date range.
func (h *Handler) AppointmentsOfDoctor(ctx context.Context, s *handler.Session) error {
	var req model.DoctorAppointmentsFilter

	f := s.Form()
	f.Ask("Enter Doctor ID", &req.DoctorID)
	f.Ask("Enter a left bound date "+dateFormatHint, &req.After)
	f.Ask("Enter a right bound date "+dateFormatHint, &req.Before)
	if err := f.Err(); err != nil {
		return err
	}

	return printResult(ctx, s, req.Query())
}

func (h *Handler) AvailableOfDepartment(ctx context.Context, s *handler.Session) error {
	var req model.DepartmentAvailabilityFilter

	f := s.Form()
	f.Ask("Enter Department name", &req.Department)
	f.Ask("Enter a date "+dateFormatHint, &req.Date)
	if err := f.Err(); err != nil {
		return err
	}

	return printResult(ctx, s, req.Query())
}

func (h *Handler) StatusCountsPerDoctor(ctx context.Context, s *handler.Session) error {
	return printResult(ctx, s, model.StatusCountsPerDoctor())
}

func (h *Handler) PatientCountWithStatus(ctx context.Context, s *handler.Session) error {
	var req model.StatusFilter

	f := s.Form()
	f.Ask("Enter Appointment status (AV, AC, PA, WL)", &req.Status)
	if err := f.Err(); err != nil {
		return err
	}

	return printResult(ctx, s, req.Query())
}

func printResult(ctx context.Context, s *handler.Session, stmt model.Statement) error {
	n, err := s.Gateway.ExecuteQueryAndPrint(ctx, stmt, s.Out)
	if err != nil {
		return err
	}
	s.Total(n)
	return nil
}
