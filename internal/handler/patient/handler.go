package patient

import (
	"context"

	"github.com/jwalitptl/clinic-cli/internal/handler"
	"github.com/jwalitptl/clinic-cli/internal/model"
)

const ChoiceAdd = 2

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r handler.Registrar) {
	r.Register(ChoiceAdd, "Add Patient", h.Add)
}

func (h *Handler) Add(ctx context.Context, s *handler.Session) error {
	var req model.PatientForm

	f := s.Form()
	AskPatient(f, &req, "Enter number of appointments for the Patient")
	if err := f.Err(); err != nil {
		return err
	}

	if err := s.Gateway.ExecuteUpdate(ctx, req.Insert()); err != nil {
		return err
	}
	s.Added()
	return nil
}

// AskPatient prompts for the full patient field set in insert order.
func AskPatient(f *handler.Form, req *model.PatientForm, countLabel string) {
	f.Ask("Enter Patient ID", &req.ID)
	f.Ask("Enter Patient name", &req.Name)
	f.Ask("Enter Patient gender ("+string(model.GenderMale)+"/"+string(model.GenderFemale)+")", &req.Gender)
	f.Ask("Enter Patient age", &req.Age)
	f.Ask("Enter Patient address", &req.Address)
	f.Ask(countLabel, &req.AppointmentCount)
}
