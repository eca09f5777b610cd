package doctor

import (
	"context"

	"github.com/jwalitptl/clinic-cli/internal/handler"
	"github.com/jwalitptl/clinic-cli/internal/model"
)

const ChoiceAdd = 1

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(r handler.Registrar) {
	r.Register(ChoiceAdd, "Add Doctor", h.Add)
}

func (h *Handler) Add(ctx context.Context, s *handler.Session) error {
	var req model.DoctorForm

	f := s.Form()
	f.Ask("Enter Doctor ID", &req.ID)
	f.Ask("Enter Doctor name", &req.Name)
	f.Ask("Enter Doctor specialty", &req.Specialty)
	f.Ask("Enter Doctor Department ID", &req.DepartmentID)
	if err := f.Err(); err != nil {
		return err
	}

	if err := s.Gateway.ExecuteUpdate(ctx, req.Insert()); err != nil {
		return err
	}
	s.Added()
	return nil
}
