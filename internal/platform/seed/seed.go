// Package seed loads the demo dataset used for development and UI work. The
// data mirrors the clinic's original sample set; everything lives in memory
// and disappears when the process exits.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/raul0r/Gestor-Medico/internal/domain/catalog"
	"github.com/raul0r/Gestor-Medico/internal/domain/patient"
	"github.com/raul0r/Gestor-Medico/internal/domain/scheduling"
)

type Repos struct {
	Patients     patient.Repository
	Services     catalog.ServiceRepository
	Appointments scheduling.Repository
}

// Load populates the repositories with the demo clinic: three patients, three
// services and four appointments spread over today, one of them already paid
// by card.
func Load(ctx context.Context, r Repos, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}

	carlos := &patient.Patient{
		Name:  "Carlos Vega",
		Phone: "55-1234-5678",
		Email: "carlos.vega@email.com",
		Demographics: patient.Demographics{
			DateOfBirth: time.Date(1985, 5, 20, 0, 0, 0, 0, loc),
			Gender:      "Male",
		},
		Notes: []patient.ConsultationNote{{
			ID:        uuid.New(),
			CreatedAt: time.Date(2023, 10, 15, 10, 30, 0, 0, time.UTC),
			Content: "Subjective: Patient reports mild chest pain after exercise.\n" +
				"Objective: Blood pressure 130/85. EKG normal.\n" +
				"Assessment: Suspected stable angina.\n" +
				"Plan: Prescribe nitroglycerin, schedule stress test.",
		}},
		Files: []patient.File{{
			ID:         uuid.New(),
			Name:       "lab_results_oct23.pdf",
			URL:        "#",
			UploadedAt: time.Date(2023, 10, 15, 11, 0, 0, 0, time.UTC),
		}},
	}
	sofia := &patient.Patient{
		Name:  "Sofia Reyes",
		Phone: "55-8765-4321",
		Email: "sofia.reyes@email.com",
		Demographics: patient.Demographics{
			DateOfBirth: time.Date(1992, 11, 30, 0, 0, 0, 0, loc),
			Gender:      "Female",
		},
	}
	roberto := &patient.Patient{
		Name:  "Roberto Fernandez",
		Phone: "55-5555-5555",
		Email: "roberto.f@email.com",
		Demographics: patient.Demographics{
			DateOfBirth: time.Date(1978, 1, 12, 0, 0, 0, 0, loc),
			Gender:      "Male",
		},
	}
	for _, p := range []*patient.Patient{carlos, sofia, roberto} {
		if err := r.Patients.Create(ctx, p); err != nil {
			return fmt.Errorf("seed patient %s: %w", p.Name, err)
		}
	}

	general := &catalog.Service{Name: "Consulta General", Price: 800, DurationMinutes: 45}
	seguimiento := &catalog.Service{Name: "Consulta de Seguimiento", Price: 500, DurationMinutes: 30}
	ecg := &catalog.Service{Name: "Electrocardiograma", Price: 1200, DurationMinutes: 45}
	for _, s := range []*catalog.Service{general, seguimiento, ecg} {
		if err := r.Services.Create(ctx, s); err != nil {
			return fmt.Errorf("seed service %s: %w", s.Name, err)
		}
	}

	todayAt := func(hour, min int) time.Time {
		now := time.Now().In(loc)
		return time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, loc)
	}

	appointments := []*scheduling.Appointment{
		{
			PatientID: carlos.ID,
			ServiceID: general.ID,
			Start:     todayAt(9, 0),
			Status:    scheduling.StatusCompleted,
			Payment: &scheduling.Payment{
				Method: scheduling.PaymentCard,
				Amount: general.Price,
				Date:   todayAt(9, 45),
			},
		},
		{
			PatientID: sofia.ID,
			ServiceID: seguimiento.ID,
			Start:     todayAt(10, 0),
			Status:    scheduling.StatusScheduled,
		},
		{
			PatientID: roberto.ID,
			ServiceID: general.ID,
			Start:     todayAt(11, 0),
			Status:    scheduling.StatusConfirmed,
		},
		{
			PatientID: carlos.ID,
			ServiceID: ecg.ID,
			Start:     todayAt(12, 0),
			Status:    scheduling.StatusScheduled,
		},
	}
	services := map[uuid.UUID]*catalog.Service{
		general.ID:     general,
		seguimiento.ID: seguimiento,
		ecg.ID:         ecg,
	}
	for _, a := range appointments {
		a.End = a.Start.Add(services[a.ServiceID].EffectiveDuration())
		if err := r.Appointments.Create(ctx, a); err != nil {
			return fmt.Errorf("seed appointment at %s: %w", a.Start, err)
		}
	}
	return nil
}
