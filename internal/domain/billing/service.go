package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/raul0r/Gestor-Medico/internal/domain/catalog"
	"github.com/raul0r/Gestor-Medico/internal/domain/scheduling"
)

// Service is the billing reconciliation engine: it registers payments against
// appointments and aggregates a day's takings into the cash report.
type Service struct {
	appointments scheduling.Repository
	catalog      catalog.ServiceRepository
	loc          *time.Location
}

func NewService(appointments scheduling.Repository, cat catalog.ServiceRepository, loc *time.Location) *Service {
	if loc == nil {
		loc = time.Local
	}
	return &Service{appointments: appointments, catalog: cat, loc: loc}
}

// RegisterPayment marks the appointment Completed and attaches the payment.
// The amount is taken from the caller as-is; it is not checked against the
// catalog price. Registering again replaces the previous payment and the
// second amount becomes canonical.
func (s *Service) RegisterPayment(ctx context.Context, appointmentID uuid.UUID, method scheduling.PaymentMethod, amount float64) (*scheduling.Appointment, error) {
	if !scheduling.ValidPaymentMethod(method) {
		return nil, fmt.Errorf("invalid payment method: %s", method)
	}
	if amount < 0 {
		return nil, fmt.Errorf("amount must not be negative")
	}

	a, err := s.appointments.GetByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	a.Status = scheduling.StatusCompleted
	a.Payment = &scheduling.Payment{
		Method: method,
		Amount: amount,
		Date:   time.Now(),
	}
	if err := s.appointments.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// DailyCashReport aggregates the day's registered payments. The day filter is
// the same calendar-day rule the agenda uses. Unpaid appointments are
// reported as pending unless cancelled; their pending amount is the catalog
// price at report time.
func (s *Service) DailyCashReport(ctx context.Context, day time.Time) (*CashReport, error) {
	all, err := s.appointments.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &CashReport{Date: day.In(s.loc).Format("2006-01-02")}
	for _, a := range all {
		if !scheduling.SameDay(a.Start, day, s.loc) {
			continue
		}
		if a.Payment != nil {
			report.Total += a.Payment.Amount
			switch a.Payment.Method {
			case scheduling.PaymentCard:
				report.Card += a.Payment.Amount
			default:
				report.Cash += a.Payment.Amount
			}
			continue
		}
		if a.Status == scheduling.StatusCancelled {
			continue
		}
		report.PendingCount++
		if svc, err := s.catalog.GetByID(ctx, a.ServiceID); err == nil {
			report.PendingAmount += svc.Price
		}
	}
	return report, nil
}
