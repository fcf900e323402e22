package api

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/medoffice/office-api/internal/core/domain"
	"github.com/medoffice/office-api/internal/core/ports"
)

var (
	adminID     = uuid.MustParse("11111111-1111-4111-8111-111111111111")
	doctorID    = uuid.MustParse("22222222-2222-4222-8222-222222222222")
	receptionID = uuid.MustParse("33333333-3333-4333-8333-333333333333")
	patientID   = uuid.MustParse("44444444-4444-4444-8444-444444444444")
)

// tokenAuthenticator admits one fixed token per role.
type tokenAuthenticator struct{}

var tokenUsers = map[string]*domain.User{
	"admin-token":     {ID: adminID, Email: "admin@example.com", Role: domain.RoleAdmin, IsActive: true},
	"doctor-token":    {ID: doctorID, Email: "doctor@example.com", Role: domain.RoleDoctor, IsActive: true},
	"reception-token": {ID: receptionID, Email: "desk@example.com", Role: domain.RoleReceptionist, IsActive: true},
}

func (tokenAuthenticator) Verify(_ context.Context, token string) (*domain.Identity, error) {
	if token == "" {
		return nil, domain.Unauthenticated("No authentication token provided")
	}
	u, ok := tokenUsers[token]
	if !ok {
		return nil, domain.Unauthenticated("Invalid or expired token")
	}
	return &domain.Identity{ID: u.ID, Email: u.Email}, nil
}

func (tokenAuthenticator) Resolve(_ context.Context, identity *domain.Identity) (*domain.User, error) {
	for _, u := range tokenUsers {
		if u.ID == identity.ID {
			return u, nil
		}
	}
	return nil, domain.Forbidden("Account is deactivated")
}

type stubAuth struct {
	loginFn func(ctx context.Context, email, password string) (*ports.LoginResult, error)
}

func (s *stubAuth) Register(_ context.Context, in ports.RegisterInput) (*domain.User, error) {
	role := domain.DefaultRole
	if in.Role != "" {
		role = domain.Role(in.Role)
	}
	return &domain.User{ID: uuid.New(), Email: in.Email, Role: role, IsActive: true}, nil
}

func (s *stubAuth) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuth) Logout(context.Context, string) error { return nil }

type stubUsers struct{}

func (stubUsers) List(context.Context) ([]*domain.User, error) {
	return []*domain.User{tokenUsers["admin-token"]}, nil
}

func (stubUsers) Get(_ context.Context, id uuid.UUID) (*domain.User, error) {
	for _, u := range tokenUsers {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, domain.NotFound("User not found")
}

func (stubUsers) UpdateProfile(ctx context.Context, p *domain.Principal, _ ports.ProfileUpdate) (*domain.User, error) {
	return stubUsers{}.Get(ctx, p.ID)
}

func (stubUsers) ChangePassword(context.Context, *domain.Principal, string, string) error { return nil }

func (stubUsers) Update(ctx context.Context, id uuid.UUID, _ ports.UserUpdateInput) (*domain.User, error) {
	return stubUsers{}.Get(ctx, id)
}

func (stubUsers) Delete(context.Context, uuid.UUID) error { return nil }

type stubPatients struct {
	mu      sync.Mutex
	created []*domain.Patient
	filter  domain.PatientFilter
}

func (s *stubPatients) Create(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := *p
	out.ID = patientID
	s.created = append(s.created, &out)
	return &out, nil
}

func (s *stubPatients) Get(_ context.Context, id uuid.UUID) (*domain.Patient, error) {
	if id != patientID {
		return nil, domain.NotFound("Patient not found")
	}
	return &domain.Patient{ID: id, FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "1815-12-10", Gender: domain.GenderFemale}, nil
}

func (s *stubPatients) Update(ctx context.Context, id uuid.UUID, _ domain.PatientUpdate) (*domain.Patient, error) {
	return s.Get(ctx, id)
}

func (s *stubPatients) List(_ context.Context, f domain.PatientFilter) (*ports.PatientPage, error) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
	return &ports.PatientPage{Items: []*domain.Patient{}, Page: f.Page, PageSize: f.PageSize, Total: 12, TotalPages: 3}, nil
}

type stubAppointments struct {
	lastRange domain.DateRange
}

func (s *stubAppointments) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	out := *a
	out.ID = uuid.New()
	if out.Status == "" {
		out.Status = domain.AppointmentScheduled
	}
	return &out, nil
}

func (s *stubAppointments) Get(context.Context, uuid.UUID) (*domain.Appointment, error) {
	return nil, domain.NotFound("Appointment not found")
}

func (s *stubAppointments) Update(context.Context, uuid.UUID, domain.AppointmentUpdate) (*domain.Appointment, error) {
	return nil, domain.NotFound("Appointment not found")
}

func (s *stubAppointments) ListByDateRange(_ context.Context, r domain.DateRange) ([]*domain.Appointment, error) {
	s.lastRange = r
	return []*domain.Appointment{}, nil
}

func (s *stubAppointments) ListByDoctor(_ context.Context, _ uuid.UUID, r domain.DateRange) ([]*domain.Appointment, error) {
	s.lastRange = r
	return []*domain.Appointment{}, nil
}

type stubRecords struct{}

func (stubRecords) Create(_ context.Context, r *domain.MedicalRecord) (*domain.MedicalRecord, error) {
	out := *r
	out.ID = uuid.New()
	return &out, nil
}

func (stubRecords) Get(context.Context, uuid.UUID) (*domain.MedicalRecord, error) {
	return nil, domain.NotFound("Medical record not found")
}

func (stubRecords) Update(context.Context, uuid.UUID, domain.MedicalRecordUpdate) (*domain.MedicalRecord, error) {
	return nil, domain.NotFound("Medical record not found")
}

func (stubRecords) ListByPatient(context.Context, uuid.UUID) ([]*domain.MedicalRecord, error) {
	return []*domain.MedicalRecord{}, nil
}

type recordingAudit struct {
	mu     sync.Mutex
	events []domain.AuditEvent
}

func (r *recordingAudit) Enqueue(event domain.AuditEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingAudit) snapshot() []domain.AuditEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.AuditEvent(nil), r.events...)
}
