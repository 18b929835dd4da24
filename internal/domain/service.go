// Package domain defines the business logic for the signup service.
package domain

import "context"

// ActivityRepository captures roster storage operations. Get returns nil
// without an error when the activity does not exist.
type ActivityRepository interface {
	List(ctx context.Context) ([]Activity, error)
	Get(ctx context.Context, name string) (*Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ValidationRules toggles optional roster checks. Both default off: duplicate
// and over-capacity signups are accepted unless a deployment opts in.
type ValidationRules struct {
	RejectDuplicates bool
	EnforceCapacity  bool
}

// Service orchestrates signup workflows over the activity registry.
type Service struct {
	repo  ActivityRepository
	rules ValidationRules
}

// ServiceOption customizes a Service.
type ServiceOption func(*Service)

// WithValidationRules enables optional signup checks.
func WithValidationRules(rules ValidationRules) ServiceOption {
	return func(s *Service) {
		s.rules = rules
	}
}

// NewService constructs a Service.
func NewService(repo ActivityRepository, opts ...ServiceOption) *Service {
	svc := &Service{repo: repo}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// ListActivities returns every activity with its current roster.
func (s *Service) ListActivities(ctx context.Context) ([]Activity, error) {
	return s.repo.List(ctx)
}

// Signup appends the email to the activity's roster. The rule checks run on a
// snapshot; the window between check and append is accepted for this
// single-instance, low-traffic deployment.
func (s *Service) Signup(ctx context.Context, name, email string) error {
	activity, err := s.repo.Get(ctx, name)
	if err != nil {
		return err
	}
	if activity == nil {
		return ErrActivityNotFound
	}

	if s.rules.RejectDuplicates && activity.IsRegistered(email) {
		return ErrAlreadyRegistered
	}
	if s.rules.EnforceCapacity && len(activity.Participants) >= activity.MaxParticipants {
		return ErrActivityFull
	}

	return s.repo.AddParticipant(ctx, name, email)
}

// Unregister removes the email from the activity's roster.
func (s *Service) Unregister(ctx context.Context, name, email string) error {
	return s.repo.RemoveParticipant(ctx, name, email)
}
