package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"contract-renewal-be/internal/entity"
	"contract-renewal-be/internal/repository/contract"
	"contract-renewal-be/internal/repository/specification"
	"contract-renewal-be/internal/repository/unitofwork"
)

// In-memory repository fakes. They interpret the concrete
// specification types the services actually use, so service logic runs
// against real filter semantics without a database.

type fakeStore struct {
	agreements []*entity.Agreement
	events     []*entity.RenewalEvent
}

type fakeAgreementRepo struct {
	store *fakeStore
}

func (r *fakeAgreementRepo) Create(_ context.Context, a *entity.Agreement) error {
	cp := *a
	r.store.agreements = append(r.store.agreements, &cp)
	return nil
}

func (r *fakeAgreementRepo) Update(_ context.Context, a *entity.Agreement) error {
	for i, existing := range r.store.agreements {
		if existing.Id == a.Id {
			cp := *a
			r.store.agreements[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeAgreementRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Agreement, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *fakeAgreementRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.Agreement, error) {
	var out []*entity.Agreement
	for _, a := range r.store.agreements {
		if agreementMatches(a, specs) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeAgreementRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	return int64(len(matches)), err
}

func agreementMatches(a *entity.Agreement, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.AutoRenewing:
			if !a.AutoRenews {
				return false
			}
		case specification.AgreementOwnedBy:
			if a.UserId != sp.UserID {
				return false
			}
		case specification.ByID:
			if a.Id != sp.ID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range sp.IDs {
				if a.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

type fakeEventRepo struct {
	store *fakeStore
}

func (r *fakeEventRepo) Create(_ context.Context, e *entity.RenewalEvent) error {
	cp := *e
	r.store.events = append(r.store.events, &cp)
	return nil
}

func (r *fakeEventRepo) CreateBatch(ctx context.Context, evts []*entity.RenewalEvent) error {
	for _, e := range evts {
		if err := r.Create(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeEventRepo) Update(_ context.Context, e *entity.RenewalEvent) error {
	for i, existing := range r.store.events {
		if existing.Id == e.Id {
			cp := *e
			r.store.events[i] = &cp
			return nil
		}
	}
	return nil
}

func (r *fakeEventRepo) UpdateFields(_ context.Context, id uuid.UUID, fields map[string]interface{}) error {
	for _, e := range r.store.events {
		if e.Id != id {
			continue
		}
		for k, v := range fields {
			switch k {
			case "is_done":
				e.IsDone = v.(bool)
			case "is_resolved":
				e.IsResolved = v.(bool)
			case "status":
				e.Status = v.(string)
			case "auto_renews":
				e.AutoRenews = v.(bool)
			case "assigned_to":
				s := v.(string)
				e.AssignedTo = &s
			case "shared_by":
				s := v.(string)
				e.SharedBy = &s
			case "share_token":
				s := v.(string)
				e.ShareToken = &s
			case "last_reminder_sent":
				t := v.(time.Time)
				e.LastReminderSent = &t
			}
		}
		return nil
	}
	return nil
}

func (r *fakeEventRepo) Delete(_ context.Context, id uuid.UUID) error {
	for i, e := range r.store.events {
		if e.Id == id {
			r.store.events = append(r.store.events[:i], r.store.events[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeEventRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RenewalEvent, error) {
	matches, err := r.FindAll(ctx, specs...)
	if err != nil || len(matches) == 0 {
		return nil, err
	}
	return matches[0], nil
}

func (r *fakeEventRepo) FindAll(_ context.Context, specs ...specification.Specification) ([]*entity.RenewalEvent, error) {
	var out []*entity.RenewalEvent
	for _, e := range r.store.events {
		if r.eventMatches(e, specs) {
			cp := *e
			out = append(out, &cp)
		}
	}
	applyEventOrdering(out, specs)
	return out, nil
}

func (r *fakeEventRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	matches, err := r.FindAll(ctx, specs...)
	return int64(len(matches)), err
}

func (r *fakeEventRepo) eventMatches(e *entity.RenewalEvent, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByAgreementID:
			if e.AgreementId != sp.AgreementID {
				return false
			}
		case specification.EventByID:
			if e.Id != sp.ID {
				return false
			}
		case specification.ByShareToken:
			if e.ShareToken == nil || *e.ShareToken != sp.Token {
				return false
			}
		case specification.NotDone:
			if e.IsDone {
				return false
			}
		case specification.NotResolved:
			if e.IsResolved {
				return false
			}
		case specification.EventDateAfter:
			if !e.EventDate.After(sp.After) {
				return false
			}
		case specification.EventOwnedByUser:
			owned := false
			for _, a := range r.store.agreements {
				if a.Id == e.AgreementId && a.UserId == sp.UserID {
					owned = true
					break
				}
			}
			if !owned {
				return false
			}
		}
	}
	return true
}

func applyEventOrdering(evts []*entity.RenewalEvent, specs []specification.Specification) {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.LatestEventFirst:
			sort.Slice(evts, func(i, j int) bool {
				return evts[i].EventDate.After(evts[j].EventDate)
			})
		case specification.OrderBy:
			if sp.Field == "event_date" {
				sort.Slice(evts, func(i, j int) bool {
					if sp.Desc {
						return evts[i].EventDate.After(evts[j].EventDate)
					}
					return evts[i].EventDate.Before(evts[j].EventDate)
				})
			}
		}
	}
}

type fakeUnitOfWork struct {
	store *fakeStore
}

func (u *fakeUnitOfWork) Begin(context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error               { return nil }
func (u *fakeUnitOfWork) Rollback() error             { return nil }

func (u *fakeUnitOfWork) AgreementRepository() contract.AgreementRepository {
	return &fakeAgreementRepo{store: u.store}
}

func (u *fakeUnitOfWork) RenewalEventRepository() contract.RenewalEventRepository {
	return &fakeEventRepo{store: u.store}
}

type fakeFactory struct {
	store *fakeStore
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{store: &fakeStore{}}
}

func (f *fakeFactory) NewUnitOfWork(context.Context) unitofwork.UnitOfWork {
	return &fakeUnitOfWork{store: f.store}
}

type noopLogger struct{}

func (noopLogger) Debug(string, string, map[string]interface{}) {}
func (noopLogger) Info(string, string, map[string]interface{})  {}
func (noopLogger) Warn(string, string, map[string]interface{})  {}
func (noopLogger) Error(string, string, map[string]interface{}) {}
func (noopLogger) Sync() error                                  { return nil }

type capturePublisher struct {
	payloads [][]byte
}

func (p *capturePublisher) Publish(_ context.Context, payload []byte) error {
	p.payloads = append(p.payloads, payload)
	return nil
}
