package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-renewal-be/internal/dto"
	"contract-renewal-be/internal/entity"
	"contract-renewal-be/pkg/renewal"
)

type fakeMailer struct {
	reminders []string
	invites   []string
	failNext  bool
}

func (m *fakeMailer) SendEventReminder(toEmail, _, _ string, _ time.Time, _ int, _ string) error {
	if m.failNext {
		return assert.AnError
	}
	m.reminders = append(m.reminders, toEmail)
	return nil
}

func (m *fakeMailer) SendShareInvite(toEmail, _, _, _, _ string, _ []string, _, _ string) error {
	if m.failNext {
		return assert.AnError
	}
	m.invites = append(m.invites, toEmail)
	return nil
}

type fakeStorage struct {
	objects map[string][]byte
}

func (s *fakeStorage) Download(_ context.Context, name string) ([]byte, error) {
	data, ok := s.objects[name]
	if !ok {
		return nil, assert.AnError
	}
	return data, nil
}

func (s *fakeStorage) PresignedURL(_ context.Context, name string, _ time.Duration) (string, error) {
	return "https://storage.local/" + name, nil
}

func newEventFixture() (*fakeFactory, *fakeMailer, IEventService) {
	factory := newFakeFactory()
	m := &fakeMailer{}
	svc := NewEventService(factory, m, &fakeStorage{}, nil, "https://app.local", noopLogger{})
	return factory, m, svc
}

func seedAgreementWithEvent(factory *fakeFactory, userId uuid.UUID) (*entity.Agreement, *entity.RenewalEvent) {
	ag := &entity.Agreement{
		Id:         uuid.New(),
		UserId:     userId,
		VendorName: "Acme Corp",
		Title:      "acme.pdf",
		SourceFile: "uploads/acme.pdf",
		Products:   []string{"Widgets", "Gears"},
	}
	factory.store.agreements = append(factory.store.agreements, ag)

	evt := &entity.RenewalEvent{
		Id:          uuid.New(),
		AgreementId: ag.Id,
		Title:       "Contract term ends",
		EventDate:   day(2025, time.March, 1),
		Kind:        renewal.KindTermEnd,
		VendorName:  ag.VendorName,
	}
	factory.store.events = append(factory.store.events, evt)
	return ag, evt
}

func TestListJoinsAgreementFields(t *testing.T) {
	factory, _, svc := newEventFixture()
	userId := uuid.New()
	ag, _ := seedAgreementWithEvent(factory, userId)

	// Another user's data must not leak in.
	seedAgreementWithEvent(factory, uuid.New())

	res, err := svc.List(context.Background(), userId)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, ag.Title, res[0].Agreement)
	assert.Equal(t, ag.SourceFile, res[0].FileKey)
	assert.Equal(t, ag.Products, res[0].Products)
	assert.Equal(t, "Acme Corp", res[0].Vendor)
}

func TestMarkDoneTogglesFlag(t *testing.T) {
	factory, _, svc := newEventFixture()
	userId := uuid.New()
	_, evt := seedAgreementWithEvent(factory, userId)

	_, err := svc.MarkDone(context.Background(), userId, &dto.MarkDoneRequest{Id: evt.Id, IsDone: true})
	require.NoError(t, err)
	assert.True(t, factory.store.events[0].IsDone)

	_, err = svc.MarkDone(context.Background(), userId, &dto.MarkDoneRequest{Id: evt.Id, IsDone: false})
	require.NoError(t, err)
	assert.False(t, factory.store.events[0].IsDone)
}

func TestMarkDoneRejectsForeignEvent(t *testing.T) {
	factory, _, svc := newEventFixture()
	_, evt := seedAgreementWithEvent(factory, uuid.New())

	_, err := svc.MarkDone(context.Background(), uuid.New(), &dto.MarkDoneRequest{Id: evt.Id, IsDone: true})
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestAssignStoresEmail(t *testing.T) {
	factory, _, svc := newEventFixture()
	userId := uuid.New()
	_, evt := seedAgreementWithEvent(factory, userId)

	_, err := svc.Assign(context.Background(), userId, &dto.AssignEventRequest{Id: evt.Id, AssignedTo: "teammate@example.com"})
	require.NoError(t, err)
	require.NotNil(t, factory.store.events[0].AssignedTo)
	assert.Equal(t, "teammate@example.com", *factory.store.events[0].AssignedTo)
}

func TestDeleteRemovesEvent(t *testing.T) {
	factory, _, svc := newEventFixture()
	userId := uuid.New()
	_, evt := seedAgreementWithEvent(factory, userId)

	require.NoError(t, svc.Delete(context.Background(), userId, evt.Id))
	assert.Empty(t, factory.store.events)
}

func TestShareIssuesTokenAndLink(t *testing.T) {
	factory, _, svc := newEventFixture()
	userId := uuid.New()
	_, evt := seedAgreementWithEvent(factory, userId)

	res, err := svc.Share(context.Background(), userId, &dto.ShareEventRequest{
		Id:         evt.Id,
		AssignedTo: "teammate@example.com",
		SharedBy:   "owner@example.com",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.ShareToken)
	assert.Equal(t, "https://app.local/events/share/"+res.ShareToken, res.Link)

	stored := factory.store.events[0]
	require.NotNil(t, stored.ShareToken)
	assert.Equal(t, res.ShareToken, *stored.ShareToken)
	require.NotNil(t, stored.SharedBy)
	assert.Equal(t, "owner@example.com", *stored.SharedBy)
}

func TestSharedLookupReturnsJoinedView(t *testing.T) {
	factory, _, svc := newEventFixture()
	userId := uuid.New()
	ag, evt := seedAgreementWithEvent(factory, userId)

	token := "some-opaque-token"
	evt.ShareToken = &token

	res, err := svc.SharedLookup(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, evt.Id, res.Id)
	assert.Equal(t, ag.SourceFile, res.FileKey)
	assert.Equal(t, ag.Products, res.Products)
}

func TestSharedLookupUnknownToken(t *testing.T) {
	_, _, svc := newEventFixture()

	_, err := svc.SharedLookup(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestSendShareEmail(t *testing.T) {
	_, m, svc := newEventFixture()

	err := svc.SendShareEmail(context.Background(), &dto.ShareEmailRequest{
		To:         "teammate@example.com",
		ShareLink:  "https://app.local/events/share/tok",
		EventTitle: "Contract term ends",
		VendorName: "Acme Corp",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"teammate@example.com"}, m.invites)
}
