package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-renewal-be/internal/dto"
	"contract-renewal-be/pkg/renewal"
)

type fakeTextExtractor struct {
	text string
}

func (e *fakeTextExtractor) ExtractText(context.Context, []byte) string {
	return e.text
}

type fakeExtraction struct {
	fields *dto.ExtractedFields
	err    error
}

func (f *fakeExtraction) ExtractFields(context.Context, string) (*dto.ExtractedFields, error) {
	return f.fields, f.err
}

func strp(s string) *string { return &s }

func newUploadFixture(text string, fields *dto.ExtractedFields) (*fakeFactory, IUploadService) {
	factory := newFakeFactory()
	store := &fakeStorage{objects: map[string][]byte{
		"uploads/contract.pdf": []byte("%PDF-1.7 fake"),
	}}
	svc := NewUploadService(
		factory,
		store,
		&fakeTextExtractor{text: text},
		&fakeExtraction{fields: fields},
		nil,
		noopLogger{},
	)
	return factory, svc
}

func contractText() string {
	return strings.Repeat("This agreement is made between the parties. ", 10)
}

func TestProcessUploadCreatesAgreementAndEvents(t *testing.T) {
	fields := &dto.ExtractedFields{
		VendorName:        "Acme Corp",
		Products:          []string{"Widgets"},
		EffectiveDate:     strp("2024-01-15"),
		AutoRenews:        true,
		InitialTermMonths: intp(12),
		RenewalTermMonths: intp(12),
		NoticePeriodDays:  intp(30),
	}
	factory, svc := newUploadFixture(contractText(), fields)

	res, err := svc.ProcessUpload(context.Background(), uuid.New(), "owner@example.com", &dto.UploadAgreementRequest{
		FileKey:  "uploads/contract.pdf",
		FileName: "contract.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", res.VendorName)
	assert.Equal(t, 2, res.EventsCreated)

	require.Len(t, factory.store.agreements, 1)
	ag := factory.store.agreements[0]
	assert.Equal(t, "owner@example.com", ag.OwnerEmail)
	assert.Equal(t, "contract.pdf", ag.Title)
	assert.Equal(t, "uploads/contract.pdf", ag.SourceFile)
	require.NotNil(t, ag.EffectiveDate)

	require.Len(t, factory.store.events, 2)
	for _, e := range factory.store.events {
		assert.Equal(t, ag.Id, e.AgreementId)
		assert.Equal(t, "Acme Corp", e.VendorName)
		assert.NotEqual(t, renewal.KindTermEnd, e.Kind)
	}
}

func TestProcessUploadVendorFallback(t *testing.T) {
	fields := &dto.ExtractedFields{
		EffectiveDate: strp("2024-01-15"),
	}
	factory, svc := newUploadFixture(contractText(), fields)

	res, err := svc.ProcessUpload(context.Background(), uuid.New(), "", &dto.UploadAgreementRequest{
		FileKey:  "uploads/contract.pdf",
		FileName: "contract.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, "Unknown Vendor", res.VendorName)
	assert.Equal(t, "Unknown Vendor", factory.store.agreements[0].VendorName)
}

func TestProcessUploadRejectsShortText(t *testing.T) {
	factory, svc := newUploadFixture("too short", &dto.ExtractedFields{})

	_, err := svc.ProcessUpload(context.Background(), uuid.New(), "", &dto.UploadAgreementRequest{
		FileKey:  "uploads/contract.pdf",
		FileName: "contract.pdf",
	})
	assert.ErrorIs(t, err, ErrUnreadablePDF)
	assert.Empty(t, factory.store.agreements)
}

func TestProcessUploadMissingObject(t *testing.T) {
	_, svc := newUploadFixture(contractText(), &dto.ExtractedFields{})

	_, err := svc.ProcessUpload(context.Background(), uuid.New(), "", &dto.UploadAgreementRequest{
		FileKey:  "uploads/nope.pdf",
		FileName: "nope.pdf",
	})
	assert.Error(t, err)
}

func TestProcessUploadNoEffectiveDateYieldsNoEvents(t *testing.T) {
	fields := &dto.ExtractedFields{VendorName: "Acme Corp"}
	factory, svc := newUploadFixture(contractText(), fields)

	res, err := svc.ProcessUpload(context.Background(), uuid.New(), "", &dto.UploadAgreementRequest{
		FileKey:  "uploads/contract.pdf",
		FileName: "contract.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.EventsCreated)
	assert.Len(t, factory.store.agreements, 1)
	assert.Empty(t, factory.store.events)
}

func TestProcessUploadUnparseableDateDegrades(t *testing.T) {
	fields := &dto.ExtractedFields{
		VendorName:    "Acme Corp",
		EffectiveDate: strp("sometime in spring"),
	}
	factory, svc := newUploadFixture(contractText(), fields)

	res, err := svc.ProcessUpload(context.Background(), uuid.New(), "", &dto.UploadAgreementRequest{
		FileKey:  "uploads/contract.pdf",
		FileName: "contract.pdf",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.EventsCreated)
	assert.Nil(t, factory.store.agreements[0].EffectiveDate)
}
