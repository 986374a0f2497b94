package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contract-renewal-be/pkg/llm"
)

type fakeLLM struct {
	response string
	err      error
	lastUser string
}

func (f *fakeLLM) Chat(_ context.Context, history []llm.Message, _ ...llm.Option) (string, error) {
	for _, m := range history {
		if m.Role == "user" {
			f.lastUser = m.Content
		}
	}
	return f.response, f.err
}

func (f *fakeLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	return f.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, options...)
}

func TestExtractFieldsParsesJSON(t *testing.T) {
	provider := &fakeLLM{response: `{
		"vendor_name": "Acme Corp",
		"products": ["Widgets"],
		"effective_date": "2024-01-15",
		"auto_renews": true,
		"renewal_term_months": 12,
		"notice_period_days": 30,
		"initial_term_months": 12
	}`}
	svc := NewExtractionService(provider, noopLogger{})

	fields, err := svc.ExtractFields(context.Background(), "some contract text")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", fields.VendorName)
	assert.True(t, fields.AutoRenews)
	require.NotNil(t, fields.NoticePeriodDays)
	assert.Equal(t, 30, *fields.NoticePeriodDays)
}

func TestExtractFieldsToleratesCodeFence(t *testing.T) {
	provider := &fakeLLM{response: "```json\n{\"vendor_name\": \"Acme Corp\"}\n```"}
	svc := NewExtractionService(provider, noopLogger{})

	fields, err := svc.ExtractFields(context.Background(), "text")
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", fields.VendorName)
}

func TestExtractFieldsRejectsNonJSON(t *testing.T) {
	provider := &fakeLLM{response: "I could not find a contract here."}
	svc := NewExtractionService(provider, noopLogger{})

	_, err := svc.ExtractFields(context.Background(), "text")
	assert.Error(t, err)
}

func TestExtractFieldsTruncatesLongInput(t *testing.T) {
	provider := &fakeLLM{response: `{"vendor_name": "Acme Corp"}`}
	svc := NewExtractionService(provider, noopLogger{})

	long := make([]byte, 25000)
	for i := range long {
		long[i] = 'a'
	}
	_, err := svc.ExtractFields(context.Background(), string(long))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(provider.lastUser), 10000)
}

func TestExtractFieldsNullsStayNil(t *testing.T) {
	provider := &fakeLLM{response: `{
		"vendor_name": "Acme Corp",
		"effective_date": null,
		"renewal_term_months": null
	}`}
	svc := NewExtractionService(provider, noopLogger{})

	fields, err := svc.ExtractFields(context.Background(), "text")
	require.NoError(t, err)
	assert.Nil(t, fields.EffectiveDate)
	assert.Nil(t, fields.RenewalTermMonths)
}
