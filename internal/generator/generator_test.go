package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadpilot_backend/internal/events"
	"leadpilot_backend/internal/leads/domain"
	"leadpilot_backend/internal/leads/repository"
	"leadpilot_backend/internal/leads/service"
	"leadpilot_backend/platform/ai"
	"leadpilot_backend/platform/apperr"
	"leadpilot_backend/platform/logger"
)

type stubCompleter struct {
	response string
	err      error
}

func (s stubCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	return s.response, s.err
}

func (s stubCompleter) Name() string { return "stub" }

func newLeadService(t *testing.T) *service.Service {
	t.Helper()
	log := logger.New("development")
	svc, err := service.New(repository.New(), domain.DefaultScoringCriteria(), events.NewInMemoryBus(log), log)
	require.NoError(t, err)
	return svc
}

const batchJSON = `{
  "leads": [
    {
      "first_name": "Maya",
      "last_name": "Chen",
      "email": "maya.chen@quantiva.io",
      "company": "Quantiva Analytics",
      "title": "VP of Operations",
      "lead_source": "webinar",
      "company_size": 340,
      "budget": 60000,
      "decision_maker": false,
      "pain_points": ["manual reporting eats analyst time"],
      "timeline": "3_months"
    },
    {
      "first_name": "Tom",
      "last_name": "Okafor",
      "email": "t.okafor@brightpath.com",
      "company": "BrightPath Logistics",
      "title": "CEO",
      "lead_source": "referral",
      "company_size": 85,
      "annual_revenue": 4000000,
      "decision_maker": true,
      "pain_points": ["rising fuel cost", "route planning errors"],
      "timeline": "immediate"
    }
  ]
}`

func TestParseBatch(t *testing.T) {
	t.Run("object with leads key", func(t *testing.T) {
		records, err := parseBatch(batchJSON)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "maya.chen@quantiva.io", records[0].Email)
		assert.True(t, records[1].DecisionMaker)
	})

	t.Run("bare array", func(t *testing.T) {
		records, err := parseBatch(`[{"first_name":"A","last_name":"B","email":"a@b.co","company":"C"}]`)
		require.NoError(t, err)
		require.Len(t, records, 1)
	})

	t.Run("fenced output", func(t *testing.T) {
		records, err := parseBatch("```json\n" + batchJSON + "\n```")
		require.NoError(t, err)
		assert.Len(t, records, 2)
	})

	t.Run("not json", func(t *testing.T) {
		_, err := parseBatch("Sure! Here are your leads:")
		require.Error(t, err)
	})

	t.Run("empty array", func(t *testing.T) {
		_, err := parseBatch(`[]`)
		require.Error(t, err)
	})
}

func TestGenerate(t *testing.T) {
	leads := newLeadService(t)
	gen := New(stubCompleter{response: batchJSON}, leads, logger.New("development"))

	resp, err := gen.Generate(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Requested)
	assert.Equal(t, 2, resp.Generated)
	assert.Len(t, resp.LeadIDs, 2)
	assert.Empty(t, resp.Skipped)

	// generated leads went through the scoring pipeline
	list, err := leads.List(context.Background(), "", "")
	require.NoError(t, err)
	for _, lead := range list.Items {
		assert.Greater(t, lead.QualificationScore, 0.0)
	}
}

func TestGenerateCountBounds(t *testing.T) {
	gen := New(stubCompleter{response: batchJSON}, newLeadService(t), logger.New("development"))

	for _, count := range []int{0, -1, MaxBatchSize + 1} {
		_, err := gen.Generate(context.Background(), count)
		require.Error(t, err)
		assert.True(t, apperr.Is(err, apperr.KindValidation))
	}
}

func TestGenerateProviderNotConfigured(t *testing.T) {
	gen := New(ai.Disabled{}, newLeadService(t), logger.New("development"))

	_, err := gen.Generate(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnavailable))
}

func TestGenerateProviderFailure(t *testing.T) {
	gen := New(stubCompleter{err: errors.New("upstream 500")}, newLeadService(t), logger.New("development"))

	_, err := gen.Generate(context.Background(), 5)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnavailable))
}
