package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"leadpilot_backend/internal/leads/domain"
	"leadpilot_backend/internal/leads/repository"
	"leadpilot_backend/internal/leads/service"
	"leadpilot_backend/internal/leads/transport"
	"leadpilot_backend/platform/ai"
	"leadpilot_backend/platform/apperr"
	"leadpilot_backend/platform/logger"
)

type stubCompleter struct {
	response   string
	err        error
	lastPrompt string
}

func (s *stubCompleter) Complete(ctx context.Context, system, prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.response, s.err
}

func (s *stubCompleter) Name() string { return "stub" }

func intPtr(v int) *int { return &v }

func seededAnalyzer(t *testing.T, completer ai.Completer) *Analyzer {
	t.Helper()
	log := logger.New("development")
	svc, err := service.New(repository.New(), domain.DefaultScoringCriteria(), nil, log)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = svc.Add(ctx, transport.CreateLeadRequest{
		FirstName: "Ada", LastName: "Lovelace", Email: "ada@engines.com", Company: "Analytical Engines",
		CompanySize: intPtr(1200), Budget: intPtr(150_000), DecisionMaker: true,
		PainPoints: []string{"manual reporting", "high cost"}, Timeline: "immediate",
	})
	require.NoError(t, err)
	_, err = svc.Add(ctx, transport.CreateLeadRequest{
		FirstName: "Bob", LastName: "Intern", Email: "bob@tiny.io", Company: "Tiny Co",
	})
	require.NoError(t, err)

	return New(completer, svc, log)
}

func TestLocalAnswers(t *testing.T) {
	a := seededAnalyzer(t, ai.Disabled{})
	ctx := context.Background()

	tests := []struct {
		query string
		want  string
	}{
		{"How many leads are there?", "2 leads"},
		{"who are the qualified leads", "1 leads meet the qualified"},
		{"any hot leads?", "1 leads meet the hot"},
		{"what is the average score?", "66.75"},
		{"list companies", "Analytical Engines"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			answer, source, err := a.Ask(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, SourceLocal, source)
			assert.Contains(t, answer, tt.want)
		})
	}
}

func TestStats(t *testing.T) {
	a := seededAnalyzer(t, ai.Disabled{})
	stats := a.Stats(context.Background())

	assert.Contains(t, stats, "Total leads: 2")
	assert.Contains(t, stats, "Qualified: 1")
	assert.Contains(t, stats, "Average score: 66.75")
	assert.Contains(t, stats, "unqualified: 1")
}

func TestStatsEmpty(t *testing.T) {
	log := logger.New("development")
	svc, err := service.New(repository.New(), domain.DefaultScoringCriteria(), nil, log)
	require.NoError(t, err)

	a := New(ai.Disabled{}, svc, log)
	assert.Equal(t, "There are no leads yet.", a.Stats(context.Background()))
}

func TestHelpIsLocal(t *testing.T) {
	a := seededAnalyzer(t, ai.Disabled{})
	for _, q := range []string{"help", "commands", "?"} {
		answer, source, err := a.Ask(context.Background(), q)
		require.NoError(t, err)
		assert.Equal(t, SourceLocal, source)
		assert.Contains(t, answer, "stats")
	}
}

func TestAskRoutesToLLM(t *testing.T) {
	stub := &stubCompleter{response: "Contact Ada Lovelace first; her score is 95.5."}
	a := seededAnalyzer(t, stub)

	answer, source, err := a.Ask(context.Background(), "who should I contact first and why?")
	require.NoError(t, err)
	assert.Equal(t, SourceLLM, source)
	assert.Contains(t, answer, "Ada Lovelace")

	// the prompt carries the lead data and the question
	assert.Contains(t, stub.lastPrompt, "ada@engines.com")
	assert.Contains(t, stub.lastPrompt, "who should I contact first")
}

func TestAskKeepsHistory(t *testing.T) {
	stub := &stubCompleter{response: "Answer one."}
	a := seededAnalyzer(t, stub)
	ctx := context.Background()

	_, _, err := a.Ask(ctx, "first question?")
	require.NoError(t, err)

	_, _, err = a.Ask(ctx, "second question?")
	require.NoError(t, err)
	assert.Contains(t, stub.lastPrompt, "first question?")
	assert.Contains(t, stub.lastPrompt, "Answer one.")

	a.ClearHistory()
	_, _, err = a.Ask(ctx, "third question?")
	require.NoError(t, err)
	assert.NotContains(t, stub.lastPrompt, "first question?")
}

func TestAskHistoryBounded(t *testing.T) {
	stub := &stubCompleter{response: "ok"}
	a := seededAnalyzer(t, stub)
	ctx := context.Background()

	for i := 0; i < historyLimit+5; i++ {
		_, _, err := a.Ask(ctx, "question "+strings.Repeat("x", i+1))
		require.NoError(t, err)
	}

	a.historyMu.Lock()
	defer a.historyMu.Unlock()
	assert.Len(t, a.history, historyLimit)
}

func TestAskWithoutProvider(t *testing.T) {
	a := seededAnalyzer(t, ai.Disabled{})

	_, _, err := a.Ask(context.Background(), "summarize the pipeline trends")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindUnavailable))
}

func TestAskEmptyQuery(t *testing.T) {
	a := seededAnalyzer(t, ai.Disabled{})

	_, _, err := a.Ask(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}
