// Package chat answers natural-language questions about the lead
// database. Simple aggregate questions are answered locally; anything
// else is sent to the LLM with the current lead data as context.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"leadpilot_backend/internal/leads/service"
	"leadpilot_backend/platform/ai"
	"leadpilot_backend/platform/apperr"
	"leadpilot_backend/platform/logger"
)

// Answer sources reported to the caller.
const (
	SourceLocal = "local"
	SourceLLM   = "llm"
)

// historyLimit bounds the conversation turns kept for LLM context.
const historyLimit = 10

type turn struct {
	Question string
	Answer   string
}

// Analyzer answers questions about the lead collection.
type Analyzer struct {
	completer ai.Completer
	leads     *service.Service
	log       *logger.Logger

	historyMu sync.Mutex
	history   []turn
}

// New creates a lead analyzer.
func New(completer ai.Completer, leads *service.Service, log *logger.Logger) *Analyzer {
	return &Analyzer{completer: completer, leads: leads, log: log}
}

// Ask answers a question about the leads. Recognized aggregate
// questions are computed locally; everything else goes to the LLM.
func (a *Analyzer) Ask(ctx context.Context, query string) (string, string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", "", apperr.Validation("query must not be empty")
	}

	if answer, ok := a.LocalAnswer(ctx, query); ok {
		return answer, SourceLocal, nil
	}

	answer, err := a.askLLM(ctx, query)
	if err != nil {
		return "", "", err
	}

	a.historyMu.Lock()
	a.history = append(a.history, turn{Question: query, Answer: answer})
	if len(a.history) > historyLimit {
		a.history = a.history[len(a.history)-historyLimit:]
	}
	a.historyMu.Unlock()

	return answer, SourceLLM, nil
}

// LocalAnswer handles simple aggregate questions without the LLM.
// Returns false when the query needs the model.
func (a *Analyzer) LocalAnswer(ctx context.Context, query string) (string, bool) {
	q := strings.ToLower(strings.TrimSpace(query))

	switch {
	case q == "help" || q == "commands" || q == "?":
		return a.Help(), true
	case q == "stats":
		return a.Stats(ctx), true
	case strings.Contains(q, "how many leads") || q == "count leads" || q == "lead count":
		return fmt.Sprintf("There are %d leads in the database.", len(a.leads.Snapshot(ctx))), true
	case strings.Contains(q, "qualified"):
		list := a.leads.Qualified(ctx)
		return fmt.Sprintf("%d leads meet the qualified threshold.", list.Total), true
	case strings.Contains(q, "hot lead"):
		list := a.leads.HotLeads(ctx)
		return fmt.Sprintf("%d leads meet the hot lead threshold.", list.Total), true
	case strings.Contains(q, "average score"):
		summary := a.leads.Summary(ctx)
		if summary.AverageScore == nil {
			return "There are no leads yet.", true
		}
		return fmt.Sprintf("The average qualification score is %.2f.", *summary.AverageScore), true
	case strings.Contains(q, "list companies") || strings.Contains(q, "which companies"):
		return a.listCompanies(ctx), true
	}

	return "", false
}

// Stats formats the pipeline summary as plain text.
func (a *Analyzer) Stats(ctx context.Context) string {
	summary := a.leads.Summary(ctx)
	if summary.TotalLeads == 0 {
		return "There are no leads yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Total leads: %d\n", summary.TotalLeads)
	fmt.Fprintf(&b, "Qualified: %d\n", *summary.QualifiedLeads)
	fmt.Fprintf(&b, "Hot leads: %d\n", *summary.HotLeads)
	fmt.Fprintf(&b, "Qualification rate: %.1f%%\n", *summary.QualificationRate)
	fmt.Fprintf(&b, "Average score: %.2f\n", *summary.AverageScore)

	statuses := make([]string, 0, len(summary.StatusBreakdown))
	for status := range summary.StatusBreakdown {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)
	b.WriteString("Status breakdown:\n")
	for _, status := range statuses {
		fmt.Fprintf(&b, "  %s: %d\n", status, summary.StatusBreakdown[status])
	}
	return strings.TrimRight(b.String(), "\n")
}

// Help lists the locally handled questions.
func (a *Analyzer) Help() string {
	return strings.Join([]string{
		"Ask anything about the leads, for example:",
		"  how many leads are there?",
		"  who are the qualified leads?",
		"  which hot leads should I contact first?",
		"  what is the average score?",
		"  list companies",
		"  stats - show pipeline statistics",
	}, "\n")
}

// ClearHistory drops the conversation history.
func (a *Analyzer) ClearHistory() {
	a.historyMu.Lock()
	a.history = nil
	a.historyMu.Unlock()
}

func (a *Analyzer) listCompanies(ctx context.Context) string {
	snapshot := a.leads.Snapshot(ctx)
	if len(snapshot) == 0 {
		return "There are no leads yet."
	}

	seen := make(map[string]bool, len(snapshot))
	var companies []string
	for _, lead := range snapshot {
		if !seen[lead.Company] {
			seen[lead.Company] = true
			companies = append(companies, lead.Company)
		}
	}
	sort.Strings(companies)
	return "Companies in the database:\n  " + strings.Join(companies, "\n  ")
}

func (a *Analyzer) askLLM(ctx context.Context, query string) (string, error) {
	prompt, err := a.buildPrompt(ctx, query)
	if err != nil {
		return "", err
	}

	start := time.Now()
	answer, err := a.completer.Complete(ctx, analystSystemPrompt, prompt)
	a.log.LLMCall(a.completer.Name(), "lead_analysis", float64(time.Since(start).Milliseconds()), err)
	if err != nil {
		if errors.Is(err, ai.ErrNotConfigured) {
			return "", apperr.Unavailable("this question requires a configured LLM provider; try 'help' for locally answered questions")
		}
		return "", apperr.Wrap(apperr.KindUnavailable, "lead analysis failed", err)
	}
	return strings.TrimSpace(answer), nil
}

func (a *Analyzer) buildPrompt(ctx context.Context, query string) (string, error) {
	snapshot := a.leads.Snapshot(ctx)
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "encode lead snapshot", err)
	}

	var b strings.Builder
	b.WriteString("Current lead database (JSON):\n")
	b.Write(data)
	b.WriteString("\n\n")

	a.historyMu.Lock()
	for _, t := range a.history {
		fmt.Fprintf(&b, "Previous question: %s\nPrevious answer: %s\n\n", t.Question, t.Answer)
	}
	a.historyMu.Unlock()

	fmt.Fprintf(&b, "Question: %s", query)
	return b.String(), nil
}
