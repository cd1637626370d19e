// Command analyzer is an interactive demo: it generates a batch of
// synthetic leads, scores them, persists them to the configured JSON
// file, and opens a chat loop over the resulting database.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"leadpilot_backend/internal/chat"
	"leadpilot_backend/internal/events"
	"leadpilot_backend/internal/generator"
	"leadpilot_backend/internal/leads"
	"leadpilot_backend/platform/ai"
	"leadpilot_backend/platform/config"
	"leadpilot_backend/platform/logger"
	"leadpilot_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	completer, err := ai.NewCompleter(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize LLM client:", err)
		os.Exit(1)
	}

	leadsModule, err := leads.NewModule(events.NewInMemoryBus(log), validator.New(), log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize leads module:", err)
		os.Exit(1)
	}
	svc := leadsModule.Service

	gen := generator.New(completer, svc, log)
	analyzer := chat.New(completer, svc, log)

	fmt.Printf("Generating %d synthetic leads with %s...\n", cfg.GenerateCount, completer.Name())
	result, err := gen.Generate(ctx, cfg.GenerateCount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lead generation failed:", err)
		fmt.Fprintln(os.Stderr, "continuing with an empty database")
	} else {
		fmt.Printf("Ingested %d leads (%d skipped)\n", len(result.LeadIDs), len(result.Skipped))
		if err := svc.SaveToFile(ctx, cfg.LeadsFile); err != nil {
			fmt.Fprintln(os.Stderr, "failed to save leads:", err)
		} else {
			fmt.Println("Leads saved to", cfg.LeadsFile)
		}
	}

	fmt.Println(analyzer.Stats(ctx))
	fmt.Println()
	fmt.Println("Ask questions about the leads. Type 'help' for examples, 'quit' to exit.")

	runChatLoop(ctx, analyzer)
}

func runChatLoop(ctx context.Context, analyzer *chat.Analyzer) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		if ctx.Err() != nil {
			return
		}

		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			continue
		}

		switch strings.ToLower(query) {
		case "quit", "exit", "bye":
			fmt.Println("Goodbye.")
			return
		case "clear":
			analyzer.ClearHistory()
			fmt.Println("Conversation history cleared.")
			continue
		}

		answer, _, err := analyzer.Ask(ctx, query)
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(answer)
	}
}
