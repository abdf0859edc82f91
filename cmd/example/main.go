package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/omnia-ai/omnia"
	"github.com/omnia-ai/omnia/client"
)

func main() {
	godotenv.Load()
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.Kitchen,
	})))

	ctx := context.Background()

	messages := []omnia.Message{
		{ID: omnia.GenerateMessageID(), Role: omnia.RoleSystem, Content: "You are a helpful assistant."},
		{ID: omnia.GenerateMessageID(), Role: omnia.RoleUser, Content: "Hello, introduce yourself in one sentence."},
	}

	// OpenAI (falls back to the offline stub when no key is set or the
	// call fails).
	fmt.Println("=== OpenAI ===")
	runProvider(ctx, client.Config{Provider: omnia.ProviderOpenAI}, messages)

	// DeepSeek
	fmt.Println("\n=== DeepSeek ===")
	runProvider(ctx, client.Config{Provider: omnia.ProviderDeepSeek}, messages)

	// Ollama on a local server
	fmt.Println("\n=== Ollama ===")
	c, err := client.New(client.Config{
		Provider: omnia.ProviderOllama,
		BaseURL:  "http://localhost:11434",
	})
	if err != nil {
		slog.Error("ollama client", "err", err)
		return
	}

	models := c.ListModels(ctx)
	fmt.Println("installed models:", models)

	opts := []omnia.Option{}
	if len(models) > 0 {
		opts = append(opts, omnia.WithModel(models[0]))
	}
	resp, err := c.ChatCompletion(ctx, messages, opts...)
	if err != nil {
		slog.Error("ollama chat", "err", err)
		return
	}
	fmt.Printf("[%s] %s\n", resp.ServedBy, resp.Text)

	// Offline stub directly
	fmt.Println("\n=== Offline ===")
	runProvider(ctx, client.Config{Provider: omnia.ProviderOffline}, messages)
}

func runProvider(ctx context.Context, cfg client.Config, messages []omnia.Message) {
	c, err := client.New(cfg)
	if err != nil {
		slog.Error("client construction", "provider", cfg.Provider, "err", err)
		return
	}

	resp, err := c.ChatCompletion(ctx, messages, omnia.WithMaxTokens(100))
	if err != nil {
		slog.Error("chat", "provider", cfg.Provider, "err", err)
		return
	}
	fmt.Printf("[%s] %s\n", resp.ServedBy, resp.Text)

	embedding, err := c.CreateEmbedding(ctx, "hello world")
	if err != nil {
		slog.Error("embedding", "provider", cfg.Provider, "err", err)
		return
	}
	fmt.Printf("[%s] embedding dimensions: %d\n", embedding.ServedBy, len(embedding.Vector))
}
