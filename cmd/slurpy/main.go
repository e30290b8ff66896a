// Package main is the standalone interactive surface for the Slurpy agent.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/slurpylabs/slurpy/internal/chat"
	"github.com/slurpylabs/slurpy/internal/config"
	"github.com/slurpylabs/slurpy/internal/emotion"
	"github.com/slurpylabs/slurpy/internal/history"
	"github.com/slurpylabs/slurpy/internal/memory"
	"github.com/slurpylabs/slurpy/internal/mode"
	"github.com/slurpylabs/slurpy/internal/models"
	"github.com/slurpylabs/slurpy/internal/repository"
	"github.com/slurpylabs/slurpy/internal/sessionlog"
)

func main() {
	cfg := config.Load()
	logger := slog.Default()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := repository.NewStore(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer store.Close()

	embedder, err := memory.NewGenAIEmbedder(ctx, cfg.GoogleAPIKey, cfg.EmbeddingModel)
	if err != nil {
		log.Fatalf("failed to create embedder: %v", err)
	}

	generator, err := models.NewOpenAIGenerator(cfg.OpenAIAPIKey, cfg.ChatModel, cfg.Temperature, int64(cfg.MaxTokens))
	if err != nil {
		log.Fatalf("failed to create generator: %v", err)
	}

	classifier := emotion.NewHFClassifier(cfg.HFAPIKey, cfg.HFBaseURL, cfg.EmotionModel)
	memories := memory.NewService(embedder, store.Memories, logger)
	knowledge := memory.NewKnowledgeRetriever(embedder, store.Knowledge, cfg.KnowledgeTopK)
	assembler := chat.NewAssembler(knowledge, memories, store.Summaries, logger)

	sessions := history.NewStore(cfg.SessionTTL)
	closer := sessionlog.NewCloser(sessionlog.NewLogger(cfg.SessionLogPath), generator, embedder, store.Summaries, logger)
	sessions.SetTeardown(func(sess *history.Session) {
		closer.Close(context.Background(), sess)
	})

	engine := chat.NewEngine(
		mode.NewRegistry(), classifier, assembler, generator, sessions, memories,
		chat.DetectOptions{Greetings: true, Farewells: true}, logger,
	)

	userID := os.Getenv("SLURPY_USER")
	if userID == "" {
		userID = "local"
	}
	sessionID := uuid.NewString()
	modeID := cfg.DefaultMode

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nclosing session...")
		engine.EndSession(userID, sessionID)
		cancel()
		os.Exit(0)
	}()

	fmt.Println("Slurpy is listening. /mode <id> to switch persona, /quit to leave.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("You > ")
		if !scanner.Scan() {
			break
		}
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		if strings.HasPrefix(text, "/mode") {
			modeID = strings.TrimSpace(strings.TrimPrefix(text, "/mode"))
			fmt.Printf("mode set to %q\n", modeID)
			continue
		}
		if text == "/quit" {
			break
		}

		reply, err := engine.HandleMessage(ctx, chat.Request{
			UserID:    userID,
			SessionID: sessionID,
			Mode:      modeID,
			Text:      text,
		})
		if err != nil {
			fmt.Printf("Slurpy is having trouble replying right now (%v), please try again.\n", err)
			continue
		}

		fmt.Printf("\nSlurpy [%s %s]: %s\n\n", reply.Emotion, reply.Fruit, reply.Text)

		if reply.State == chat.StateFarewell {
			fmt.Print("End session? (yes/no): ")
			if !scanner.Scan() {
				break
			}
			if strings.EqualFold(strings.TrimSpace(scanner.Text()), "yes") {
				break
			}
		}
	}

	engine.EndSession(userID, sessionID)
	fmt.Println("take care 🍋")
}
