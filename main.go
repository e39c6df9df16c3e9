package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ZhalgasKracavshik/smartspeak/internal/ai"
	"github.com/ZhalgasKracavshik/smartspeak/internal/database"
	"github.com/ZhalgasKracavshik/smartspeak/internal/excel"
	"github.com/ZhalgasKracavshik/smartspeak/internal/generator"
	"github.com/ZhalgasKracavshik/smartspeak/internal/notifier"
	"github.com/ZhalgasKracavshik/smartspeak/internal/server"
	syncpkg "github.com/ZhalgasKracavshik/smartspeak/internal/sync"
)

func main() {
	// .env необязателен: в проде переменные приходят из окружения
	_ = godotenv.Load()

	importWords := flag.String("import-words", "", "import flashcard words from an xlsx/csv file and exit")
	importBank := flag.String("import-bank", "", "import question bank templates from an xlsx/csv file and exit")
	sheet := flag.String("sheet", "", "sheet name for xlsx imports (default: first sheet)")
	flag.Parse()

	if err := database.Connect(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	if *importWords != "" || *importBank != "" {
		runImport(*importWords, *importBank, *sheet)
		return
	}

	// Кастомные шаблоны из БД добавляются поверх встроенного банка
	extra, err := database.NewBankRepository().LoadBanks()
	if err != nil {
		log.Fatalf("Failed to load question banks: %v", err)
	}
	gen := generator.NewWithBank(extra)

	chat, err := ai.New()
	if err != nil {
		log.Printf("AI assistant disabled: %v", err)
		chat = nil
	}

	var remote *database.RemoteStore
	if dsn := os.Getenv("REMOTE_DATABASE_URL"); dsn != "" {
		remote, err = database.ConnectRemote(dsn)
		if err != nil {
			log.Fatalf("Failed to connect to remote database: %v", err)
		}
		defer remote.Close()
	}

	syncMgr := syncpkg.New(remote)
	syncMgr.Start()
	defer syncMgr.Stop()

	if deliverer, err := notifier.NewTelegramDeliverer(); err != nil {
		log.Printf("Streak reminders disabled: %v", err)
	} else {
		reminder := notifier.New(deliverer)
		reminder.Start()
		defer reminder.Stop()
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: server.New(gen, chat, syncMgr, remote).Router(),
	}

	go func() {
		log.Printf("Listening on :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
	// Досылаем отложенные записи перед выходом
	syncMgr.FlushPending()
	log.Println("Shutdown complete")
}

func runImport(wordsPath, bankPath, sheet string) {
	if wordsPath != "" {
		result, err := excel.ImportWords(wordsPath, sheet)
		if err != nil {
			log.Fatalf("Word import failed: %v", err)
		}
		log.Printf("Words imported: %d ok, %d skipped, %d errors",
			result.Imported, result.Skipped, len(result.Errors))
		for _, e := range result.Errors {
			log.Printf("  %s", e)
		}
	}
	if bankPath != "" {
		result, err := excel.ImportQuestionBank(bankPath, sheet)
		if err != nil {
			log.Fatalf("Question bank import failed: %v", err)
		}
		log.Printf("Templates imported: %d ok, %d skipped, %d errors",
			result.Imported, result.Skipped, len(result.Errors))
		for _, e := range result.Errors {
			log.Printf("  %s", e)
		}
	}
}
