// Command ragchat is a terminal chat interface backed by a built-in
// document knowledge base.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/custodia-labs/ragchat-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/ragchat-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/ragchat-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ragchat-cli/internal/core/services"
	"github.com/custodia-labs/ragchat-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := file.NewConfigStore(os.Getenv("RAGCHAT_CONFIG_DIR"))
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	library := memory.NewDefaultLibrary()
	engine := services.NewEngine(library, engineOptions(cfg)...)

	convStore, cleanup := newConversationStore(cfg)
	defer cleanup()

	cli.Configure(cli.Services{
		Chat:         engine,
		Conversation: services.NewConversationManager(convStore, engine),
		Document:     services.NewDocumentService(library),
	})
	cli.SetVersion(version)

	return cli.Execute()
}

// engineOptions translates config keys into engine options. Absent keys
// leave the engine defaults in place.
func engineOptions(cfg driven.ConfigStore) []services.EngineOption {
	var opts []services.EngineOption

	minMs := cfg.GetInt("chat.latency_min_ms")
	maxMs := cfg.GetInt("chat.latency_max_ms")
	if minMs > 0 && maxMs >= minMs {
		opts = append(opts, services.WithLatencyRange(
			time.Duration(minMs)*time.Millisecond,
			time.Duration(maxMs)*time.Millisecond,
		))
	}

	if _, ok := cfg.Get("chat.failure_rate"); ok {
		opts = append(opts, services.WithFailureRate(cfg.GetFloat("chat.failure_rate")))
	}

	return opts
}

// newConversationStore picks the history backend from config.
// Conversations live in memory by default; history.backend = "sqlite"
// opts into persistence across runs. Memory is also the fallback when
// the database cannot be opened.
func newConversationStore(cfg driven.ConfigStore) (driven.ConversationStore, func()) {
	if cfg.GetString("history.backend") != "sqlite" {
		return memory.NewConversationStore(), func() {}
	}

	store, err := sqlite.NewStore(cfg.GetString("history.data_dir"))
	if err != nil {
		logger.Warn("opening history database: %v, falling back to in-memory history", err)
		return memory.NewConversationStore(), func() {}
	}

	return store.ConversationStore(), func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing history database: %v", err)
		}
	}
}
