// NutriChat Local: culturally-aware nutrition assistant for NYC food access.
// Serves the chat engine, session memory bank, resource and tip catalogs,
// and the city-officials dashboard over HTTP.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/nutrichat/nutrichat-go/catalog"
	"github.com/nutrichat/nutrichat-go/engine"
	anthropicprovider "github.com/nutrichat/nutrichat-go/engine/provider/anthropic"
	geminiprovider "github.com/nutrichat/nutrichat-go/engine/provider/gemini"
	"github.com/nutrichat/nutrichat-go/memory"
	"github.com/nutrichat/nutrichat-go/memory/store/jsonfile"
	"github.com/nutrichat/nutrichat-go/memory/store/sqlite"
	"github.com/nutrichat/nutrichat-go/semantic"
	"github.com/nutrichat/nutrichat-go/semantic/embedder/mock"
	"github.com/nutrichat/nutrichat-go/server"
	"github.com/nutrichat/nutrichat-go/tips"
)

func main() {
	// Load .env file if it exists (optional - system env vars work too)
	_ = godotenv.Load()

	// CHAT_DISABLED starts the server with no LLM providers: session,
	// catalog, and tip endpoints stay live, chat degrades (map
	// recommendations fall back to canned advice, regular chat errors).
	chatDisabled := os.Getenv("CHAT_DISABLED") == "true" || os.Getenv("CHAT_DISABLED") == "1"

	anthropicKey := os.Getenv("ANTHROPIC_API_KEY")
	geminiKey := os.Getenv("GEMINI_API_KEY")
	if !chatDisabled && anthropicKey == "" && geminiKey == "" {
		log.Fatal("❌ ANTHROPIC_API_KEY or GEMINI_API_KEY environment variable is required (or set CHAT_DISABLED=true)")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// ============================================================================
	// CATALOG + SESSION STORE
	// ============================================================================

	cat, err := catalog.New()
	if err != nil {
		log.Fatalf("❌ Failed to build resource catalog: %v", err)
	}
	log.Println("✅ Resource catalog loaded")

	store, err := openSessionStore()
	if err != nil {
		log.Fatalf("❌ Failed to open session store: %v", err)
	}
	log.Println("✅ Session store ready")

	var bankOpts []memory.Option
	if raw := os.Getenv("PROXIMITY_RADIUS_KM"); raw != "" {
		km, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Fatalf("❌ Invalid PROXIMITY_RADIUS_KM: %v", err)
		}
		bankOpts = append(bankOpts, memory.WithProximityRadiusKm(km))
	}
	if raw := os.Getenv("SESSION_TTL_HOURS"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil {
			log.Fatalf("❌ Invalid SESSION_TTL_HOURS: %v", err)
		}
		bankOpts = append(bankOpts, memory.WithSessionTTL(time.Duration(hours)*time.Hour))
	}
	bank := memory.NewBank(store, cat, bankOpts...)
	bank.RenewIfExpired()

	// ============================================================================
	// LLM PROVIDERS
	// ============================================================================
	// Anthropic is the primary rung; Gemini picks up when it fails. Either
	// key alone still works.

	var providers []engine.Provider
	if chatDisabled {
		log.Println("⚠️  CHAT_DISABLED set, starting without LLM providers")
	} else {
		if anthropicKey != "" {
			providers = append(providers, anthropicprovider.New(anthropicKey, os.Getenv("ANTHROPIC_MODEL")))
			log.Println("✅ Anthropic provider configured")
		}
		if geminiKey != "" {
			gp, err := geminiprovider.New(context.Background(), geminiKey, os.Getenv("GEMINI_MODEL"))
			if err != nil {
				log.Fatalf("❌ Failed to configure Gemini provider: %v", err)
			}
			providers = append(providers, gp)
			log.Println("✅ Gemini provider configured")
		}
	}
	eng := engine.New(bank, providers)

	// ============================================================================
	// SEMANTIC TIP SEARCH
	// ============================================================================

	index, err := semantic.NewIndex(mock.New())
	if err != nil {
		log.Fatalf("❌ Failed to create tip index: %v", err)
	}
	if err := index.IndexTips(context.Background(), tips.All()); err != nil {
		log.Fatalf("❌ Failed to index tips: %v", err)
	}
	log.Println("✅ Tip index built")

	srv := server.New(bank, eng, cat, index)

	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Println("🚀 NutriChat Server Running")
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Printf("   HTTP API:  http://localhost:%s", port)
	log.Printf("   Websocket: ws://localhost:%s/ws", port)
	log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	log.Println()

	if err := http.ListenAndServe(":"+port, srv); err != nil {
		log.Fatal(err)
	}
}

// openSessionStore picks the persistence backend from SESSION_STORE:
// "sqlite" or "jsonfile" (the default). SESSION_PATH overrides the file
// location.
func openSessionStore() (memory.Store, error) {
	path := os.Getenv("SESSION_PATH")
	switch os.Getenv("SESSION_STORE") {
	case "sqlite":
		if path == "" {
			path = "nutrichat.db"
		}
		return sqlite.Open(path)
	default:
		if path == "" {
			path = "nutrichat-session.json"
		}
		return jsonfile.New(path), nil
	}
}
