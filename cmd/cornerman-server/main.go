// Package main is the entry point for the Cornerman game server.
// It only handles dependency injection and server initialization.
// NO business logic belongs here.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/ringsidegames/cornerman/internal/config"
	"github.com/ringsidegames/cornerman/internal/events"
	"github.com/ringsidegames/cornerman/internal/infra/storage"
	"github.com/ringsidegames/cornerman/internal/network"
	"github.com/ringsidegames/cornerman/internal/platform/logger"
	"github.com/ringsidegames/cornerman/internal/platform/metrics"
	"github.com/ringsidegames/cornerman/internal/platform/rng"
	"github.com/ringsidegames/cornerman/internal/store"

	"github.com/gorilla/websocket"
)

func main() {
	log.Println("[CORNERMAN] Initializing authoritative game server...")

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("Failed to load server config: %v", err)
	}

	appLogger := logger.NewLogger()

	tables := config.Default()
	if cfg.TablesPath != "" {
		tables, err = config.Load(cfg.TablesPath)
		if err != nil {
			appLogger.Error("Failed to load balance tables from %s: %v", cfg.TablesPath, err)
			os.Exit(1)
		}
		appLogger.Info("Loaded balance tables from %s", cfg.TablesPath)
	}

	appLogger.Info("Initializing SQLite database %q...", cfg.DBPath)
	db, err := storage.InitSQLite(cfg.DBPath)
	if err != nil {
		appLogger.Error("Failed to initialize SQLite: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	eventRepo := storage.NewSQLiteEventRepository(db)
	saveRepo := storage.NewSaveRepository(db)

	appLogger.Info("Bootstrapping EventLog...")
	eventLog := events.NewEventLog(eventRepo, appLogger)

	source := rng.NewAmbient()
	if cfg.Seed != 0 {
		source = rng.New(cfg.Seed)
		appLogger.Info("Deterministic mode, seed %d", cfg.Seed)
	}

	gameStore := store.New(tables, source, rng.NewIDSource(), appLogger, eventLog)

	// Resume the configured slot when it holds a career.
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.SaveSlot != "" {
		if err := gameStore.LoadGame(ctx, saveRepo, cfg.SaveSlot); err != nil {
			if errors.Is(err, storage.ErrSlotNotFound) {
				appLogger.Info("Save slot %q empty, waiting for START_GAME", cfg.SaveSlot)
			} else {
				appLogger.Error("Failed to load slot %q: %v", cfg.SaveSlot, err)
				os.Exit(1)
			}
		}
	}

	appLogger.Info("Bootstrapping WebSocket Hub...")
	hub := network.NewHub(gameStore, saveRepo, appLogger)
	go hub.Run(ctx)
	hub.StartEventPoller(ctx, eventLog)

	// Setup API Routes
	mux := http.NewServeMux()

	mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		serveWs(hub, w, r, appLogger)
	})

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"status":  "ok",
			"started": gameStore.Started(),
		})
	})

	mux.HandleFunc("/metrics", metrics.Handler())

	mux.HandleFunc("/api/saves", func(w http.ResponseWriter, r *http.Request) {
		slots, err := saveRepo.ListSlots(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"slots": slots})
	})

	mux.HandleFunc("/api/events", func(w http.ResponseWriter, r *http.Request) {
		// ?day=N narrows to one game day, otherwise the full trail.
		var evs []events.GameEvent
		if dayStr := r.URL.Query().Get("day"); dayStr != "" {
			day, err := strconv.Atoi(dayStr)
			if err != nil {
				http.Error(w, "invalid day", http.StatusBadRequest)
				return
			}
			evs = eventLog.GetByDay(day)
		} else {
			evs = eventLog.Replay()
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(evs)
	})

	srv := &http.Server{Addr: cfg.Addr, Handler: mux}
	go func() {
		appLogger.Info("HTTP API & WS server listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down...")
	_ = srv.Shutdown(context.Background())
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow cross-origin requests for the frontend dev server
	},
}

// serveWs handles websocket requests from the peer.
func serveWs(hub *network.Hub, w http.ResponseWriter, r *http.Request, log *logger.Logger) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("Failed to upgrade websocket connection: %v", err)
		return
	}

	client := network.NewClient(hub, conn)
	client.Register()

	// Allow collection of memory referenced by the caller by doing all work in
	// new goroutines.
	go client.WritePump()
	go client.ReadPump()
}
