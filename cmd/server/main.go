package main

import (
	"encoding/json"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/user/pixel-clicker/config"
	"github.com/user/pixel-clicker/internal/game"
	"github.com/user/pixel-clicker/internal/types"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Parse command line flags
	configPath := flag.String("config", "./config/config.json", "Path to configuration file")
	flag.Parse()

	// Set up logger
	logger := setupLogger()
	defer logger.Sync()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize game manager
	gameManager := game.NewGameManager(cfg)
	gameManager.SetLogger(logger)
	gameManager.SetNotifier(&logNotifier{logger: logger})

	// Start the periodic game loops
	scheduler := game.NewTickScheduler(gameManager, time.Duration(cfg.Game.TickIntervalMs)*time.Millisecond)
	scheduler.Start()
	defer scheduler.Stop()

	// Set up HTTP server
	server := setupHTTPServer(cfg, gameManager, logger)

	// Start HTTP server
	go func() {
		logger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server stopped", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	waitForShutdown(logger)
}

// logNotifier surfaces game notifications through the structured log.
type logNotifier struct {
	logger *zap.Logger
}

func (n *logNotifier) Notify(kind, message string) {
	n.logger.Info("Game notification",
		zap.String("kind", kind),
		zap.String("message", message))
}

func setupLogger() *zap.Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	logger, _ := config.Build()
	return logger
}

// statusFor maps transition rejections onto HTTP statuses. Unknown
// resources respond 404, every other rejection responds 409.
func statusFor(err error) int {
	if errors.Is(err, game.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusConflict
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), map[string]string{"error": err.Error()})
}

func setupHTTPServer(cfg config.Config, gameManager *game.GameManager, logger *zap.Logger) *http.Server {
	// Create router
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	router.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, gameManager.State())
	})

	router.Get("/lastsave", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]int64{"last_saved_ms": gameManager.LastSaved()})
	})

	router.Post("/click", func(w http.ResponseWriter, r *http.Request) {
		outcome, err := gameManager.Click()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, outcome)
	})

	router.Post("/upgrades", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Kind     types.UpgradeKind `json:"kind"`
			Cost     float64           `json:"cost"`
			Currency types.Currency    `json:"currency"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if err := gameManager.BuyUpgrade(req.Kind, req.Cost, req.Currency); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "purchased"})
	})

	router.Post("/buildings", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Kind types.BuildingKind `json:"kind"`
			Cost float64            `json:"cost"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if err := gameManager.BuyBuilding(req.Kind, req.Cost); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "purchased"})
	})

	router.Post("/prestige", func(w http.ResponseWriter, r *http.Request) {
		points, err := gameManager.Prestige()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"points_gained": points})
	})

	router.Post("/reset", func(w http.ResponseWriter, r *http.Request) {
		if err := gameManager.Reset(); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	})

	router.Post("/pets/summon", func(w http.ResponseWriter, r *http.Request) {
		pet, err := gameManager.SummonPet()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, pet)
	})

	router.Post("/pets/{id}/feed", func(w http.ResponseWriter, r *http.Request) {
		if err := gameManager.FeedPet(chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "fed"})
	})

	router.Post("/pets/{id}/activate", func(w http.ResponseWriter, r *http.Request) {
		if err := gameManager.ActivatePet(chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "activated"})
	})

	router.Post("/pets/{id}/abilities/{abilityID}/use", func(w http.ResponseWriter, r *http.Request) {
		if err := gameManager.UsePetAbility(chi.URLParam(r, "id"), chi.URLParam(r, "abilityID")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "used"})
	})

	router.Post("/artifacts/forge", func(w http.ResponseWriter, r *http.Request) {
		artifact, err := gameManager.ForgeArtifact()
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, artifact)
	})

	router.Post("/artifacts/{id}/equip", func(w http.ResponseWriter, r *http.Request) {
		if err := gameManager.EquipArtifact(chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "toggled"})
	})

	router.Post("/artifacts/{id}/upgrade", func(w http.ResponseWriter, r *http.Request) {
		if err := gameManager.UpgradeArtifact(chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "upgraded"})
	})

	router.Post("/guild/join", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			GuildID string `json:"guild_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if err := gameManager.JoinGuild(req.GuildID); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "joined"})
	})

	router.Post("/guild/create", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if err := gameManager.CreateGuild(req.Name, req.Description); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "created"})
	})

	router.Post("/tournaments/{id}/join", func(w http.ResponseWriter, r *http.Request) {
		if err := gameManager.JoinTournament(chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "joined"})
	})

	router.Post("/gifts", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			PlayerID string `json:"player_id"`
			GiftType string `json:"gift_type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request", http.StatusBadRequest)
			return
		}
		if err := gameManager.SendGift(req.PlayerID, req.GiftType); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "sent"})
	})

	router.Post("/battlepass/rewards/{id}/claim", func(w http.ResponseWriter, r *http.Request) {
		if err := gameManager.ClaimBattlePassReward(chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "claimed"})
	})

	router.Post("/battlepass/premium", func(w http.ResponseWriter, r *http.Request) {
		if err := gameManager.UpgradeToPremium(); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "upgraded"})
	})

	router.Post("/worldevents/{id}/participate", func(w http.ResponseWriter, r *http.Request) {
		if err := gameManager.ParticipateWorldEvent(chi.URLParam(r, "id")); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "contributed"})
	})

	router.Post("/worldevents/{id}/rewards/{index}/claim", func(w http.ResponseWriter, r *http.Request) {
		index, err := strconv.Atoi(chi.URLParam(r, "index"))
		if err != nil {
			http.Error(w, "Invalid reward index", http.StatusBadRequest)
			return
		}
		if err := gameManager.ClaimWorldEventReward(chi.URLParam(r, "id"), index); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "claimed"})
	})

	// Create HTTP server
	return &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}
}

func waitForShutdown(logger *zap.Logger) {
	// Set up channel for shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for shutdown signal
	sig := <-sigChan
	logger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	logger.Info("Shutting down")
}
