package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"delivery-agent/config"
	_ "delivery-agent/docs" // Swagger docs
	"delivery-agent/internal/agent"
	"delivery-agent/internal/agent/memory"
	"delivery-agent/internal/agent/orchestrator"
	"delivery-agent/internal/agent/tools"
	chatUC "delivery-agent/internal/chat/usecase"
	"delivery-agent/internal/httpserver"
	"delivery-agent/internal/middleware"
	"delivery-agent/internal/model"
	recordRepo "delivery-agent/internal/record/repository"
	sheetsRepo "delivery-agent/internal/record/repository/sheets"
	shipmentRepo "delivery-agent/internal/shipment/repository/memory"
	"delivery-agent/pkg/gsheets"
	"delivery-agent/pkg/llmprovider"
	"delivery-agent/pkg/log"
)

// @title       A.B Deliveries Agent API
// @description Hebrew customer-service chat agent for A.B Deliveries with shipment lookup and customer records.
// @version     1
// @host        localhost:3000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting A.B Deliveries agent...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Error(ctx, "Failed to initialize LLM providers: ", err)
		return
	}
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider ready: %s (%s)", p.Name(), p.Model())
	}
	llm := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 60*time.Second),
	}, logger)

	// 4. Backing stores
	customers, chatLogs := initRecordStores(ctx, logger, cfg.GoogleSheets)
	shipments := shipmentRepo.New(toShipments(cfg.Shipments))

	// 5. Tools
	registry := agent.NewToolRegistry()
	for _, t := range []agent.Tool{
		tools.NewCustomerRecordTool(customers),
		tools.NewDeliveryStatusTool(shipments),
		tools.NewTurnLoggerTool(chatLogs, logger),
	} {
		if err := registry.Register(t); err != nil {
			logger.Error(ctx, "Failed to register tool: ", err)
			return
		}
	}

	// 6. Agent core
	store := memory.NewStore(memory.Config{
		MaxConversations: cfg.Memory.MaxConversations,
		TTL:              cfg.Memory.TTL,
	}, logger)
	orch := orchestrator.New(llm, registry, store, logger, orchestrator.Config{
		StepTimeout:     cfg.Agent.StepTimeout,
		MaxHistoryTurns: cfg.Memory.MaxHistoryTurns,
		Temperature:     cfg.LLM.Temperature,
		Timezone:        cfg.Agent.Timezone,
	})
	uc := chatUC.New(logger, orch, store, registry, cfg.LoggerTask.Timeout)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  middleware.New(logger, cfg.RateLimit),
		ChatUseCase: uc,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// initRecordStores connects the spreadsheet when configured. Without it the
// repositories report record.ErrNotConfigured and the tools degrade.
func initRecordStores(ctx context.Context, logger log.Logger, cfg config.GoogleSheetsConfig) (recordRepo.CustomerRepository, recordRepo.ChatLogRepository) {
	opt := recordRepo.SheetOptions{
		SpreadsheetID: cfg.SpreadsheetID,
		CustomerSheet: cfg.CustomerSheet,
		ChatLogSheet:  cfg.ChatLogSheet,
	}

	var client sheetsRepo.ValuesClient
	switch {
	case cfg.SpreadsheetID == "":
		logger.Warn(ctx, "Google Sheets skipped: GOOGLE_SPREADSHEET_ID is missing, chat logs go to the console")
	case cfg.ServiceAccountKey != "":
		c, err := gsheets.NewClientFromCredentialsJSON(ctx, []byte(cfg.ServiceAccountKey))
		if err != nil {
			logger.Warnf(ctx, "Google Sheets not available: %v", err)
			break
		}
		client = c
	case cfg.CredentialsPath != "":
		c, err := gsheets.NewClientFromCredentialsFile(ctx, cfg.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Sheets not available: %v", err)
			break
		}
		client = c
	default:
		logger.Warn(ctx, "Google Sheets skipped: no service account key configured")
	}
	if client != nil {
		logger.Infof(ctx, "Google Sheets initialized (spreadsheet %s)", cfg.SpreadsheetID)
	}

	return sheetsRepo.NewCustomerRepository(client, opt, logger), sheetsRepo.NewChatLogRepository(client, opt, logger)
}

func toShipments(rows []config.ShipmentConfig) []model.Shipment {
	out := make([]model.Shipment, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.Shipment{
			ID:                r.ID,
			Status:            r.Status,
			Location:          r.Location,
			EstimatedDelivery: r.EstimatedDelivery,
			LastUpdate:        r.LastUpdate,
		})
	}
	return out
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
