package main

import (
	"fmt"
	"log/slog"
	"os"

	log "github.com/charmbracelet/log"

	"github.com/veneS-Sudo/MiniBank/infra"
	infraprovider "github.com/veneS-Sudo/MiniBank/infra/provider"
	infrarepo "github.com/veneS-Sudo/MiniBank/infra/repository"
	"github.com/veneS-Sudo/MiniBank/pkg/config"
	accountsvc "github.com/veneS-Sudo/MiniBank/pkg/service/account"
	authsvc "github.com/veneS-Sudo/MiniBank/pkg/service/auth"
	exchangesvc "github.com/veneS-Sudo/MiniBank/pkg/service/exchange"
	transfersvc "github.com/veneS-Sudo/MiniBank/pkg/service/transfer"
	usersvc "github.com/veneS-Sudo/MiniBank/pkg/service/user"
	"github.com/veneS-Sudo/MiniBank/webapi"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.OpenDatabase(cfg.DB, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	newUow := infrarepo.NewFactory(db)
	rates := infraprovider.NewHTTPRateProvider(cfg.Rates, logger)
	converter := exchangesvc.New(rates, logger)

	app := webapi.SetupApp(cfg, webapi.Services{
		Accounts:  accountsvc.New(newUow, logger),
		Users:     usersvc.New(newUow, logger),
		Auth:      authsvc.New(newUow, cfg.Jwt, logger),
		Transfers: transfersvc.New(newUow, converter, logger),
		Converter: converter,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server", "env", cfg.Env, "address", addr)
	return app.Listen(addr)
}
