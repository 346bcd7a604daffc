package main

import (
	"context"
	"math/rand"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/saeidalz13/shipkombat/api"
	"github.com/saeidalz13/shipkombat/db"
	"github.com/saeidalz13/shipkombat/db/sqlc"
	"github.com/saeidalz13/shipkombat/internal/config"
	mb "github.com/saeidalz13/shipkombat/models/battleship"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           cfg.LogLevel,
		Prefix:          "shipkombat",
	})

	seed := time.Now().UnixNano()
	if cfg.HasSeed {
		seed = cfg.Seed
	}
	logger.Debug("seeding automated player", "seed", seed)

	console := api.NewConsole(os.Stdin, os.Stdout)
	game, err := mb.NewGame(
		console,
		mb.WithRandom(rand.New(rand.NewSource(seed))),
		mb.WithDisplay(console),
		mb.WithLogger(logger),
	)
	if err != nil {
		panic(err)
	}

	console.Greet()
	state, err := game.Play()
	if err != nil {
		// closed input ends the match without a winner
		logger.Warn("match aborted", "err", err, "state", state)
		return
	}

	if !cfg.AnalyticsEnabled() {
		return
	}

	psql := db.MustConnectToDb(cfg.DatabaseURL, db.DefaultMigrationDir)
	defer psql.Close()
	dbManager := sqlc.NewDbManager(psql)

	ctx, cancel := context.WithTimeout(context.Background(), sqlc.QuerierCtxTimeout)
	defer cancel()
	if err := dbManager.Analytics.RecordMatch(ctx, game.Summary()); err != nil {
		logger.Error("failed to record match", "err", err)
		return
	}
	logger.Info("match recorded", "game", game.Code())

	played, err := dbManager.Analytics.GetMatchesPlayedCount(ctx)
	if err != nil {
		logger.Error("failed to count matches", "err", err)
		return
	}
	userWins, err := dbManager.Analytics.GetWinsCount(ctx, mb.WinnerUser)
	if err != nil {
		logger.Error("failed to count wins", "err", err)
		return
	}
	logger.Info("match history", "played", played, "user_wins", userWins)
}
