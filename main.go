package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/turdle/apps/go-server/internal/config"
	"github.com/robalobadob/turdle/apps/go-server/internal/corpus"
	"github.com/robalobadob/turdle/apps/go-server/internal/httpserver"
	"github.com/robalobadob/turdle/apps/go-server/internal/logging"
	"github.com/robalobadob/turdle/apps/go-server/internal/store"
	"github.com/robalobadob/turdle/apps/go-server/internal/words"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load(getEnv("CONFIG_FILE", "turdle.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logFile, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer logFile.Close()

	// A broken codec or generator makes every game unwinnable; refuse to start.
	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to build guess corpus")
	}
	c, err := corpus.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build guess corpus")
	}
	log.Info().Int("guesses", c.Len()).Int32("seed", c.Seed()).Msg("corpus ready")

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("failed to open database")
	}
	defer db.Close()
	if err := migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate database")
	}

	srv := httpserver.New(httpserver.Options{
		Config: cfg,
		Corpus: c,
		Store:  store.NewMemoryStore(),
		DB:     db,
	})
	log.Info().Str("port", cfg.Port).Msg("starting go-server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
