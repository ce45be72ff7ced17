package deps

import (
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/resonanse/resonanse_api/config"
	"github.com/resonanse/resonanse_api/internal/db"
	"github.com/resonanse/resonanse_api/internal/http/kudago"
	"github.com/resonanse/resonanse_api/util/storage"
)

type Dependencies struct {
	DB      *db.DB
	Storage *storage.LocalStore
	KudaGo  *kudago.Client
}

func New(cfg *config.Config) *Dependencies {
	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Panicln("failed to connect to database", "error", err)
	}

	store, err := storage.NewLocalStore(cfg.StorageDir)
	if err != nil {
		log.Panicln("failed to initialize resource storage", "error", err)
	}

	deps := Dependencies{
		DB:      database,
		Storage: store,
		KudaGo:  kudago.NewClient(cfg.KudaGoBaseURL),
	}
	return &deps
}

func (d *Dependencies) Pool() *pgxpool.Pool {
	return d.DB.Pool()
}
