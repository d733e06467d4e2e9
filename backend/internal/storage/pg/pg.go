package pg

import (
	"context"
	"database/sql"
	"time"

	"github.com/itchan-dev/forum/backend/internal/utils"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/logger"
	sharedpg "github.com/itchan-dev/forum/shared/storage/pg"
)

// Per-call budget on top of whatever deadline the request context carries.
const queryTimeout = 5 * time.Second

// Querier abstracts *sql.DB and *sql.Tx.
type Querier = sharedpg.Querier

type Storage struct {
	db  *sql.DB
	ids utils.IdGenerator
}

func New(ctx context.Context, cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to database", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := sharedpg.Connect(ctx, cfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to database")
	return NewWithDB(db, utils.NewIdGenerator()), nil
}

// NewWithDB wraps an already opened connection pool.
func NewWithDB(db *sql.DB, ids utils.IdGenerator) *Storage {
	return &Storage{db: db, ids: ids}
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

func (s *Storage) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *Storage) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	return sharedpg.WithTx(ctx, s.db, fn)
}
