package server

import (
	"context"

	"userorders/internal/database"
	"userorders/internal/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Store bundles the repositories selected by DATABASE_URL.
type Store struct {
	Users  repositories.UserRepository
	Orders repositories.OrderRepository
	DB     *gorm.DB // nil for the in-memory store
}

// OpenStore connects to dsn and migrates the schema, or builds the in-memory
// repositories when dsn is database.MemoryDSN.
func OpenStore(ctx context.Context, dsn string, log *zap.Logger) (*Store, error) {
	if dsn == database.MemoryDSN {
		mem := repositories.NewMockUserRepository()
		log.Warn("using in-memory storage; data is lost on exit")
		return &Store{Users: mem, Orders: mem}, nil
	}

	db, err := database.Open(ctx, dsn, log)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		_ = database.Close(db)
		return nil, err
	}
	return &Store{
		Users:  repositories.NewGORMUserRepository(db),
		Orders: repositories.NewGORMOrderRepository(db),
		DB:     db,
	}, nil
}

// Ping checks the database connection. The in-memory store is always reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.DB == nil {
		return nil
	}
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the database connection, if any.
func (s *Store) Close() error {
	if s.DB == nil {
		return nil
	}
	return database.Close(s.DB)
}
