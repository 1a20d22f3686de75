package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/renato0307/gitwalk/internal/config"
	"github.com/renato0307/gitwalk/internal/domain"
	"github.com/renato0307/gitwalk/internal/logging"
	"github.com/renato0307/gitwalk/internal/ports"
)

// SQLiteStore implements ports.StateStore with one SQLite file per repository
type SQLiteStore struct {
	db   *gorm.DB
	path string
}

// Verify interface compliance at compile time
var _ ports.StateStore = (*SQLiteStore)(nil)

// NewSQLiteStore opens (creating if needed) the store file at dbPath
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dbPath = config.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")

	if err := db.AutoMigrate(&CommitModel{}, &StateKeyModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate store schema: %w", err)
	}

	// Single-process tool: one connection is enough
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	logging.Logger.Debug("State store opened", "path", dbPath)
	return &SQLiteStore{db: db, path: dbPath}, nil
}

// Path returns the store file location
func (s *SQLiteStore) Path() string {
	return s.path
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// LoadIndex implements CommitIndexStore.LoadIndex
func (s *SQLiteStore) LoadIndex(ctx context.Context) (domain.CommitIndex, error) {
	var marker StateKeyModel
	var rows []CommitModel

	err := withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where(&StateKeyModel{Name: domain.StoreKeyCommits}).First(&marker).Error; err != nil {
				return err
			}
			return tx.Order("position asc").Find(&rows).Error
		})
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CommitIndex{}, domain.ErrMissingIndex
		}
		return domain.CommitIndex{}, fmt.Errorf("failed to load commit index: %w", err)
	}

	expected, err := strconv.Atoi(marker.Value)
	if err != nil || expected != len(rows) {
		logging.Logger.Warn("Commit index marker does not match rows", "marker", marker.Value, "rows", len(rows))
		return domain.CommitIndex{}, fmt.Errorf("%w: stored index is inconsistent", domain.ErrMissingIndex)
	}

	idx, err := commitModelsToDomain(rows)
	if err != nil {
		logging.Logger.Warn("Stored commit index is corrupt", "error", err)
		return domain.CommitIndex{}, fmt.Errorf("%w: %v", domain.ErrMissingIndex, err)
	}

	logging.Logger.Debug("Commit index loaded", "commits", idx.Len())
	return idx, nil
}

// SaveIndex implements CommitIndexStore.SaveIndex.
// The previous index is replaced atomically.
func (s *SQLiteStore) SaveIndex(ctx context.Context, idx domain.CommitIndex) error {
	models := domainToCommitModels(idx)

	return withRetry(func() error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("1 = 1").Delete(&CommitModel{}).Error; err != nil {
				return fmt.Errorf("failed to clear commits: %w", err)
			}
			if len(models) > 0 {
				if err := tx.CreateInBatches(models, 500).Error; err != nil {
					return fmt.Errorf("failed to store commits: %w", err)
				}
			}
			return upsertKey(tx, domain.StoreKeyCommits, strconv.Itoa(len(models)))
		})
	}, 3)
}

// LoadCursor implements CursorStore.LoadCursor
func (s *SQLiteStore) LoadCursor(ctx context.Context) (*int, error) {
	var key StateKeyModel
	err := withRetry(func() error {
		return s.db.WithContext(ctx).Where(&StateKeyModel{Name: domain.StoreKeyCursor}).First(&key).Error
	}, 3)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load cursor: %w", err)
	}

	cursor, err := strconv.Atoi(key.Value)
	if err != nil {
		return nil, fmt.Errorf("stored cursor %q is not an integer: %w", key.Value, err)
	}
	return &cursor, nil
}

// SaveCursor implements CursorStore.SaveCursor
func (s *SQLiteStore) SaveCursor(ctx context.Context, cursor int) error {
	return withRetry(func() error {
		return upsertKey(s.db.WithContext(ctx), domain.StoreKeyCursor, strconv.Itoa(cursor))
	}, 3)
}

// ClearCursor implements CursorStore.ClearCursor
func (s *SQLiteStore) ClearCursor(ctx context.Context) error {
	return withRetry(func() error {
		return s.db.WithContext(ctx).Where(&StateKeyModel{Name: domain.StoreKeyCursor}).Delete(&StateKeyModel{}).Error
	}, 3)
}

func upsertKey(tx *gorm.DB, name, value string) error {
	model := StateKeyModel{Name: name, Value: value}
	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&model).Error
	if err != nil {
		return fmt.Errorf("failed to write key %s: %w", name, err)
	}
	return nil
}

// withRetry retries fn when SQLite reports the database as busy or locked
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}

// SQLiteStoreOpener implements ports.StateStoreOpener for a state directory
type SQLiteStoreOpener struct {
	stateDir string
}

// Verify interface compliance at compile time
var _ ports.StateStoreOpener = (*SQLiteStoreOpener)(nil)

// NewSQLiteStoreOpener creates an opener placing store files in stateDir
func NewSQLiteStoreOpener(stateDir string) *SQLiteStoreOpener {
	return &SQLiteStoreOpener{stateDir: stateDir}
}

// Open implements StateStoreOpener.Open
func (o *SQLiteStoreOpener) Open(repoPath string) (ports.StateStore, error) {
	return NewSQLiteStore(config.StorePath(o.stateDir, repoPath))
}
