package persist

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/config"
	"github.com/redis/go-redis/v9"
)

// New builds the persisters cfg asks for. Storage type "none" with no
// redis address yields an empty Multi.
func New(ctx context.Context, cfg config.Storage) (*Multi, error) {
	m := NewMulti()
	switch cfg.Type {
	case "", "none":
	case "fs":
		store, err := NewFileBlobStore(filepath.Join(cfg.DataDir, "snapshots"))
		if err != nil {
			return nil, err
		}
		m.members = append(m.members, NewBlobPersister(store, cfg.Prefix))
	case "s3":
		if cfg.S3Bucket == "" {
			return nil, fmt.Errorf("s3 storage requires SNAPSHOT_S3_BUCKET")
		}
		store, err := NewS3BlobStore(ctx, S3Config{Bucket: cfg.S3Bucket, Region: cfg.S3Region, Endpoint: cfg.S3Endpoint})
		if err != nil {
			return nil, err
		}
		m.members = append(m.members, NewBlobPersister(store, cfg.Prefix))
	case "gcs":
		if cfg.GCSBucket == "" {
			return nil, fmt.Errorf("gcs storage requires SNAPSHOT_GCS_BUCKET")
		}
		store, err := newGCSBlobStore(ctx, cfg.GCSBucket)
		if err != nil {
			return nil, err
		}
		m.members = append(m.members, NewBlobPersister(store, cfg.Prefix))
	case "sqlite":
		dsn := cfg.DatabaseURL
		if dsn == "" {
			dsn = filepath.Join(cfg.DataDir, "snapshots.db")
		}
		p, err := openSQL(ctx, SQLite, dsn)
		if err != nil {
			return nil, err
		}
		m.members = append(m.members, p)
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("postgres storage requires DATABASE_URL")
		}
		p, err := openSQL(ctx, Postgres, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		m.members = append(m.members, p)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		m.members = append(m.members, NewRedisPersister(client, cfg.Prefix, cfg.RedisTTL))
	}
	return m, nil
}

func openSQL(ctx context.Context, dialect Dialect, dsn string) (*SQLPersister, error) {
	db, err := sql.Open(dialect.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialect.DriverName(), err)
	}
	if dialect == SQLite {
		db.SetMaxOpenConns(1)
	}
	p, err := NewSQLPersister(ctx, db, dialect)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return p, nil
}
