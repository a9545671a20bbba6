package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/insightloop/governor/db"
	"github.com/insightloop/governor/govern"
	"github.com/insightloop/governor/internal/pathutil"
	"github.com/insightloop/governor/ledger"
	"github.com/insightloop/governor/session"
	"github.com/spf13/viper"
)

func governConfigFromViper() govern.Config {
	kindThresholds := map[string]float64{}
	_ = viper.UnmarshalKey("governor.confidence.kind_thresholds", &kindThresholds)

	return govern.Config{
		Confidence: govern.ConfidenceConfig{
			DefaultThreshold: viper.GetFloat64("governor.confidence.default_threshold"),
			KindThresholds:   kindThresholds,
		},
	}
}

func dbConfigFromViper() db.Config {
	return db.Config{
		Driver: viper.GetString("db.driver"),
		DSN:    viper.GetString("db.dsn"),
		SQLite: db.SQLiteConfig{
			WAL:           true,
			BusyTimeoutMs: 5000,
			ForeignKeys:   true,
		},
	}
}

func openTracker(ctx context.Context, log *slog.Logger) (*session.Tracker, error) {
	gdb, err := db.Open(ctx, dbConfigFromViper())
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(gdb); err != nil {
		return nil, err
	}
	tr := session.NewTracker(session.NewGormStore(gdb))
	if err := tr.Restore(ctx); err != nil {
		return nil, err
	}
	log.Debug("tracker_restored")
	return tr, nil
}

func openLedger(log *slog.Logger) (ledger.Store, ledger.Sink) {
	ledgerDSN := strings.TrimSpace(viper.GetString("ledger.dsn"))
	if ledgerDSN == "" {
		if home, err := os.UserHomeDir(); err == nil && strings.TrimSpace(home) != "" {
			ledgerDSN = filepath.Join(home, ".governor", "ledger.db")
		}
	}
	dsn, err := db.ResolveSQLiteDSN(ledgerDSN)
	if err != nil {
		log.Warn("ledger_dsn_error", "error", err.Error())
		return ledger.NoopStore{}, nil
	}
	store, err := ledger.NewSQLiteStore(dsn)
	if err != nil {
		log.Warn("ledger_store_error", "error", err.Error())
		return ledger.NoopStore{}, nil
	}

	jsonlPath := strings.TrimSpace(viper.GetString("ledger.jsonl_path"))
	if jsonlPath == "" {
		home, err := os.UserHomeDir()
		if err == nil && strings.TrimSpace(home) != "" {
			jsonlPath = filepath.Join(home, ".governor", "explain_audit.jsonl")
		}
	}
	jsonlPath = pathutil.ExpandHomePath(jsonlPath)

	var sink ledger.Sink
	if strings.TrimSpace(jsonlPath) != "" {
		s, err := ledger.NewJSONLSink(jsonlPath, viper.GetInt64("ledger.rotate_max_bytes"))
		if err != nil {
			log.Warn("ledger_sink_error", "error", err.Error())
		} else {
			sink = s
		}
	}
	return store, sink
}
