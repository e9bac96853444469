package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	kconf "github.com/cartload/cartload/pkg/configs/server"
	kpg "github.com/cartload/cartload/pkg/domain/cartload/db/postgres"
	"github.com/cartload/cartload/pkg/loader"
)

func main() {

	configPath := flag.String("config-path", "", "server config path (optional)")
	dotenv := flag.String("dotenv", "", "path to .env file overriding the config (optional)")
	file := flag.String("file", "", "CSV file to import")
	database := flag.String("database", "", "connection string for PostgreSQL. overrides the config")
	truncate := flag.Bool("truncate", false, "empty the sales tables before loading")
	batchSize := flag.Int("batch-size", 0, "records per bulk insert. overrides the config")
	trimOutliers := flag.Bool("trim-outliers", false, "drop records with outlying total values")
	loglevel := flag.String("loglevel", "info", "log level. debug|info|warn|error")
	logfile := flag.String("logfile", "", "also write logs to this file (optional)")
	flag.Parse()

	logger := newLogger(*loglevel, *logfile)

	if *file == "" {
		logger.Fatal("-file is required")
	}

	if *dotenv != "" {
		kconf.LoadDotEnv(*dotenv)
	} else {
		kconf.LoadDotEnv()
	}

	dburi := *database
	batch := *batchSize
	outliers := *trimOutliers
	if *configPath != "" {
		conf, err := kconf.LoadServerConfig(*configPath)
		if err != nil {
			logger.Fatalf("can not read configration: %s", err)
		}
		conf = conf.WithEnvOverrides()
		if dburi == "" {
			dburi = conf.Database()
		}
		if batch <= 0 {
			batch = conf.Import().BatchSize()
		}
		outliers = outliers || conf.Import().TrimOutliers()
	} else if dburi == "" {
		if v, ok := os.LookupEnv(kconf.EnvDatabase); ok {
			dburi = v
		}
	}
	if dburi == "" {
		logger.Fatalf("no database is given. set -database, -config-path or %s", kconf.EnvDatabase)
	}

	ctx := context.Background()
	db, err := kpg.New(ctx, dburi)
	if err != nil {
		logger.Fatalf("can not connect to database: %s", err)
	}
	defer db.Close()

	if err := db.Schema().Ensure(ctx); err != nil {
		logger.Fatalf("can not prepare database schema: %s", err)
	}

	im := loader.New(
		db.Order(),
		loader.WithBatchSize(batch),
		loader.WithTruncate(*truncate),
		loader.WithOutlierTrimming(outliers),
		loader.WithLogger(logger),
	)

	result, err := im.ImportFile(ctx, *file)
	if err != nil {
		logger.Fatalf("import failed: %s", err)
	}

	fmt.Print(result.Render())
}

func newLogger(loglevel string, logfile string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level, err := logrus.ParseLevel(loglevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if logfile != "" {
		f, err := os.OpenFile(logfile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.Warnf("can not open log file %s: %s", logfile, err)
		} else {
			logger.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	return logger
}
