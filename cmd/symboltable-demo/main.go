package main

import (
	"flag"
	"fmt"
	"github.com/gostonefire/symboltable"
	"github.com/gostonefire/symboltable/bst"
	"github.com/gostonefire/symboltable/crt"
	"github.com/gostonefire/symboltable/hashfunc"
	"github.com/gostonefire/symboltable/internal/conf"
	"github.com/gostonefire/symboltable/internal/logutil"
	"go.uber.org/zap"
	"os"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML configuration file, defaults are used if empty")
	flag.Parse()

	if err := run(*configPath); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) (err error) {
	cfg, err := conf.Load(configPath)
	if err != nil {
		return
	}

	logger, err := logutil.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return
	}
	defer func() { _ = logger.Sync() }()

	technique, err := cfg.CollisionResolutionTechnique()
	if err != nil {
		return
	}

	hmConf := symboltable.Conf{
		TableSize:                    cfg.HashMap.TableSize,
		CollisionResolutionTechnique: technique,
		Logger:                       logger,
	}

	intMap, info, err := symboltable.NewHashMap[hashfunc.IntKey, int](hmConf)
	if err != nil {
		return
	}
	logger.Info("hash map created",
		zap.String("technique", crt.TechniqueName(info.CollisionResolutionTechnique)),
		zap.Int64("buckets", info.NumberOfBuckets),
	)

	if err = testIntegers(intMap, logger); err != nil {
		return
	}
	if err = logStat(intMap, logger); err != nil {
		return
	}

	stringMap, _, err := symboltable.NewHashMap[hashfunc.StringKey, int](hmConf)
	if err != nil {
		return
	}
	if err = testStrings(stringMap, logger); err != nil {
		return
	}

	err = testOrdered(symboltable.NewOrderedMap[int, string](bst.WithLogger(logger)), logger)
	return
}

func logStat[K hashfunc.Key[K], V any](hashMap *symboltable.HashMap[K, V], logger *zap.Logger) (err error) {
	stat, err := hashMap.Stat(false)
	if err != nil {
		return
	}

	logger.Info("hash map stat",
		zap.Int64("records", stat.Records),
		zap.Int64("deletedRecords", stat.DeletedRecords),
		zap.Int64("longestBucket", stat.LongestBucket),
	)
	return
}
