// Package config loads the application configuration.
//
// Values come from the environment, optionally seeded from a .env file, with
// defaults taken from the `default` struct tags. Keys map to variables by
// replacing dots with underscores: database.driver is DATABASE_DRIVER,
// pipeline.batch_size is PIPELINE_BATCH_SIZE.
//
// # Sections
//
//   - Server, Log, Database, Storage: transport and infrastructure
//   - Source, Exchange: the two external data sources and their timeouts
//   - Pipeline: ingestion batch size and concurrency
//   - Report: cache backend (storage or file)
//   - Lock: optional Redis address for the run lock
//   - Metrics: Prometheus exposition
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
