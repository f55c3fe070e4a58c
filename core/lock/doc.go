// Package lock provides the exclusive run lock used by the ingestion pipeline.
//
// Two implementations exist behind the Locker interface:
//
//   - LocalLocker keeps ownership in process memory. It is the default.
//   - RedisLocker uses SET NX with a random token and releases through a
//     compare-and-delete script, so several instances sharing one database
//     never refresh concurrently.
//
// New selects the backend from Config.
package lock
