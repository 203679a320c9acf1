// Package sqlite provides a SQLite-based implementation of the report and
// field stores.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Both stores share a single database connection:
//
//   - ReportStore: reports, their samples, measurements and cyst results
//   - FieldStore: tracked fields and their aliases
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Each migration records its own version in
// schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.aaltjes/data/aaltjes.db
//
// # Thread Safety
//
// All operations are thread-safe. The store relies on SQLite locking in WAL
// mode; multi-row writes run in a transaction.
package sqlite
