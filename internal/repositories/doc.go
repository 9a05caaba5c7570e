// Package repositories implements SQLite persistence for reading lists.
//
// Lists are modeled as a logical partition key (owner_id, name) inside one
// unified pair of tables rather than a physical table per list, with a
// composite unique index enforcing per-owner list identity and per-list
// title uniqueness. All statements are parameterized; list and entry names
// never reach the database as SQL identifiers.
//
// Key Implementations:
//   - [ListRepository] : list and entry persistence implementing [ListStore]
//
// Sequence numbers provide stable, human-readable insertion ordering
// (e.g., entry #3 of a list) independent of UUIDs and creation timestamps.
// The [NextSequence] function atomically increments per-table sequence
// counters in dedicated sequence tables.
package repositories
