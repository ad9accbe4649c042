// Package store provides the persistence boundary for the daybook corpus.
//
// A store holds one opaque document per address; decoding belongs to the
// caller so that corpus-wide scans can attribute parse failures to single
// addresses and keep going. Two backends implement the same interface:
//
//   - FS: one <address>.json file per record under a root directory.
//     Saves go through a temp file and a rename so a crash mid-write
//     never leaves a record mixing old and new content.
//   - SQLite: one table keyed by address, single connection, WAL mode.
//     Saves are transactional.
//
// Which backend serves a given tree is a configuration choice; the
// curation pipeline only ever sees the interface. The design assumes at
// most one curator process per address at a time; the stores do not
// arbitrate concurrent writers beyond whole-document replacement.
package store
