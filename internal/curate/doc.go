// Package curate implements the daybook curation pipeline.
//
// Content moves through four stages, each a batch operation over the
// record store:
//
//  1. Scaffold materializes one empty record per corpus address, so
//     every date is addressable before any curation happens.
//  2. An external sourcing process fills the intake pools with
//     candidates; SeedIntake creates or pre-seeds a pool by hand.
//  3. Promote merges selected intake candidates into the curated record
//     under the category caps. This is the only mutation path for
//     curated content, and it gates every write on the core rule: a
//     record with an empty primary category is never persisted.
//  4. Audit scans the whole store and reports every invariant
//     violation without mutating anything.
//
// MigrateSchema sits outside the flow: an idempotent, partial-failure
// tolerant reshaping of legacy records into the current shape, run once
// per schema change.
//
// All operations are synchronous single-process batch runs. Mutation is
// whole-record replacement through the store, so there is nothing to
// lock as long as one curator works an address at a time.
package curate
