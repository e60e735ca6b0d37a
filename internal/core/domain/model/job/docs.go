// Package job provides the Job entity and the value objects used to create,
// partially update and filter jobs.
//
// The package includes:
//   - Job: a posting at a company, identified by a store-generated ID
//   - Equity: a fixed-point fraction in [0, 1], kept in its decimal text form
//   - Patch: a sparse set of field changes (title, salary, equity) where an
//     explicit nil clears salary or equity and an untouched field is left alone
//   - Filter: the optional title, minimum salary and has-equity criteria of a listing
//
// Key business rules:
//   - title is required, salary is never negative, equity lies in [0, 1]
//   - id and company handle never change after creation; Patch cannot express them
//   - a job always references a valid company handle
package job
