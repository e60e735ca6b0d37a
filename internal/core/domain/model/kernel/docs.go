// Package kernel provides the value objects shared by the job and company aggregates.
//
// The package includes:
//   - Handle: the short, URL-safe identifier of a company that jobs reference
//
// Values are immutable, validated at construction, and safe for concurrent use.
package kernel
