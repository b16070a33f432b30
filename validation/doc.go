// Package validation validates request structs via `validate` tags,
// reporting every missing or invalid field in one descriptive error.
package validation
