// internal/config/validator.go
//
// Thin wrapper around go-playground/validator.
//
// Context
// -------
// The loader calls `validateStruct` immediately after it unmarshals the
// merged Koanf tree.  Any validation error aborts startup, so the binary
// never runs with a malformed tracker mode or a blank single_vars entry.
//
// Notes
// -----
//   • Oxford commas, two spaces after periods.

package config

import "github.com/go-playground/validator/v10"

var v = validator.New()

// validateStruct returns the validation error, or nil on success.
func validateStruct(s any) error {
	return v.Struct(s)
}
