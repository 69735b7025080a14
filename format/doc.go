// Package format names the output formats of scopepath tools.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	if f == format.YAMLFormat { ... }
//
// # Related Packages
//
//   - github.com/signadot/scopepath/encode - write paths and results
package format
