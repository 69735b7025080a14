// Package eval renders compiled templates against YAML or JSON data.
//
// Every reference is compiled once into a [Lookup], an expr program that
// walks the data from the root, from the value of an enclosing block or from
// a keyword variable such as @index. Blocks push one [Frame] each while
// their body renders, so a depth tagged path finds its frame by counting
// from the innermost one.
//
// # Related Packages
//
//   - github.com/signadot/scopepath/compile - resolves references and tags depths
//   - github.com/signadot/scopepath/spath - path resolution
package eval
