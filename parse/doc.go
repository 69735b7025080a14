// Package parse parses scope path expressions and the templates that
// contain them.
//
// # Usage
//
//	// Parse one path expression
//	p, err := parse.Path("../items.0")
//
//	// Parse a template
//	t, err := parse.Parse([]byte(`{{#each items}}{{./name}}{{/each}}`),
//		parse.Filename("list.tmpl"))
//
// Template syntax:
//
//	{{ path }}            reference
//	{{#name path}} ... {{/name}}  block
//	{{! text }}           comment
//	{{!-- text --}}       comment that may contain "}}"
//
// Paths in the result are exactly as written; resolving them against
// enclosing blocks is the job of the compile package.
//
// # Related Packages
//
//   - github.com/signadot/scopepath/token - path tokenization
//   - github.com/signadot/scopepath/compile - scope resolution
package parse
