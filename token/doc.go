// Package token splits scope path expressions such as `a.b`, `../x`,
// `./[field name]` or `@root.items` into positioned tokens.
//
// [Tokenize] never copies source text: every token's Text is a slice of the
// input. A path that starts with scope markers yields a [TLeadIn] token
// covering the whole marker prefix, followed by one [TStay] or [TUp] token per
// marker.
package token
