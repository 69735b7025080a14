// Package encode writes paths and resolution results for people and tools.
//
// [Path] writes the dotted form that [token.Tokenize] reads, optionally with
// depth tags and colors. [Results] writes a list of resolutions as text,
// YAML or JSON.
package encode
