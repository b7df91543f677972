// Package svg parses SVG icon files into mutable documents, validates and
// cleans them for embedding, and serializes their inner markup.
//
// Cleanup strips everything that has no visual effect inside a sprite or
// icon font: XML declarations, comments, editor metadata, root dimensions
// that duplicate the view box, and attribute-less wrapper groups.
package svg
