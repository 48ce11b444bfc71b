// Package flt reads the node hierarchy of OpenFlight (.flt) files.
//
// A file is a flat sequence of records, each starting with a big-endian
// opcode and length. Push and pop records open and close a nesting level;
// the decoder turns that into either a Tree (TreeBuilder) or an indented
// listing printed while scanning (LinePrinter). Only identifiers and the
// color name / material indices of faces are decoded.
package flt
