// Package render turns engine state into plain text for the terminal
// shell: a red-black tree as an indented outline, a tree Change as a step
// list, a shortest path as an arrow chain and a graph as a node/edge listing.
//
// Nesting uses github.com/kr/text to indent every line of a child block, the
// same way nested structures are stringified elsewhere in the stack.
//
// Every function is pure: it reads the structures it is given and never
// mutates them.
package render
