// Package lsp demonstrates the Liskov Substitution Principle with rectangles and squares.
//
// Subtypes must be substitutable for their base types.
//
// LinkedSquare is the problem version. It embeds MutableRectangle and overrides
// SetWidth/SetHeight so both sides always match. Code written against Resizable
// expects width and height to be independent, and a LinkedSquare silently breaks
// that expectation. CheckSubstitution makes the broken promise visible.
//
// The solution drops the parent/child relationship. Rectangle and Square are
// siblings that share only what they really have in common: an area.
package lsp
