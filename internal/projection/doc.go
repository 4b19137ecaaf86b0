// Package projection defines the domain types for strikeout projections,
// the contract with the external projection engine, and the display
// formatting for a single projection. The engine itself is opaque: this
// package only knows how to ask it for a projection, contain its failures,
// and render whatever it returned.
package projection
