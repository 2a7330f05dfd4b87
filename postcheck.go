// Package postcheck scores forum post drafts against a fixed battery of
// heuristic rules and extracts page titles from loosely structured markup.
//
// This package contains domain types, the rule engine and interfaces following
// Ben Johnson's Standard Package Layout. Implementations that depend on
// third-party libraries live in subdirectories named after that dependency
// (e.g., goquery/, yaml/, etree/).
package postcheck
