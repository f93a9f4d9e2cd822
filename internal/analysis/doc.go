// Package analysis turns a month of diary entries into generation prompts and
// turns the free-text answers back into typed results.
//
// Model output has no schema, so every parser is a small line-oriented state
// machine that tolerates formatting drift. A blank answer is the only input
// they reject, with [ErrParse].
package analysis
