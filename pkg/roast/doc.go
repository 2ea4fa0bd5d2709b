// Package roast turns two statistics summaries into comparative jokes.
//
// [BuildPrompt] and [SystemPrompt] form the generation request, [Parse]
// turns the free-text completion back into [Roast] records, and [Fillers]
// produces canned one-liners for a single profile without calling any
// service.
//
// # Completion Format
//
// The completion is expected to hold blank-line separated blocks, each with
// three labeled lines in any order:
//
//	Aspect: Commit Frequency
//	Winner: Sarah
//	Roast: ...
//
// Blocks missing a label are dropped. Parse fails only when no block
// survives.
package roast
