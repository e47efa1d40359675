// File: doc.go
// Title: Package Documentation for contentx
// Description: Package contentx provides content-oriented text helpers:
//              markup stripping, excerpts, word counts, and reading-time
//              estimates.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-02-08
// Modified: 2025-02-08
//
// Change History:
// - 2025-02-08 v0.1.0: Initial package documentation

// Package contentx provides higher-level content processing for textkit.
//
// The helpers compose the stringx transforms for the common publishing
// tasks: turning stored markup into a readable preview, counting words the
// way an editor would, and estimating reading time.
//
//	preview := contentx.Excerpt("<p>Long article body…</p>", 120, true)
//	words := contentx.WordCount(body)
//	estimate := contentx.ReadingTime(body, contentx.DefaultWordsPerMinute)
//	fmt.Printf("%d min %d s", estimate.Minutes, estimate.Seconds)
package contentx
