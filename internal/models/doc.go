// Package models defines the core domain models for santinho.
//
// # Models
//
//   - User: a registered account that can submit flyer posts
//   - Candidate: a political candidate referenced by posts
//   - Post: one photographic record of N flyers posted for a candidate
//
// Aggregate/view types used by the web layer:
//
//   - FeedItem: a post joined with its author and candidate names
//   - RankingEntry: a candidate with its flyer total
//
// # Design principles
//
//  1. IDs are UUID strings assigned by the storage layer at creation
//  2. Timestamps are Unix seconds, server-assigned and never mutated
//  3. Relationships use ID strings instead of pointers to avoid
//     circular references
package models
