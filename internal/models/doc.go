// Package models defines domain entities and persistence interfaces for the book bot.
//
// The package contains two categories of types:
//
// 1. Data Transfer Objects (DTOs): Lightweight structs representing external catalog data
//   - [Book] : One normalized result from the book catalog API, or one stored list entry
//
// 2. Persistent Entities: Database-backed models with full lifecycle management
//   - [List] : A named, per-user reading list
//   - [ListEntry] : One book stored in a list, unique by title within the list
//
// Persistent entities implement the [Model] interface providing ID generation, timestamps and validation.
// Storage operations over them live in the repositories package behind its ListStore interface.
package models
