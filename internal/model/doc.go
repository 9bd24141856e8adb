package model

// Package model defines the domain data structures shared across the app:
// download requests, job status enums, the published job state snapshot,
// and history entries. Structures are designed for direct rendering by a
// presentation layer and explicit state transitions.
