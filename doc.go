// Package hfsm implements a hierarchical finite state machine engine: a
// tree of regions rooted at a single apex, where each node is a leaf, a
// composite (exactly one active child at a time, tracked by a fork
// record), or an orthogonal region (all children active simultaneously).
//
// The engine is driven by a single host goroutine, one tick at a time;
// Update and React must not be called concurrently with each other or
// with themselves.
package hfsm
