// Package scheduler builds weekly execution programs from work packages,
// derives mandatory support tasks, levels trade capacity, detects resource
// conflicts, splits oversized packages across days and drives the program
// lifecycle through the workflow registry.
package scheduler
