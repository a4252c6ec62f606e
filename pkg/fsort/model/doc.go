// Package model provides the data structures shared by the fsort driver and its hooks.
// It names the stages a line goes through and defines the hook interface used to observe them.
package model
