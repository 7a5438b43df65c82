// Package tui is a terminal preview of the toast and carousel controllers.
//
// The controllers run unchanged: timers go through a sched.Scheduler whose
// dispatcher sends a message to the bubbletea program, so toast expiry and
// autoplay ticks execute inside Update like key presses do.
package tui
