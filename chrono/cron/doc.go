// Package cron parses standard 5-field cron expressions and computes next run times.
//
// Schedules are evaluated on the wall clock of the reference time's location,
// so "0 0 * * *" means local midnight for a time.Local reference. The dateutil
// package uses it for the time remaining until midnight.
package cron
