/*
Package track observes completed plays to build queryable statistics, an
append-only audit trail, and optional performance telemetry. Tracking is a
side observation: nothing in this package can change game state or fail the
pipeline. Every observer call is guarded; an observer that panics is marked
unhealthy and the facade degrades to the reduced counters it always maintains,
so Statistics and AuditTrail stay callable for the life of the game.
*/
package track
