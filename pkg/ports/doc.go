/*
Package ports defines the driven ports (interfaces) for the play-resolution
pipeline.

These interfaces decouple the core from external implementations: the seedable
randomness source behind the special-situations calculator, the audit sinks a
caller may export trails to, and the tracker surface the orchestrator observes
plays through.
*/
package ports
