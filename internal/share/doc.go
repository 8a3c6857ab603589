// Package share formats albums and whole collections into plain-text
// share payloads and optionally pushes them to an ntfy topic.
package share
