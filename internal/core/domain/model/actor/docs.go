// Package actor provides the Actor value object: the authenticated identity
// (user id plus role) on whose behalf lifecycle operations run. The domain
// only consumes the identity; extracting it from a request is an adapter
// concern.
package actor
