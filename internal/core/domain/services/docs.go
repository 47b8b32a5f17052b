// Package services contains stateless domain services that coordinate
// behavior across aggregates. TransitionPolicy consolidates the role and
// ownership rules for order operations into one queryable table instead of
// scattering checks across endpoints.
package services
