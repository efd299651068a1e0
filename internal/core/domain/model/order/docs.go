// Package order models medicine orders and lab-test bookings and their
// fulfillment tracking.
//
// The package includes:
//   - Order: the aggregate root shown on the tracking screen
//   - Step: one labeled milestone of an order's fulfillment
//   - Kind: the order type, which fixes the step template, the id range and
//     the canned contact person
//   - Factory: builds a new Order at checkout completion
//   - RandomIDGenerator: issues short numeric ids, unique within a session
//
// Key business rules:
//   - Every order of a kind has the same five steps; the first two are completed
//     when the order is created
//   - Steps complete strictly in order, so completion flags never go from
//     false back to true along the sequence
//   - The status shown to the patient is the label of the last completed step
//   - Orders are never deleted; the only mutation is AdvanceStep
package order
