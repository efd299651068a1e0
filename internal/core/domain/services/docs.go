// Package services provides domain services that coordinate the order
// aggregate with the notification and chat models of the MedAssist system.
// They implement workflows that don't naturally belong to a single
// aggregate root.
//
// The package includes:
//   - OrderNotifier: announces placed and advanced orders in the bell menu and the assistant chat
package services
