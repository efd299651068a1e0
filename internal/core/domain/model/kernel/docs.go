// Package kernel holds the value objects shared across the MedAssist domain model.
//
// The package includes:
//   - UUID: identifier for notifications and chat messages
//   - Money: non-negative rupee amount backed by shopspring/decimal
//   - Contact: name and phone of the person responsible for an order
//
// All three are immutable and invalid as zero values; build them through
// their constructors and check them with Validate.
package kernel
