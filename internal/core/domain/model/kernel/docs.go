// Package kernel provides the value objects shared by every aggregate of the
// supply-chain domain.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Money: non-negative decimal amount backed by github.com/shopspring/decimal
//   - EntityRef: tagged reference to either a station or a supplier
//
// All values are immutable; their zero values are invalid and fail Validate.
package kernel
