// Package order provides the requisition aggregate shared by transfer
// requests (station to station) and purchase orders (station to supplier).
//
// The package includes:
//   - Order: the aggregate root owning its lines and transition history
//   - Line: a product, its unit price and the requested, granted and
//     delivered quantities
//   - Change: the payload carried by a status move
//
// Key business rules:
//   - The requester is always a station; the provider is another station
//     (transfer) or a supplier (purchase), never the requester itself
//   - Every order has at least one line and one line per product
//   - delivered <= granted <= requested on every line
//   - The total is the sum of unit price times billable quantity (granted
//     when present, requested otherwise) and is never set directly
//   - Status changes go through MoveTo, which consults workflow.Table
package order
