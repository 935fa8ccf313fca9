// Package order provides the Order aggregate of the restaurant service.
//
// The package includes:
//   - Order: the aggregate root owning customer, delivery details, status, total and line items
//   - LineItem: one menu item with quantity, unit price snapshot and derived subtotal
//   - Status: the fulfilment lifecycle pending -> confirmed -> in_preparation -> ready -> delivered,
//     with cancelled as the alternate terminal state
//
// Key business rules:
//   - A line's subtotal is unit price times quantity, recomputed whenever the quantity changes
//   - An order's total is the sum of its line subtotals, recomputed whenever lines change
//   - Lines keep insertion order and are never reordered
//   - An order without lines is valid and totals 0.00
//   - Status changes never touch the total
//   - New orders start Pending, and staff may move an order back to Pending
//   - Staff move orders freely among the enumerated statuses; only the
//     kernel.TransitionPolicy decides whether terminal statuses can be left
package order
