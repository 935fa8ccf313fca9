// Package kernel holds the value objects shared by every aggregate of the
// restaurant service.
//
// The package includes:
//   - UUID: identifier of orders, line items, menu items, reservations, reports and principals
//   - Money: a non-negative amount with two decimal places, backed by shopspring/decimal
//   - Principal and Role: the acting customer, staff member or administrator of a request
//   - TransitionPolicy: how status machines treat transitions out of terminal states
//
// All values are immutable once constructed and their zero values fail Validate.
package kernel
