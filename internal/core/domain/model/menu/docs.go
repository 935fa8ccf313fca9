// Package menu models the priced dishes and drinks a customer can put in a cart.
//
// An Item is owned by the catalog: administrators create it, toggle its
// availability and delete it. The order subsystem only reads items through the
// MenuCatalog port and snapshots the unit price into each line item at the
// moment the cart is resolved.
package menu
