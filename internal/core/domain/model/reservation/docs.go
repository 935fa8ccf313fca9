// Package reservation provides the table Reservation aggregate.
//
// A reservation is created pending by a customer and moved by staff among
// pending, confirmed, cancelled and completed without ordering constraints.
// A table number may be attached during any status change.
package reservation
