// Package models defines the wire types exchanged with the vehicle
// management API and the identity snapshot kept by the session.
package models
