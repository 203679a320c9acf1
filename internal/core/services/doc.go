// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO; they depend only on the domain,
// the port interfaces and small libraries (uuid, rate limiting).
package services
