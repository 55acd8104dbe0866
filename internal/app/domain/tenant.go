// Package domain contains shared definitions.
package domain

// Tenant represents an isolated partition of the platform
type Tenant struct {
	// ID is the stable numeric tenant identifier
	ID int `json:"id" koanf:"id"`
	// Domain is the unique, human-readable tenant domain, e.g. example.com
	Domain string `json:"domain" koanf:"domain"`
}
