package domain

import "strings"

const (
	// KeyStoreExtension is appended to every tenant key-store name
	KeyStoreExtension = ".jks"
	// KeyStoresPath is the registry collection holding tenant key-stores
	KeyStoresPath = "/repository/security/key-stores/"
	// PublicCertificatePath is the registry resource holding the tenant public certificate
	PublicCertificatePath = "/repository/security/pub-key"
)

// KeyStoreName derives the key-store file name from a tenant domain, e.g. "foo.com" becomes "foo-com.jks".
// The domain is not validated.
func KeyStoreName(domain string) string {
	return strings.ReplaceAll(strings.TrimSpace(domain), ".", "-") + KeyStoreExtension
}

// KeyStorePath returns the registry path of the named key-store
func KeyStorePath(name string) string {
	return KeyStoresPath + name
}
