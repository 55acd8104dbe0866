// Package keystore generates tenant key-stores and public certificates
package keystore

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	jks "github.com/pavlo-v-chernykh/keystore-go/v4"
	"github.com/venafi/keystore-migrator/internal/app/domain"
	"go.uber.org/zap"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// DefaultKeySize is the RSA modulus length used when none is configured
	DefaultKeySize = 2048
	// DefaultValidity is the certificate lifetime used when none is configured
	DefaultValidity = 10 * 365 * 24 * time.Hour

	certificateType = "X509"
)

// Options configures the generated key material
type Options struct {
	Password     string
	KeySize      int
	Validity     time.Duration
	Organization string
}

// Generator creates a JKS key-store holding a fresh RSA key and self-signed certificate for a tenant
type Generator struct {
	options Options
	now     func() time.Time
}

// NewGenerator will return a new Generator
func NewGenerator(options Options) *Generator {
	if options.KeySize == 0 {
		options.KeySize = DefaultKeySize
	}

	if options.Validity == 0 {
		options.Validity = DefaultValidity
	}

	return &Generator{
		options: options,
		now:     time.Now,
	}
}

// GenerateKeyStore creates the key-store and public certificate resources in the registry of the entered tenant context
func (g *Generator) GenerateKeyStore(ctx context.Context, tc *domain.TenantContext) error {
	if !tc.Entered() {
		return &domain.GenerationError{TenantID: tc.Tenant.ID, Err: domain.ErrContextNotEntered}
	}

	if len(g.options.Password) == 0 {
		return &domain.GenerationError{TenantID: tc.Tenant.ID, Err: errors.New("no key store password configured")}
	}

	bundle, err := g.newCertificateBundle(tc.Tenant.Domain)
	if err != nil {
		return &domain.GenerationError{TenantID: tc.Tenant.ID, Err: err}
	}

	alias := keyAlias(tc.Tenant.Domain)
	encoded, err := g.encodeKeyStore(alias, bundle)
	if err != nil {
		return &domain.GenerationError{TenantID: tc.Tenant.ID, Err: err}
	}

	path := domain.KeyStorePath(domain.KeyStoreName(tc.Tenant.Domain))
	if err = tc.Registry.Put(ctx, path, encoded); err != nil {
		return &domain.GenerationError{TenantID: tc.Tenant.ID, Err: fmt.Errorf(`failed to store key store "%s": %w`, path, err)}
	}

	certificate := pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: bundle.Certificate})
	if err = tc.Registry.Put(ctx, domain.PublicCertificatePath, certificate); err != nil {
		return &domain.GenerationError{TenantID: tc.Tenant.ID, Err: fmt.Errorf("failed to store public certificate: %w", err)}
	}

	zap.L().Debug("generated key store", zap.Int("tenant_id", tc.Tenant.ID), zap.String("domain", tc.Tenant.Domain), zap.String("path", path), zap.String("alias", alias))
	return nil
}

func (g *Generator) newCertificateBundle(tenantDomain string) (*domain.CertificateBundle, error) {
	commonName, err := normalizeCommonName(tenantDomain)
	if err != nil {
		return nil, fmt.Errorf("unable to read tenant domain: %w", err)
	}

	key, err := rsa.GenerateKey(rand.Reader, g.options.KeySize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	serial, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, fmt.Errorf("failed to generate serial number: %w", err)
	}

	notBefore := g.now()
	subject := pkix.Name{CommonName: commonName}
	if len(g.options.Organization) > 0 {
		subject.Organization = []string{g.options.Organization}
	}

	template := &x509.Certificate{
		SerialNumber:          serial,
		Subject:               subject,
		NotBefore:             notBefore,
		NotAfter:              notBefore.Add(g.options.Validity),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
		ExtKeyUsage:           []x509.ExtKeyUsage{x509.ExtKeyUsageServerAuth, x509.ExtKeyUsageClientAuth},
		BasicConstraintsValid: true,
	}

	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	if err != nil {
		return nil, fmt.Errorf("failed to create certificate: %w", err)
	}

	privateKey, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("failed to encode private key: %w", err)
	}

	return &domain.CertificateBundle{
		Certificate:      der,
		PrivateKey:       privateKey,
		CertificateChain: [][]byte{der},
	}, nil
}

func (g *Generator) encodeKeyStore(alias string, bundle *domain.CertificateBundle) ([]byte, error) {
	chain := make([]jks.Certificate, 0, len(bundle.CertificateChain))
	for _, der := range bundle.CertificateChain {
		chain = append(chain, jks.Certificate{
			Type:    certificateType,
			Content: der,
		})
	}

	ks := jks.New()
	err := ks.SetPrivateKeyEntry(alias, jks.PrivateKeyEntry{
		CreationTime:     g.now(),
		PrivateKey:       bundle.PrivateKey,
		CertificateChain: chain,
	}, []byte(g.options.Password))
	if err != nil {
		return nil, fmt.Errorf("failed to add private key entry: %w", err)
	}

	var buf bytes.Buffer
	if err = ks.Store(&buf, []byte(g.options.Password)); err != nil {
		return nil, fmt.Errorf("failed to encode key store: %w", err)
	}

	return buf.Bytes(), nil
}

func keyAlias(tenantDomain string) string {
	return strings.ToLower(strings.TrimSpace(tenantDomain))
}

func normalizeCommonName(tenantDomain string) (string, error) {
	normalized, _, err := transform.String(norm.NFC, strings.TrimSpace(tenantDomain))
	if err != nil {
		return "", err
	}

	return normalized, nil
}
