package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// OutcomeKind classifies the result of migrating one tenant
type OutcomeKind int

const (
	// Success means both resources were removed and a new key-store was generated
	Success OutcomeKind = iota
	// KeyStoreGenerationFailure means the generator failed after the old resources were removed
	KeyStoreGenerationFailure
	// ResourceStoreFailure means an existence check or delete against the registry failed
	ResourceStoreFailure
	// UnexpectedFailure covers everything else, including failing to enter the tenant context
	UnexpectedFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case KeyStoreGenerationFailure:
		return "keystore_generation_failure"
	case ResourceStoreFailure:
		return "resource_store_failure"
	case UnexpectedFailure:
		return "unexpected_failure"
	}
	return "unknown"
}

// MarshalText renders the kind by name
func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Outcome is the per tenant migration result
type Outcome struct {
	TenantID int         `json:"tenantId"`
	Domain   string      `json:"domain"`
	Kind     OutcomeKind `json:"kind"`
	Err      error       `json:"-"`
}

// Cause returns the failure message, empty on success
func (o Outcome) Cause() string {
	if o.Err == nil {
		return ""
	}
	return o.Err.Error()
}

// ClassifyOutcome maps a per tenant error onto an outcome kind
func ClassifyOutcome(err error) OutcomeKind {
	if err == nil {
		return Success
	}

	var generationErr *GenerationError
	if errors.As(err, &generationErr) {
		return KeyStoreGenerationFailure
	}

	var registryErr *RegistryError
	if errors.As(err, &registryErr) {
		return ResourceStoreFailure
	}

	return UnexpectedFailure
}

// Report collects the outcomes of one migration run in tenant order
type Report struct {
	RunID      uuid.UUID `json:"runId"`
	StartedAt  time.Time `json:"startedAt"`
	FinishedAt time.Time `json:"finishedAt"`
	Outcomes   []Outcome `json:"outcomes"`
}

// Count returns the number of outcomes of the given kind
func (r *Report) Count(kind OutcomeKind) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Kinds returns the outcome kinds in tenant order
func (r *Report) Kinds() []OutcomeKind {
	kinds := make([]OutcomeKind, 0, len(r.Outcomes))
	for _, o := range r.Outcomes {
		kinds = append(kinds, o.Kind)
	}
	return kinds
}
