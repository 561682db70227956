// Package policy provides an in-memory property policy: the ordered,
// string-keyed bag a DDS security plugin reads its settings from.
package policy

import (
	"errors"
	"fmt"
)

var (
	// ErrDuplicateProperty is returned by Add when the name is already present.
	ErrDuplicateProperty = errors.New("property already exists")

	// ErrPolicyFull is returned by Add when the policy has reached its maximum length.
	ErrPolicyFull = errors.New("property policy is full")

	// ErrEmptyName is returned by Add for an empty property name.
	ErrEmptyName = errors.New("property name is empty")
)

// Property is a single name/value entry.
type Property struct {
	Name      string `json:"name" yaml:"name"`
	Value     string `json:"value" yaml:"value"`
	Propagate bool   `json:"propagate" yaml:"propagate"`
}

// PropertyPolicy is an ordered list of properties with unique names.
// It is not safe for concurrent use.
type PropertyPolicy struct {
	properties []Property
	maxLength  int
}

// Option configures a PropertyPolicy.
type Option func(*PropertyPolicy)

// WithMaxLength bounds the number of properties the policy accepts.
// Zero means unbounded.
func WithMaxLength(n int) Option {
	return func(p *PropertyPolicy) {
		p.maxLength = n
	}
}

// New creates an empty property policy.
func New(opts ...Option) *PropertyPolicy {
	p := &PropertyPolicy{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add appends a property. Unlike a map assignment it never overwrites:
// callers that want replace semantics must Remove first.
func (p *PropertyPolicy) Add(name, value string, propagate bool) error {
	if name == "" {
		return ErrEmptyName
	}
	if p.index(name) >= 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateProperty, name)
	}
	if p.maxLength > 0 && len(p.properties) >= p.maxLength {
		return fmt.Errorf("%w: max length %d", ErrPolicyFull, p.maxLength)
	}

	p.properties = append(p.properties, Property{Name: name, Value: value, Propagate: propagate})
	return nil
}

// Remove deletes the property with the given name, preserving the order of
// the remaining entries. It reports whether anything was removed.
func (p *PropertyPolicy) Remove(name string) bool {
	i := p.index(name)
	if i < 0 {
		return false
	}
	p.properties = append(p.properties[:i], p.properties[i+1:]...)
	return true
}

// Lookup returns the property with the given name.
func (p *PropertyPolicy) Lookup(name string) (Property, bool) {
	i := p.index(name)
	if i < 0 {
		return Property{}, false
	}
	return p.properties[i], true
}

// Properties returns a copy of all properties in insertion order.
func (p *PropertyPolicy) Properties() []Property {
	out := make([]Property, len(p.properties))
	copy(out, p.properties)
	return out
}

// Len returns the number of properties.
func (p *PropertyPolicy) Len() int {
	return len(p.properties)
}

// Snapshot returns a copy of the policy that can later be passed to Restore.
func (p *PropertyPolicy) Snapshot() *PropertyPolicy {
	return &PropertyPolicy{properties: p.Properties(), maxLength: p.maxLength}
}

// Restore replaces the contents of p with those of snap.
func (p *PropertyPolicy) Restore(snap *PropertyPolicy) {
	p.properties = snap.Properties()
	p.maxLength = snap.maxLength
}

func (p *PropertyPolicy) index(name string) int {
	for i := range p.properties {
		if p.properties[i].Name == name {
			return i
		}
	}
	return -1
}
