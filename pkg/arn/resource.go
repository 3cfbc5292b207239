// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Arnlite Contributors

package arn

import (
	"errors"
	"strings"

	"github.com/samber/oops"
)

// ErrBlankResource is returned by Builder.Build (and transitively by
// ParseResource) when the resource field is unset, empty, or all-whitespace.
// Wrapped errors carry the oops code "ARN_BLANK_RESOURCE".
var ErrBlankResource = errors.New("resource must not be blank")

// ResourceDescriptor is the parsed resource portion of an identifier:
// an optional resource type, the resource itself, and an optional qualifier.
//
// The zero value is not valid; construct via ParseResource or a Builder.
// Descriptors are immutable and comparable: == compares all three fields,
// with absent fields distinct from empty ones.
type ResourceDescriptor struct {
	resourceType string
	hasType      bool
	resource     string
	qualifier    string
	hasQualifier bool
}

// ResourceType returns the resource type and whether one was present.
// An empty string with ok=true is a present-but-empty type, which is
// distinct from an absent one.
func (d ResourceDescriptor) ResourceType() (string, bool) {
	return d.resourceType, d.hasType
}

// Resource returns the resource identifier or path. It is never blank on a
// descriptor produced by ParseResource or Builder.Build.
func (d ResourceDescriptor) Resource() string {
	return d.resource
}

// Qualifier returns the qualifier and whether one was present.
func (d ResourceDescriptor) Qualifier() (string, bool) {
	return d.qualifier, d.hasQualifier
}

// Equal reports structural equality over all three fields. Equivalent to ==.
func (d ResourceDescriptor) Equal(other ResourceDescriptor) bool {
	return d == other
}

// String renders resourceType:resource:qualifier. Absent fields render as
// the literal text "null" rather than being omitted. That placeholder is a
// historical quirk of the format, but callers round-trip on it; do not
// change it to drop empty segments.
func (d ResourceDescriptor) String() string {
	return renderField(d.resourceType, d.hasType) +
		":" +
		d.resource +
		":" +
		renderField(d.qualifier, d.hasQualifier)
}

func renderField(value string, present bool) string {
	if !present {
		return "null"
	}
	return value
}

// ToBuilder returns a new Builder pre-populated with this descriptor's
// fields. The builder is independent: building from it never mutates the
// original descriptor.
func (d ResourceDescriptor) ToBuilder() *Builder {
	b := NewBuilder().Resource(d.resource)
	if d.hasType {
		b.ResourceType(d.resourceType)
	}
	if d.hasQualifier {
		b.Qualifier(d.qualifier)
	}
	return b
}

// Builder stages the fields of a ResourceDescriptor. Fields never set stay
// absent; each setter replaces any prior value and marks the field present,
// including when given an empty string.
type Builder struct {
	resourceType *string
	resource     *string
	qualifier    *string
}

// NewBuilder returns an empty Builder with all fields absent.
func NewBuilder() *Builder {
	return &Builder{}
}

// ResourceType sets the resource type.
func (b *Builder) ResourceType(resourceType string) *Builder {
	b.resourceType = &resourceType
	return b
}

// Resource sets the resource identifier or path.
func (b *Builder) Resource(resource string) *Builder {
	b.resource = &resource
	return b
}

// Qualifier sets the qualifier.
func (b *Builder) Qualifier(qualifier string) *Builder {
	b.qualifier = &qualifier
	return b
}

// Build validates the staged fields and returns an immutable descriptor.
// It returns ErrBlankResource when the resource is unset, empty, or
// all-whitespace; this is the only failure mode.
func (b *Builder) Build() (ResourceDescriptor, error) {
	if b.resource == nil || strings.TrimSpace(*b.resource) == "" {
		return ResourceDescriptor{}, oops.
			Code("ARN_BLANK_RESOURCE").
			With("resource_set", b.resource != nil).
			Wrap(ErrBlankResource)
	}

	d := ResourceDescriptor{resource: *b.resource}
	if b.resourceType != nil {
		d.resourceType = *b.resourceType
		d.hasType = true
	}
	if b.qualifier != nil {
		d.qualifier = *b.qualifier
		d.hasQualifier = true
	}
	return d, nil
}

// ParseResource parses a raw resource string into a ResourceDescriptor.
//
// The first ':' or '/' in the string delimits the resource type, even when
// the resource itself contains later delimiters. When a type boundary was
// found, the last ':' strictly after it delimits the qualifier; a resource
// containing colons after the type boundary therefore cannot keep its
// rightmost colon segment as part of the resource. Inputs with no delimiter
// are taken as the bare resource.
//
// Returns ErrBlankResource when the derived resource segment is blank, e.g.
// for "", "type:", or "type::qualifier".
func ParseResource(raw string) (ResourceDescriptor, error) {
	typeBoundary := strings.IndexAny(raw, ":/")
	if typeBoundary < 0 {
		return build(NewBuilder().Resource(raw), raw)
	}

	b := NewBuilder().ResourceType(raw[:typeBoundary])
	rest := raw[typeBoundary+1:]
	if qualifierBoundary := strings.LastIndexByte(rest, ':'); qualifierBoundary >= 0 {
		b.Resource(rest[:qualifierBoundary]).Qualifier(rest[qualifierBoundary+1:])
	} else {
		b.Resource(rest)
	}
	return build(b, raw)
}

// build finalizes a parse, attaching the raw input to any validation error.
func build(b *Builder, raw string) (ResourceDescriptor, error) {
	d, err := b.Build()
	if err != nil {
		return ResourceDescriptor{}, oops.Code("ARN_BLANK_RESOURCE").With("raw", raw).Wrap(err)
	}
	return d, nil
}
