// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Arnlite Contributors

// Package arn parses the resource portion of an ARN-style identifier — the
// part that follows the service, region, and account segments — into an
// immutable [ResourceDescriptor] holding an optional resource type, a
// mandatory resource, and an optional qualifier.
//
// Recognized surface forms:
//
//	resource-id
//	resource-type:resource-id
//	resource-type/resource-id
//	resource-type:resource-id:qualifier
//	resource-type/resource-id:qualifier
//
// The resource-id may itself be a path; the first ':' or '/' in the input
// always delimits the type, and the last ':' after that boundary always
// delimits the qualifier. There is no escaping mechanism.
//
// Descriptors are constructed either via [ParseResource] or via a validating
// [Builder]. The only error condition in the package is a blank resource at
// build time, reported as [ErrBlankResource].
//
// A ResourceDescriptor is a comparable value: == gives structural equality
// over all three fields, with an absent field equal only to another absent
// field, and descriptors can be used directly as map keys. Instances are
// immutable after construction and safe to share across goroutines.
//
// Segmenting the full identifier (partition, service, region, account) is
// the caller's concern; this package never validates resource-type or
// resource-id character sets and never interprets qualifier semantics.
package arn
