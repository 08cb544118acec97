// Copyright (c) 2026 TXSN. All rights reserved.

/*
Package constants provides centralized, immutable values for the entire platform.

It defines default timeouts, rate limits, and cross-cutting keys that are shared
between different layers of the system.

Categories:

  - Server Timing: Read/Write/Idle timeouts for the HTTP server.
  - Rate Limiting: Burst capacities and IP tracking TTLs.
  - Directory: Resource categories, rank tiers, and the region sentinel.

Using this package ensures Magic Strings and Magic Numbers are eliminated
from the business logic.
*/
package constants

import "time"

// # Metadata

const (
	AppName    = "txsn-navigator"
	AppVersion = "0.1.0-dev"
)

// # Server Timing

const (
	// DefaultReadTimeout is the maximum duration for reading the entire request.
	DefaultReadTimeout = 5 * time.Second

	// DefaultWriteTimeout is the maximum duration before timing out writes of the response.
	DefaultWriteTimeout = 10 * time.Second

	// DefaultIdleTimeout is the maximum amount of time to wait for the next request.
	DefaultIdleTimeout = 120 * time.Second

	// DefaultReadHeaderTimeout is the amount of time allowed to read request headers.
	DefaultReadHeaderTimeout = 2 * time.Second

	// GlobalRequestTimeout is the deadline for the entire request lifecycle.
	GlobalRequestTimeout = 30 * time.Second

	// ShutdownTimeout is how long we wait for in-flight requests to complete during shutdown.
	ShutdownTimeout = 30 * time.Second
)

// # Rate Limiting

const (
	// DefaultRateLimitRPS is the requests per second allowed per IP.
	DefaultRateLimitRPS = 100.0

	// DefaultRateLimitBurst is the maximum burst allowed for the rate limiter.
	DefaultRateLimitBurst = 150

	// RateLimitCleanupInterval is how often old IP entries are removed from memory.
	RateLimitCleanupInterval = 1 * time.Minute

	// RateLimitClientTTL is how long a client must be idle before its entry is deleted.
	RateLimitClientTTL = 3 * time.Minute
)

// # Directory Domain

const (
	// CategoryBillsCoverage covers bills, denials, and insurance navigation.
	CategoryBillsCoverage = "bills_coverage"

	// CategoryMeds covers copay help and prescription assistance.
	CategoryMeds = "meds"

	// CategoryTransport covers rides, paratransit, and treatment lodging.
	CategoryTransport = "transport"

	// RegionOtherUnknown is the sentinel a caller picks when their region is
	// not in the list. It resolves to "no region" (statewide matching).
	RegionOtherUnknown = "Other/Unknown"
)

// Rank tiers returned by the matching queries. Higher is closer.
const (
	RankStatewide = 1
	RankRegion    = 2
	RankCounty    = 3
)

// # Deep Search (2-1-1 Texas)

const (
	// DeepSearchPhone is the dialable 2-1-1 Texas number.
	DeepSearchPhone = "+18775417905"

	// DeepSearchURL is the 2-1-1 Texas web directory.
	DeepSearchURL = "https://www.211texas.org/"
)

// # HTTP Headers

const (
	HeaderXRequestID    = "X-Request-ID"
	HeaderXClientID     = "X-Client-ID"
	HeaderXRealIP       = "X-Real-IP"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderOrigin        = "Origin"
)

// # JSON Field Identifiers

const (
	FieldData    = "data"
	FieldMeta    = "meta"
	FieldError   = "error"
	FieldCode    = "code"
	FieldDetails = "details"
	FieldNotice  = "notice"
	FieldStatus  = "status"
	FieldApp     = "app"
	FieldVersion = "version"
	FieldChecks  = "checks"
)

// # Redis Prefixes (Cache Taxonomy)

const (
	RedisPrefixCountyList = "cache:counties"
	RedisPrefixZip        = "pref:zip:"
)

// # Cache & Preference TTLs

const (
	// CountyCacheTTL bounds staleness of the Redis-cached county list.
	CountyCacheTTL = 15 * time.Minute

	// ZipPreferenceTTL is how long a remembered ZIP survives without updates.
	ZipPreferenceTTL = 30 * 24 * time.Hour
)
