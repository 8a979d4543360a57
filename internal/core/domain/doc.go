// Package domain contains the core business entities for centrorag:
// documents, chunks, locale records, and query routing decisions.
// It has no dependencies on adapters or external services.
package domain
