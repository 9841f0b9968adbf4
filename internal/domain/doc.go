// Package domain contains the entities handled by the personas API:
// persons, their identity documents, addresses and phones, and the
// read-only relation views computed between persons. It is independent
// of any specific infrastructure or delivery mechanism.
package domain
