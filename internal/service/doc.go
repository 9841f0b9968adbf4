// Package service contains the application use cases behind the persons API.
// It coordinates the stores defined in internal/store, applies transactional
// boundaries when a write spans several tables, and translates store errors
// into the service-level errors the API layer understands.
//
// Get-by-id operations return (value, found, err): a missing entity is a
// normal outcome reported through found, not an error.
package service
