// Package api handles incoming HTTP requests for the persons API: routing,
// request decoding, entity/DTO conversion and status code mapping. It is an
// adapter between HTTP clients and the services in internal/service and
// holds no state between requests.
package api
