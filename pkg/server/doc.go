// Package server implements the fxdctl status server.
//
// The server exposes the state of managed funcX endpoints over HTTP along
// with operational endpoints for health checking and Prometheus metrics:
//
//	GET /health                     liveness probe
//	GET /ready                      readiness probe
//	GET /version                    build information
//	GET /metrics                    Prometheus exposition
//	GET /v1/endpoints               status of all managed endpoints
//	GET /v1/endpoints/{release}     status of a single release
//
// API routes are wrapped with request ID propagation, structured request
// logging, panic recovery, token-bucket rate limiting, and RED metrics.
package server
