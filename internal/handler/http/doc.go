// Package http implements the REST transport of the diary backend.
//
// It wires routes, request handlers and middleware. Request tracing, access
// logging, bearer authentication and response compression happen here
// before requests reach the service layer.
package http
