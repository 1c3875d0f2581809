// Package http implements the HTTP transport layer of the application.
//
// Every request passes through a fixed pipeline of stages built in
// pipeline.go: request identity, access logging, rate limiting and error
// translation. Route handlers are plain functions returning an error; the
// translation stage is the only place that writes error responses.
package http
