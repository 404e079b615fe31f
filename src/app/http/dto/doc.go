// Package dto contains request payload types for the HTTP API.
//
// DTOs deliberately mirror the wire format of the front-end client
// (snake_case field names, `load` for the load value) and are mapped onto
// domain entities before reaching the core.
package dto
