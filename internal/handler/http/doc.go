// Package http implements the REST surface of the diary. Routes live under
// /api/diary and require a bearer token identifying the user; tracing,
// request logging and panic recovery are applied to every request.
package http
