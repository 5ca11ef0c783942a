// Package middleware groups the Fiber middlewares used by the HTTP API.
//
//   - rayid: assigns every request a RayID (X-Ray-ID), stored in c.Locals("ray_id").
//   - auth: rejects requests without the configured X-API-Key.
//
// RayID must be registered first so that every later log line carries it.
package middleware
