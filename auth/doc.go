// Package auth provides a small HS256 JWT token service used to protect
// publish and stream endpoints. Its ValidatorFunc bridges into the server's
// Auth middleware.
package auth
