// Package common contains shared constants and sentinel errors used across
// blogd components.
package common

// AuthorizationHeaderName is the HTTP header carrying the bearer access token
// on protected requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the access token inside the Authorization header.
const BearerPrefix = "Bearer "
