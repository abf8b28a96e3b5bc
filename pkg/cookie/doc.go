// Package cookie manages the locale preference cookie and other plain or
// HMAC-signed cookies sharing the same attributes.
package cookie
