// Package common contains shared constants and sentinel errors used across
// gophauth components.
package common

// SessionCookieName is the cookie that carries the session token between
// the browser (or CLI client) and the server.
const SessionCookieName = "session"
