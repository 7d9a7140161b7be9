// Package client is the CLI's view of the gophauth session API.
//
// AuthClient talks HTTP(S) to the server and keeps the session cookie in a
// cookie jar, so Login followed by Me and Logout behaves like a browser.
//
// # Error Handling
//
// Transport failures match ErrUnavailable. Non-2xx responses are returned as
// *APIError carrying the server's "detail" message; a 401 also matches
// ErrUnauthorized via errors.Is.
package client
