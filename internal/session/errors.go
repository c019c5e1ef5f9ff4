package session

import "errors"

// ErrAuthentication is returned by [Store.Unlock] when the diary password
// does not match the stored hash.
var ErrAuthentication = errors.New("diary password is incorrect")
