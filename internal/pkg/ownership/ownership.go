// Package ownership holds the single predicate gating every mutation of an
// owned resource (video, tweet, comment, playlist). Services load the
// resource, call Require before writing, and translate ErrNotOwner into
// their module's forbidden error.
package ownership

import "errors"

var ErrNotOwner = errors.New("caller is not the resource owner")

// Require allows the mutation only when the caller is the owner.
// Plain value comparison, no storage access.
func Require(callerID, ownerID int64) error {
	if callerID != ownerID {
		return ErrNotOwner
	}
	return nil
}
