// Package watchlist defines the opaque identifier used to address a
// per-viewer watchlist.
package watchlist

// Ref optionally identifies a watchlist by its opaque UUID token. The zero
// value means no watchlist was requested, which is distinct from a token that
// matches no stored watchlist. Keeping the absent case explicit stops empty
// strings from silently turning into lookups.
type Ref struct {
	uuid    string
	present bool
}

// RefFor wraps a UUID token in a Ref. An empty token yields the absent Ref.
func RefFor(uuid string) Ref {
	if uuid == "" {
		return Ref{}
	}
	return Ref{uuid: uuid, present: true}
}

// UUID returns the token and whether one was supplied.
func (r Ref) UUID() (string, bool) {
	return r.uuid, r.present
}

// Present reports whether a token was supplied.
func (r Ref) Present() bool {
	return r.present
}
