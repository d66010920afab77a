// Package fetch retrieves schedule and wiki pages over HTTP.
//
// Weekly schedule URLs are generated from the posting conventions of both
// hosting sites: one page per Monday, with and without an ordinal day
// suffix on critrole.com, plus the beacon.tv spellings including the
// previous-year slugs seen around new year. Fetched pages are
// cached in a local SQLite database so repeated syncs inside the max-age
// window never touch the network, and live requests are rate limited by a
// configurable delay.
package fetch
