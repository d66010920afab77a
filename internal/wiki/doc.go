// Package wiki parses episode data out of the community wiki.
//
// The episode list page is organized as campaign h2 headers, arc h3
// headers, and one wikitable per arc. Parsing walks those elements in
// document order, carrying the current campaign and arc as context, and
// emits main-campaign candidates for the merge engine. A separate
// full-catalog walk covers every section of the page, classifying show
// types for the initial import. Individual episode pages are mined
// separately for VOD links and runtimes during backfill.
package wiki
