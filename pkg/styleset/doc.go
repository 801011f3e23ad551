// Package styleset assembles the default style and the permission styles
// into a Set, and publishes Sets to concurrent readers.
//
// A Set is immutable. Manager swaps whole Sets atomically on reload, so a
// reader that calls Current once per event sees either the old or the new
// styles, never a mix. A reload that fails leaves the previous Set in place.
package styleset
