package lvtext

import "errors"

// ErrUnknownTag is recorded as a diag.TextMismatch finding when a
// <Connector> element's Kind attribute does not name a payload kind this
// package knows how to decode inline; ToCatalog skips that record rather
// than returning the error.
var ErrUnknownTag = errors.New("lvtext: unrecognized connector type attribute")

// ErrMissingSidecar indicates an opaque element's Src attribute names a
// sidecar file that was not supplied in the sidecars map passed to
// ToCatalog.
var ErrMissingSidecar = errors.New("lvtext: referenced sidecar not found")

// ErrMalformedElement indicates a required attribute or child was absent
// or unparsable for inline decoding of a known connector type.
var ErrMalformedElement = errors.New("lvtext: malformed element")
