package domain

// EnrichedSession is a read-only projection of a Session joined with the names
// of its client and professional, for display. The underlying collections are
// never mutated to produce it.
type EnrichedSession struct {
	Session
	ClientName       string `json:"clientName"`
	ClientAvatar     string `json:"clientAvatar,omitempty"`
	ProfessionalName string `json:"professionalName"`
}

// EnrichedInvoice is a read-only projection of an Invoice joined with client
// and professional names plus a synthesized human-readable display identifier.
//
// DisplayID has the form INV_<clientNameWithoutWhitespace>_<YYYY-MM-DD>. Two
// invoices for the same client on the same date produce the same DisplayID;
// this non-uniqueness is inherited behavior and callers must not treat
// DisplayID as a key.
type EnrichedInvoice struct {
	Invoice
	ClientName       string `json:"clientName"`
	ProfessionalName string `json:"professionalName"`
	DisplayID        string `json:"displayID"`
}
