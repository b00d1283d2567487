package models

// ReportBundle is the payload handed to the report renderer: the context
// it was built for, whichever row sets were non-empty for that context,
// and a human-readable title. The renderer (PDF/print, Malayalam fonts
// included) lives outside this service; the bundle is the seam.
type ReportBundle struct {
	Context       MapContext        `json:"context"`
	Title         string            `json:"title"`
	VoteShareData []VoteShareRecord `json:"voteShareData,omitempty"`
	TargetData    []TargetRecord    `json:"targetData,omitempty"`
	ContactData   interface{}       `json:"contactData,omitempty"`
}
