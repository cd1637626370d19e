package domain

// LeadStatus is the pipeline stage of a lead. Values are wire-stable.
type LeadStatus string

const (
	StatusNew              LeadStatus = "new"
	StatusQualified        LeadStatus = "qualified"
	StatusContacted        LeadStatus = "contacted"
	StatusMeetingScheduled LeadStatus = "meeting_scheduled"
	StatusProposalSent     LeadStatus = "proposal_sent"
	StatusClosedWon        LeadStatus = "closed_won"
	StatusClosedLost       LeadStatus = "closed_lost"
	StatusUnqualified      LeadStatus = "unqualified"
)

// AllStatuses returns every lead status in pipeline order.
// Used by the pipeline summary so every status gets a bucket.
func AllStatuses() []LeadStatus {
	return []LeadStatus{
		StatusNew,
		StatusQualified,
		StatusContacted,
		StatusMeetingScheduled,
		StatusProposalSent,
		StatusClosedWon,
		StatusClosedLost,
		StatusUnqualified,
	}
}

// Valid reports whether s is a known lead status.
func (s LeadStatus) Valid() bool {
	switch s {
	case StatusNew, StatusQualified, StatusContacted, StatusMeetingScheduled,
		StatusProposalSent, StatusClosedWon, StatusClosedLost, StatusUnqualified:
		return true
	}
	return false
}

// LeadSource is the acquisition channel of a lead. Values are wire-stable.
type LeadSource string

const (
	SourceWebsite       LeadSource = "website"
	SourceLinkedIn      LeadSource = "linkedin"
	SourceEmailCampaign LeadSource = "email_campaign"
	SourceReferral      LeadSource = "referral"
	SourceColdOutreach  LeadSource = "cold_outreach"
	SourceTradeShow     LeadSource = "trade_show"
	SourceWebinar       LeadSource = "webinar"
	SourceOther         LeadSource = "other"
)

// Valid reports whether s is a known lead source.
func (s LeadSource) Valid() bool {
	switch s {
	case SourceWebsite, SourceLinkedIn, SourceEmailCampaign, SourceReferral,
		SourceColdOutreach, SourceTradeShow, SourceWebinar, SourceOther:
		return true
	}
	return false
}

// Timeline is the prospect's purchase horizon. The field is free-form on
// the wire; only these values score above the unknown default.
type Timeline string

const (
	TimelineImmediate   Timeline = "immediate"
	TimelineThreeMonths Timeline = "3_months"
	TimelineSixMonths   Timeline = "6_months"
	TimelineNextYear    Timeline = "next_year"
)
