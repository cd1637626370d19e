package generator

import "fmt"

const systemPrompt = `You are a B2B data specialist who produces realistic synthetic CRM records for product demos. Respond with JSON only, no prose and no markdown fences.`

// batchPrompt describes the lead schema the model must emit. The field
// names match the ingestion record shape exactly.
func batchPrompt(count int) string {
	return fmt.Sprintf(`Generate %d realistic synthetic B2B sales leads for a CRM demo.

Return a JSON object with a single key "leads" whose value is an array of %d lead objects. Each lead object has these fields:

- first_name: realistic first name
- last_name: realistic last name
- email: plausible work email derived from the name and company
- company: realistic company name, varied industries
- phone: US-format phone number
- title: job title, mix seniority levels (executives, directors, managers, individual contributors)
- lead_source: one of "website", "linkedin", "email_campaign", "referral", "cold_outreach", "trade_show", "webinar"
- company_size: integer employee count between 5 and 5000
- annual_revenue: integer annual revenue in USD, plausible for the company size
- budget: integer project budget in USD between 5000 and 250000, or omit for some leads
- decision_maker: boolean, true for roughly a third of leads
- pain_points: array of 1-4 short business pain descriptions
- timeline: one of "immediate", "3_months", "6_months", "next_year"
- notes: one-sentence context about the lead

Vary the leads: different industries, company sizes, and seniority. Every email must be unique. Output only the JSON object.`, count, count)
}
