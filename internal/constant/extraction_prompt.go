package constant

const (
	// ExtractionPromptMaxChars bounds how much contract text is sent to
	// the model per request.
	ExtractionPromptMaxChars = 10000

	ContractExtractionPrompt = `You are an expert at reading contracts and extracting metadata.
From the given contract text, extract and return a JSON object with the following keys:

{
"vendor_name": string,
"products": [string],
"effective_date": string (YYYY-MM-DD),
"end_date": string (YYYY-MM-DD, if mentioned),
"auto_renews": boolean,
"renewal_term_months": number,
"notice_period_days": number,
"initial_term_months": number (default 12 if unspecified)
}

Rules:
- Seller is the vendor
- If something is missing, guess based on context or set it to null.
- Products may appear as a list, SKU, or service names; return all as array of strings.
- Dates may appear as "Effective on", "Commencement Date", "Termination Date", or "Expires".
- Auto renewal: true if any phrase like "automatically renews", "renewed annually", "continues unless terminated".
- Return *only valid JSON* without explanations.`
)
