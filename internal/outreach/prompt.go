package outreach

import (
	"fmt"
	"strings"

	"hyprnurture/internal/model"
)

const (
	ProductName        = "Hyperbots"
	productPlaceholder = "[Your SaaS Solution]"
)

const promptInstructions = `Instructions:
- Use the provided company and person data to personalize the LinkedIn message and email.
- Focus on what the company does, using the 'about' or description information.
- Replace ALL placeholders (such as [key benefit], [company_website], [Prospect Name], etc.) with real values from the scraped data above.
- Always replace ` + productPlaceholder + ` with '` + ProductName + `'.
- If a value is missing, omit the placeholder or use the best available info.
- Return ONLY valid JSON, no markdown, no explanation, no code block, just the JSON object.

Output this JSON:
{
  "linkedinMsg": "...",
  "emailHtml": "..."
}`

// BuildPrompt assembles the generation instructions. Context sections are
// only written when there is data for them. The product placeholder is
// replaced everywhere, including in caller and search supplied text.
func BuildPrompt(req model.GenerationRequest, company model.CompanyProfile, person *model.PersonProfile, items []model.NewsItem) string {
	var sb strings.Builder

	sb.WriteString("You are a B2B SaaS sales rep. Write two things for:\n\n")
	sb.WriteString(fmt.Sprintf("- Name: %s\n", req.Name))
	sb.WriteString(fmt.Sprintf("- Role: %s\n", req.Position))
	sb.WriteString(fmt.Sprintf("- Company: %s (%s employees)\n", req.CompanyName, req.CompanySize))
	if company.Website != "" {
		sb.WriteString(fmt.Sprintf("- Company website: %s\n", company.Website))
	}
	if note := strings.TrimSpace(req.Note); note != "" {
		sb.WriteString(fmt.Sprintf("- Note: %s\n", note))
	}

	sb.WriteString("\n")

	if company.Description != "" {
		sb.WriteString(fmt.Sprintf("About the company: %s\n", company.Description))
	}

	if person != nil {
		sb.WriteString(fmt.Sprintf("Finance head info: Name: %s, LinkedIn: %s, Title: %s, Bio: %s.\n",
			person.Name, person.ProfileLink, person.Title, person.Snippet))
	} else {
		sb.WriteString(fmt.Sprintf("Finance head info: Name: %s.\n", req.Name))
	}

	if len(items) > 0 {
		sb.WriteString("Recent news:\n")
		for _, n := range items {
			sb.WriteString(fmt.Sprintf("- %s\n", n.Title))
		}
	}

	sb.WriteString("\n")
	sb.WriteString(promptInstructions)

	return strings.ReplaceAll(sb.String(), productPlaceholder, ProductName)
}
