package generate

import (
	"fmt"
	"strings"

	"github.com/draftforge/draftforge/internal/profile"
)

const (
	valuePropsSystem = "You are an expert proposal writer."
	summarySystem    = "You are a senior management consultant writing client-ready executive summaries."
	refineSystem     = "You are a professional consultant refining executive summaries."
)

func providerLine(p profile.Profile) string {
	return fmt.Sprintf("%s (Industry: %s). Services: %s. Differentiators: %s. Website: %s. Contact: %s | %s.",
		p.Name, p.Industry, p.Services, p.Differentiators, p.Website, p.Email, p.Phone)
}

func valuePropsPrompt(p profile.Profile, cc Context) string {
	var sb strings.Builder
	sb.WriteString("You are a senior management consultant. Based on the provider profile and client context,\n")
	sb.WriteString("generate a Value Selling Points document.\n\n")
	sb.WriteString("Guidelines:\n")
	sb.WriteString("- Plain text only (no Markdown, no symbols).\n")
	sb.WriteString("- Each bullet must be a strong business phrase (1-2 lines).\n")
	sb.WriteString("- Structure exactly:\n\n")
	sb.WriteString("Case for Change\n- ...\n")
	sb.WriteString("Business Value for the Client\n- ...\n")
	sb.WriteString(p.Name + " Proposed Solution\n- ...\n\n")
	sb.WriteString("Inputs:\nPROVIDER_PROFILE:\n" + providerLine(p) + "\n\n")
	sb.WriteString("CLIENT_CONTEXT:\n" + cc.String() + "\n")
	return sb.String()
}

func summaryPrompt(p profile.Profile, cc Context, valueProps string) string {
	var sb strings.Builder
	sb.WriteString("You are a senior management consultant. Using the provider profile and the value selling points, produce a polished,\n")
	sb.WriteString("client-ready Executive Summary in well formatted plain text (no Markdown, no ##, no **).\n")
	sb.WriteString("Tone must mirror the business-driven, persuasive style of the value selling points.\n\n")
	sb.WriteString("Requirements:\n")
	sb.WriteString("- Length: 600-900 words.\n")
	sb.WriteString("- Use EXACTLY these headings once, in order:\n")
	sb.WriteString("  1) Introduction\n")
	sb.WriteString("  2) Our Understanding of Your Goals\n")
	sb.WriteString("  3) Our Approach to Meeting Your Goals\n")
	sb.WriteString("  4) Solution Overview\n")
	sb.WriteString("  5) How We Will Deliver\n")
	sb.WriteString("  6) Why " + p.Name + "\n")
	sb.WriteString("  7) Closing Call-to-Action\n")
	sb.WriteString("- Headings must appear exactly once and in order. Do not repeat any heading.\n")
	sb.WriteString("- Frame the client positively (readiness/opportunity). Avoid weakness/problem language.\n")
	sb.WriteString("- Use \"-\" for bullets. No other symbols. No Markdown. No placeholders.\n")
	sb.WriteString("- Do not invent facts. Reuse exact phrases from the value selling points, especially for sections 4-6.\n")
	sb.WriteString("- Adapt tone, vocabulary, and emphasis to the Recipient Role in the client context:\n")
	sb.WriteString("  - CEO: innovation, long-term strategic advantage, market leadership.\n")
	sb.WriteString("  - CFO: ROI, cost savings, margin improvement, EBITDA impact, financial resilience.\n")
	sb.WriteString("  - CIO/CTO: technical robustness, scalability, integration, compliance.\n")
	sb.WriteString("  - Head of Sales / CMO: revenue growth, customer experience, competitive differentiation.\n")
	sb.WriteString("  - Operations Director: efficiency, risk mitigation, governance, process excellence.\n")
	sb.WriteString("  - Other roles: infer focus areas logically.\n\n")
	sb.WriteString("Section specifics:\n")
	sb.WriteString("- Our Approach to Meeting Your Goals: 2-line descriptive statement followed by 3-4 bullets mapping client goals to approach elements and measurable outcomes.\n")
	sb.WriteString("- Solution Overview: 3-5 bullets; every bullet reuses at least one exact phrase from the Proposed Solution and maps the module to an explicit business outcome.\n")
	sb.WriteString("- How We Will Deliver: 3-5 bullets on execution mechanics (governance cadence, risk mitigation, phased rollout, enablement), each tied to measurement.\n")
	sb.WriteString("- Why " + p.Name + ": 3-5 bullets reusing differentiators, each stating the client value.\n")
	sb.WriteString("- Closing Call-to-Action: 2-3 formal sentences inviting a next-step meeting, including the provider's contact email and phone if present.\n\n")
	sb.WriteString("Inputs:\n")
	sb.WriteString("- PROVIDER_PROFILE:\n" + providerLine(p) + "\n")
	sb.WriteString("- VALUE_SELLING_POINTS:\n" + valueProps + "\n")
	sb.WriteString("- Website of provider:\n" + p.Website + "\n")
	sb.WriteString("- CLIENT_CONTEXT:\n" + cc.String() + "\n")
	return sb.String()
}

func refinePrompt(p profile.Profile, draft, instructions string) string {
	var sb strings.Builder
	sb.WriteString("Refine the Executive Summary below using these instructions exactly:\n")
	sb.WriteString(instructions + "\n\n")
	sb.WriteString("Executive Summary:\n" + draft + "\n\n")
	sb.WriteString("Rules:\n")
	sb.WriteString("- Keep section order intact (Introduction through Closing Call-to-Action).\n")
	sb.WriteString("- Reuse value selling point phrases in Solution Overview, How We Will Deliver, and Why " + p.Name + ".\n")
	sb.WriteString("- Use \"-\" for bullets where bullets already exist.\n")
	sb.WriteString("- Do NOT add Markdown or placeholders.\n")
	sb.WriteString("- Preserve the existing Closing Call-to-Action format and contact details.\n")
	return sb.String()
}

// ClosingCTA builds the canonical closing paragraph spliced over whatever
// closing text the model produced.
func ClosingCTA(providerName, clientName string) string {
	prov := strings.TrimSpace(providerName)
	if prov == "" {
		prov = "Provider"
	}
	client := strings.TrimSpace(clientName)
	if client == "" {
		client = "the client"
	}
	return fmt.Sprintf("%s recommends moving forward with a phased engagement to realize measurable operational efficiencies within the first year. "+
		"We are prepared to initiate governance reviews, align executive stakeholders, and formalize next steps to ensure %s achieves "+
		"sustainable improvements in satisfaction, cost efficiency, and compliance readiness.", prov, client)
}
