// Command llm-stub is a minimal OpenAI-compatible backend for local
// development. Point LLM_BASE_URL at it and the drafting passes receive
// deterministic canned documents instead of real model output.
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"os"
	"strings"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

const stubValueProps = `Case for Change
- Legacy processes constrain growth and inflate operating cost.
- Competitors are consolidating gains from digitized operations.
Business Value for the Client
- Increase margin by 10% within the first year.
- Reduce manual rework across core workflows.
Acme Proposed Solution
- Phased operations review covering the proposed modules.
- Governance cadence with measurable checkpoints.`

const stubSummary = `Introduction
We are pleased to present this proposal for your consideration.

Our Understanding of Your Goals
You are positioned to capture significant operational upside.

Our Approach to Meeting Your Goals
A phased engagement aligned to your stated goals.
- Map each goal to a workstream with measurable outcomes.

Solution Overview
- Phased operations review covering the proposed modules.
- Increase margin by 10% within the first year.

How We Will Deliver
- Governance cadence with measurable checkpoints.
- Phased rollout with risk mitigation at each gate.

Why Acme
- Deep bench of senior practitioners.

Closing Call-to-Action
We would welcome the opportunity to discuss next steps.`

func main() {
	model := os.Getenv("MODEL_ID")
	if strings.TrimSpace(model) == "" {
		model = "stub-model"
	}
	addr := os.Getenv("ADDR")
	if strings.TrimSpace(addr) == "" {
		addr = ":8081"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/models", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"id": model, "object": "model"}},
		})
	})
	mux.HandleFunc("/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var req chatRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		sys := ""
		if len(req.Messages) > 0 {
			sys = strings.TrimSpace(req.Messages[0].Content)
		}
		var content string
		switch {
		case strings.Contains(sys, "proposal writer"):
			content = stubValueProps
		case strings.Contains(sys, "executive summaries"):
			content = stubSummary
		case strings.Contains(sys, "refining"):
			// Echo the draft back so refinement is a visible no-op.
			user := ""
			if len(req.Messages) >= 2 {
				user = req.Messages[1].Content
			}
			if i := strings.Index(user, "Executive Summary:\n"); i >= 0 {
				rest := user[i+len("Executive Summary:\n"):]
				if j := strings.Index(rest, "\n\nRules:"); j >= 0 {
					rest = rest[:j]
				}
				content = rest
			}
			if strings.TrimSpace(content) == "" {
				content = stubSummary
			}
		default:
			http.Error(w, "unexpected system prompt", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": content}},
			},
		})
	})

	log.Printf("llm-stub listening on %s (model=%s)", addr, model)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
