package filter

import "strings"

var (
	web3Terms = []string{
		"web3", "blockchain", "ethereum", "solidity", "crypto", "defi",
		"base", "dapp", "smart contract", "zk", "layer2", "evm",
	}
	frontendTerms = []string{
		"frontend", "front-end", "react", "next", "typescript", "tailwind",
		"ui engineer", "ui developer", "web developer", "website", "landing page",
	}
	siteTerms = []string{"website", "landing page"}
	gigTerms  = []string{"contract", "freelance", "short-term", "bounty"}
)

// Score rates a posting's relevance over the lowercased concatenation of
// title, excerpt and tags:
//
//	+1   per configured keyword found (each keyword counts once)
//	+3   web3 term AND frontend term both present
//	+2   website / landing page work
//	+2   contract / freelance / short-term / bounty engagement
//	+0.5 senior role
//
// Pure: same inputs always give the same score. Callers drop anything
// scoring zero or below before it ever reaches the store.
func Score(title, excerpt, tags string, keywords []string) float64 {
	text := strings.ToLower(title + " " + excerpt + " " + tags)

	score := 0.0

	//configured keyword hits (+1 each)
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			score += 1
		}
	}

	//web3 x frontend combination (+3)
	if containsAny(text, web3Terms) && containsAny(text, frontendTerms) {
		score += 3
	}

	//site build work (+2)
	if containsAny(text, siteTerms) {
		score += 2
	}

	//gig-style engagement (+2)
	if containsAny(text, gigTerms) {
		score += 2
	}

	//seniority (+0.5)
	if strings.Contains(text, "senior") {
		score += 0.5
	}

	return score
}

func containsAny(text string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
