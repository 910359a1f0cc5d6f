// Package filter decides which parsed feed items are worth keeping: it tags
// them against a fixed taxonomy and computes the relevance score used as the
// admission gate.
package filter

import "strings"

// taxonomy maps trigger substrings to a label. Evaluated in declaration
// order; a label is emitted at most once.
var taxonomy = []struct {
	triggers []string
	label    string
}{
	{[]string{"solidity", "smart contract"}, "Solidity"},
	{[]string{"react"}, "React"},
	{[]string{"next"}, "Next.js"},
	{[]string{"frontend", "front-end"}, "Frontend"},
	{[]string{"website", "landing page"}, "Website Build"},
	{[]string{"blockchain", "web3", "crypto"}, "Web3"},
	{[]string{"contract", "freelance"}, "Contract"},
}

// DetectTags returns the taxonomy labels whose triggers occur in text,
// case-insensitively, in taxonomy order and without duplicates.
func DetectTags(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	var tags []string
	for _, entry := range taxonomy {
		for _, trigger := range entry.triggers {
			if strings.Contains(lower, trigger) {
				tags = append(tags, entry.label)
				break
			}
		}
	}
	return tags
}

// JoinTags renders a tag list the way it is stored and displayed.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
