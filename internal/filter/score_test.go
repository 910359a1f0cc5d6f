package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		excerpt  string
		tags     string
		keywords []string
		expected float64
	}{
		{
			name:     "Senior web3 frontend contract gig",
			title:    "Senior Frontend Engineer (Web3)",
			excerpt:  "Join our DeFi startup, build React/Next.js dApp, contract role, bounty-based $5k",
			tags:     "React, Next.js, Frontend, Web3, Contract",
			keywords: []string{"hiring"},
			expected: 5.5,
		},
		{
			name:     "Keyword hits count once each",
			title:    "react react react developer",
			excerpt:  "",
			tags:     "",
			keywords: []string{"react", "developer"},
			expected: 2,
		},
		{
			name:     "Website bonus",
			title:    "Need a website built",
			excerpt:  "",
			tags:     "",
			keywords: nil,
			expected: 2,
		},
		{
			name:     "Web3 without frontend gets no combo bonus",
			title:    "Solidity auditor",
			excerpt:  "ethereum evm experience",
			tags:     "",
			keywords: nil,
			expected: 0,
		},
		{
			name:     "Irrelevant posting scores zero",
			title:    "Plumber needed",
			excerpt:  "fix the sink",
			tags:     "",
			keywords: []string{"react"},
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Score(tt.title, tt.excerpt, tt.tags, tt.keywords))
		})
	}
}

func TestScorePurity(t *testing.T) {
	keywords := []string{"react", "web3"}
	first := Score("React dev", "web3 landing page", "React, Web3", keywords)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Score("React dev", "web3 landing page", "React, Web3", keywords))
	}
}
