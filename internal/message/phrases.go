// Solace - Situation-Aware Wellness Activity Recommendations
// Copyright 2026 Solace Labs
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/solace-labs/solace

package message

import "github.com/solace-labs/solace/internal/knowledge"

// genericSubtype keys the category-level fallback phrase inside each
// confrontation table.
const genericSubtype = "general"

// genericConfrontation is used when the category itself has no table.
const genericConfrontation = "facing this moment"

// genericCalming is used for categories without a calming pool.
const genericCalming = "What you are feeling is valid."

// confrontations names the hardship without minimizing it, keyed by
// situation category and subtype.
var confrontations = map[knowledge.Category]map[string]string{
	knowledge.CategoryBereavement: {
		"parents":      "facing the loss of your parents",
		"partner":      "living through the loss of your life partner",
		"child":        "carrying the hardest loss there is",
		"sibling":      "processing the passing of your sibling",
		genericSubtype: "facing the departure of someone you loved",
	},
	knowledge.CategoryBreakup: {
		"recent":       "working through the end of an important relationship",
		"long-term":    "closing a meaningful chapter of your life",
		genericSubtype: "healing after a breakup",
	},
	knowledge.CategoryAnxiety: {
		"work":         "managing the pressure work puts on you",
		"social":       "navigating the weight of social interactions",
		genericSubtype: "coping with thoughts that give you no rest",
	},
	knowledge.CategoryLoneliness: {
		"relocation":   "building connections in a new place",
		"isolation":    "breaking the cycle of isolation",
		genericSubtype: "finding your place among others",
	},
	knowledge.CategoryWorkStress: {
		"burnout":      "recovering from professional exhaustion",
		"pressure":     "carrying the weight of too many responsibilities",
		genericSubtype: "finding balance between work and life",
	},
	knowledge.CategoryGrief: {
		"recent":       "getting through the first days of grief",
		"prolonged":    "moving forward while honoring the memory",
		genericSubtype: "processing a profound loss",
	},
}

// calmingPools holds three validating-but-realistic sentences per
// category. One is picked uniformly at random per message; the variety
// is intentional, not a determinism bug.
var calmingPools = map[knowledge.Category][]string{
	knowledge.CategoryBereavement: {
		"This pain is part of having loved deeply.",
		"There is no right timeline for healing, only yours.",
		"Every day you face is an act of courage.",
	},
	knowledge.CategoryBreakup: {
		"What you feel right now is not permanent.",
		"The emptiness of today will make room for something new.",
		"You deserve time to rebuild yourself.",
	},
	knowledge.CategoryAnxiety: {
		"Calm is a skill that can be trained.",
		"Your mind is working overtime trying to protect you.",
		"Small moments of peace add up.",
	},
	knowledge.CategoryLoneliness: {
		"Reaching out for connection is a sign of strength.",
		"The best friendships start with a single step.",
		"Your presence has value even when you cannot feel it.",
	},
	knowledge.CategoryWorkStress: {
		"Your worth is not measured in hours worked.",
		"Resting is part of doing the job well.",
		"Nobody runs well on an empty tank.",
	},
	knowledge.CategoryGrief: {
		"Grief is not something to get over, but to carry with you.",
		"Honoring what you lost is also a way of living.",
		"You do not have to be fine, you only have to keep going.",
	},
}

// traitBenefits maps an activity trait to its benefit sentence. Traits
// without an entry (notably the "general" fallback trait) contribute no
// benefit clause.
var traitBenefits = map[string]string{
	"nature":              "nature has a proven restorative effect",
	"water":               "water helps release built-up tension",
	"mindfulness":         "calming the mind is the first step toward inner peace",
	"exercise":            "physical movement releases tension and lifts your mood",
	"social":              "connecting with others reminds us we are not alone",
	"low-stimulation":     "sometimes the best step is simply to pause",
	"artistic-expression": "art expresses what words cannot reach",
	"tourism":             "a change of scenery helps regain perspective",
}
