// Package classifier maps raw chat messages to response categories.
//
// Classification flow:
// 1. Identity, complaint and capability phrases (highest priority)
// 2. Knowledge-base topic buckets (optional)
// 3. Generic type detection: code, math, question, greeting
// 4. Default to general
package classifier

import "strings"

// Category is the classifier's output label for a message.
type Category string

const (
	CategoryIdentity   Category = "identity"
	CategoryComplaint  Category = "complaint"
	CategoryCapability Category = "capability"
	CategoryCode       Category = "code"
	CategoryMath       Category = "math"
	CategoryQuestion   Category = "question"
	CategoryGreeting   Category = "greeting"
	CategoryGeneral    Category = "general"

	// Knowledge-base topic buckets, recognized only when the
	// knowledge base is enabled.
	CategoryJavaScript Category = "javascript"
	CategoryPython     Category = "python"
	CategoryLife       Category = "life"
	CategoryNexchat    Category = "nexchat"
)

// Rule is one predicate group: a disjunction of substring tests.
// The rule matches when any keyword occurs in the lowercased message.
type Rule struct {
	Category Category
	Keywords []string
}

// Matches checks if the rule matches the given lowercased message.
func (r *Rule) Matches(msg string) bool {
	for _, kw := range r.Keywords {
		if strings.Contains(msg, kw) {
			return true
		}
	}
	return false
}

// Config for the classifier.
type Config struct {
	// KnowledgeBase enables topical bucket detection ahead of the
	// generic rules.
	KnowledgeBase bool
}

// Classifier classifies messages by an ordered rule scan.
// Rule order is a strict priority list: the first matching rule wins,
// there is no scoring. Reordering it changes observable behavior
// (e.g. "who are you?" must hit the identity rule before the generic
// question rule sees the "?").
type Classifier struct {
	rules []*Rule
}

// New creates a classifier with the default rule set.
func New(cfg *Config) *Classifier {
	if cfg == nil {
		cfg = &Config{}
	}

	rules := priorityRules()
	if cfg.KnowledgeBase {
		rules = append(rules, knowledgeBaseRules()...)
	}
	rules = append(rules, genericRules()...)

	return &Classifier{rules: rules}
}

// Classify determines the category of a message.
// Returns CategoryGeneral when no rule matches.
func (c *Classifier) Classify(message string) Category {
	msg := strings.ToLower(message)

	for _, rule := range c.rules {
		if rule.Matches(msg) {
			return rule.Category
		}
	}

	return CategoryGeneral
}
