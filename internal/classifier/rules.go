package classifier

// priorityRules are checked before everything else. Identity questions
// and meta-complaints often contain a "?" or a generic question word,
// so they must win over the generic detection below.
func priorityRules() []*Rule {
	return []*Rule{
		{
			Category: CategoryIdentity,
			Keywords: []string{
				"who are you", "what are you", "how are you", "are you a bot",
				"are you real", "are you human",
			},
		},
		{
			Category: CategoryComplaint,
			Keywords: []string{
				"wrong answer", "bad answer", "that's wrong", "thats wrong",
				"not helpful", "useless", "makes no sense", "didn't help",
				"didnt help",
			},
		},
		{
			Category: CategoryCapability,
			Keywords: []string{
				"can you code", "can you program", "can you write code",
				"can you do math", "can you solve", "can you calculate",
			},
		},
	}
}

// knowledgeBaseRules are the topical buckets. Each bucket is an
// independent keyword disjunction; buckets sit between the priority
// phrases and the generic detection.
func knowledgeBaseRules() []*Rule {
	return []*Rule{
		{
			Category: CategoryJavaScript,
			Keywords: []string{"javascript", "js", "node", "frontend", "react"},
		},
		{
			Category: CategoryPython,
			Keywords: []string{"python", "pip", "django", "flask"},
		},
		{
			Category: CategoryLife,
			Keywords: []string{"meaning of life", "existence", "purpose of life"},
		},
		{
			Category: CategoryNexchat,
			Keywords: []string{"nexchat", "this project", "this app"},
		},
	}
}

// genericRules implement the base type detection. Order matters:
// code before math before question before greeting. A message may
// satisfy several groups; the earlier one wins, full stop.
func genericRules() []*Rule {
	return []*Rule{
		{
			Category: CategoryCode,
			Keywords: []string{"code", "program", "function", "algorithm", "compile", "debug", "javascript", "python"},
		},
		{
			Category: CategoryMath,
			Keywords: []string{"solve", "calculate", "=", "math", "equation", "equals", "+", "*"},
		},
		{
			Category: CategoryQuestion,
			Keywords: []string{"?", "what", "how", "why", "explain", "when", "where"},
		},
		{
			Category: CategoryGreeting,
			Keywords: []string{"hello", "hi", "hey", "greetings", "whats up", "xup"},
		},
	}
}
