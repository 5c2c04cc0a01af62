package responder

import "strings"

// Topic is a tag extracted from a general message.
type Topic string

const (
	TopicJavaScript   Topic = "javascript"
	TopicPython       Topic = "python"
	TopicFrontend     Topic = "frontend"
	TopicDatabase     Topic = "database"
	TopicAPI          Topic = "api"
	TopicHelp         Topic = "help"
	TopicDebugging    Topic = "debugging"
	TopicExplanation  Topic = "explanation"
	TopicQuestion     Topic = "question"
	TopicCreation     Topic = "creation"
	TopicOptimization Topic = "optimization"
	TopicTesting      Topic = "testing"
)

// topicKeywords holds one independent keyword set per tag. Tags are
// not exclusive; a message may carry several.
var topicKeywords = map[Topic][]string{
	TopicJavaScript:   {"javascript", "js", "node"},
	TopicPython:       {"python", "django", "flask"},
	TopicFrontend:     {"frontend", "css", "html", "react", "vue"},
	TopicDatabase:     {"database", "sql", "query", "firestore"},
	TopicAPI:          {"api", "endpoint", "rest", "http"},
	TopicHelp:         {"help", "assist", "support"},
	TopicDebugging:    {"bug", "error", "crash", "broken", "fix"},
	TopicExplanation:  {"explain", "understand", "clarify", "meaning"},
	TopicQuestion:     {"?", "what", "how", "why"},
	TopicCreation:     {"create", "build", "make", "generate"},
	TopicOptimization: {"optimize", "faster", "performance", "improve"},
	TopicTesting:      {"test", "testing", "unit test", "coverage"},
}

// topicPriority fixes which tag answers when several fire. Tags not
// listed here (frontend, help, question) extract but have no template
// of their own and fall through to the generic pool.
var topicPriority = []Topic{
	TopicDebugging,
	TopicExplanation,
	TopicCreation,
	TopicOptimization,
	TopicJavaScript,
	TopicPython,
	TopicDatabase,
	TopicAPI,
	TopicTesting,
}

var topicResponses = map[Topic]string{
	TopicDebugging:    "🐛 Debugging time! Start by reproducing the issue, then read the error message carefully. It usually names the file and line. Paste it here and I'll help narrow it down.",
	TopicExplanation:  "Let me explain. Break the concept into inputs, transformation, and outputs. Most confusion lives in the middle part. Which step is unclear?",
	TopicCreation:     "🔨 Building something new? Sketch the data model first, then the operations on it. What are you trying to create?",
	TopicOptimization: "⚡ For performance, measure before you optimize. Profile the hot path, then attack the biggest cost first. What feels slow?",
	TopicJavaScript:   "JavaScript question spotted. Modern JS favors const/let, async/await, and modules. What part of the language are you working with?",
	TopicPython:       "Python question spotted. Idiomatic Python is readable first: comprehensions, context managers, and clear names. What are you writing?",
	TopicDatabase:     "🗄️ Database work: model your queries before your tables. Are you reading more than writing, or the other way around?",
	TopicAPI:          "🌐 API design tip: be boring. Predictable routes, plain JSON, explicit errors. Which endpoint are you building?",
	TopicTesting:      "✅ Tests pay for themselves. Start with the behavior you'd be most embarrassed to break. What needs covering?",
}

// ExtractTopics returns the set of tags present in the message.
// Each tag is an independent substring-membership test.
func ExtractTopics(message string) map[Topic]bool {
	msg := strings.ToLower(message)
	tags := make(map[Topic]bool)

	for topic, keywords := range topicKeywords {
		for _, kw := range keywords {
			if strings.Contains(msg, kw) {
				tags[topic] = true
				break
			}
		}
	}

	return tags
}
