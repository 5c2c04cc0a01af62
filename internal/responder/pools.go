package responder

// Canned answers for the priority categories.
const (
	identityResponse = "I am Chronex AI v2.0 (Enhanced). I run on a hybrid architecture: " +
		"primarily a remote neural backend with a local keyword failover layer for speed."

	complaintResponse = "Sorry about that! My local layer is keyword-based and sometimes misses. " +
		"Try rephrasing, or make sure the remote backend is running for smarter answers."

	capabilityResponse = "Yes! I can analyze code structures and attempt math. Paste a snippet or " +
		"an equation and I'll take a look. For heavy lifting, the remote backend does the real work."
)

// Fixed response pools. Selection is uniform random; exact
// non-repetition is not guaranteed beyond the bounded resample.
var greetingPool = []string{
	"🤖 Hey there! I'm Chronex AI. How can I assist you today?",
	"Hello! Welcome to Chronex AI. What would you like to explore?",
	"Greetings! Ready to solve problems? 💡",
	"Hi! I'm Chronex AI. Ask me anything! 🚀",
}

var questionPool = []string{
	"❓ Good question! I can break down concepts, give examples, and explain step by step. What detail matters most to you?",
	"Let me think about that. Could you narrow it down? A technical explanation, a practical example, or references?",
	"❓ I can help you understand this. Tell me what you already know and I'll fill in the gaps.",
}

var mathPool = []string{
	"🔢 I can attempt math: algebra, equations, statistics. Show me the full problem and I'll walk through it.",
	"🔢 Let's work it out step by step: identify the problem type, apply the formula, verify the result. What's the equation?",
	"For complex calculus, make sure the remote backend is running. Locally I handle the basics. Paste the expression!",
}

var generalPool = []string{
	"💬 I'm listening. I can help with code analysis, debugging, and math. What would you like to work on?",
	"I am listening. To unlock my full potential, make sure the remote backend is running. Currently in local-only mode.",
	"💬 Tell me more! I'm best with concrete questions about code, math, or this app.",
	"Interesting. Give me a bit more context and I'll do my best to help.",
}

// Knowledge-base topical pools.
var javascriptPool = []string{
	"JavaScript is a versatile language. For frontend, focus on DOM manipulation and React/Vue. For backend, Node.js is powerful.",
	"In JavaScript, `==` performs type coercion while `===` matches type and value. Always use `===` for safety.",
	"Async/await usually leads to cleaner code than raw Promises or callbacks. Wrap your async calls in try/catch blocks.",
}

var pythonPool = []string{
	"Python is excellent for AI and data science thanks to libraries like PyTorch, TensorFlow, and Pandas.",
	"List comprehensions `[x for x in xs]` are often faster and more readable than standard for-loops.",
	"Remember that Python uses indentation for scope, unlike curly braces in C-family languages.",
}

var lifePool = []string{
	"The meaning of life is what you make of it. Maybe it's to build great code like this!",
	"Philosophy suggests we create our own purpose. What is your purpose in this project?",
}

var nexchatPool = []string{
	"NEXCHAT is a PWA built for real-time chat, encryption, and me, Chronex AI.",
	"This application runs mainly close to the client for speed, with a store for conversation persistence.",
}
