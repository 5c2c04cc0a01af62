package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityBeatsQuestionMark(t *testing.T) {
	c := New(nil)

	// Identity phrases must win even when the message also carries a
	// "?" or a generic question word.
	for _, msg := range []string{
		"who are you?",
		"What are you exactly?",
		"how are you today",
		"are you a bot or what?",
	} {
		assert.Equal(t, CategoryIdentity, c.Classify(msg), "message: %q", msg)
	}
}

func TestQuestionNotMath(t *testing.T) {
	c := New(nil)
	assert.Equal(t, CategoryQuestion, c.Classify("why does this happen"))
}

func TestMathBeatsQuestion(t *testing.T) {
	c := New(nil)

	// No "?" needed; math tokens are checked ahead of interrogatives.
	assert.Equal(t, CategoryMath, c.Classify("calculate 2+2"))
	assert.Equal(t, CategoryMath, c.Classify("solve x = 5"))
}

func TestCodeBeatsMath(t *testing.T) {
	c := New(nil)

	// Satisfies both code and math triggers; the earlier rule wins.
	assert.Equal(t, CategoryCode, c.Classify("write code to solve this"))
}

func TestGreeting(t *testing.T) {
	c := New(nil)
	assert.Equal(t, CategoryGreeting, c.Classify("hello there"))
	assert.Equal(t, CategoryGreeting, c.Classify("xup"))
}

func TestGeneralFallback(t *testing.T) {
	c := New(nil)
	assert.Equal(t, CategoryGeneral, c.Classify("bananas are yellow"))
}

func TestComplaintAndCapability(t *testing.T) {
	c := New(nil)
	assert.Equal(t, CategoryComplaint, c.Classify("that was a wrong answer"))
	assert.Equal(t, CategoryCapability, c.Classify("can you code in rust"))
}

func TestKnowledgeBaseBuckets(t *testing.T) {
	c := New(&Config{KnowledgeBase: true})

	assert.Equal(t, CategoryJavaScript, c.Classify("tell me about react"))
	assert.Equal(t, CategoryPython, c.Classify("django models confuse me"))
	assert.Equal(t, CategoryLife, c.Classify("the meaning of life"))
	assert.Equal(t, CategoryNexchat, c.Classify("tell me about nexchat"))
}

func TestKnowledgeBaseDisabledByDefault(t *testing.T) {
	c := New(nil)

	// Without the knowledge base the same message falls through to
	// the generic rules.
	assert.Equal(t, CategoryGeneral, c.Classify("tell me about react"))

	// Language names are code tokens in the generic rules, so they
	// still classify as code rather than general.
	assert.Equal(t, CategoryCode, c.Classify("tell me about javascript"))
	assert.Equal(t, CategoryCode, c.Classify("is python any good"))
}

func TestPriorityPhrasesBeatKnowledgeBase(t *testing.T) {
	c := New(&Config{KnowledgeBase: true})
	assert.Equal(t, CategoryIdentity, c.Classify("who are you, a python script?"))
}

func TestLowercasingIsInternal(t *testing.T) {
	c := New(nil)
	assert.Equal(t, c.Classify("CALCULATE 2+2"), c.Classify("calculate 2+2"))
}
