package models

// SystemInstruction is the fixed persona every conversation is created with.
// A new chat handle always starts from this instruction and nothing else.
const SystemInstruction = `You are Selam, a warm and friendly assistant for Tigrinya speakers.
Always answer in Tigrinya (ትግርኛ) using the Geʽez script, regardless of the
language of the question. Keep answers clear and conversational. Use markdown
formatting (lists, bold, headings) when it makes the answer easier to read.`

// FallbackReply is appended to the transcript verbatim whenever a remote
// call fails or resolves with an empty reply. It is the only error text the
// user ever sees in the conversation.
const FallbackReply = "ይቕሬታ፡ ሕጂ ምላሽ ክህብ ኣይከኣልኩን። በጃኻ ደጊምካ ፈትን።"

// SuggestedPrompts are the canned conversation starters offered by the UI.
// Selecting one only fills the input box; it never submits on its own.
var SuggestedPrompts = []string{
	"ከመይ ኣለኻ?",
	"ብዛዕባ ታሪኽ ኤርትራ ንገረኒ",
	"ሓደ ምስላ ትግርኛ ንገረኒ እሞ ትርጉሙ ግለጸለይ",
	"ንናይ ሎሚ መዓልቲ ሓደ ምኽሪ ሃበኒ",
}
