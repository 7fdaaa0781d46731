package llm

import "strings"

// CleanJSONBlock strips a surrounding markdown code fence from a provider
// response. Models wrap JSON in ``` fences even when instructed not to, with
// or without a language tag on the opening fence.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	body := strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		// Drop a language tag such as "json" from the opening fence line.
		// A line containing spaces or a brace is payload, not a tag.
		tag := strings.TrimSpace(body[:nl])
		if len(tag) < 20 && !strings.ContainsAny(tag, " {") {
			body = body[nl+1:]
		}
	} else {
		// Single-line response: ```json{...}```
		body = strings.TrimPrefix(body, "json")
	}

	if end := strings.LastIndex(body, "```"); end >= 0 {
		body = body[:end]
	}
	return strings.TrimSpace(body)
}
