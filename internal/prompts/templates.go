// File: internal/prompts/templates.go
package prompts

import "fmt"

const generateScaffold = `Generate code based on the following request. Provide complete, working code with proper syntax and structure.

Request: %s

Please include:
- Complete code implementation
- Appropriate comments and documentation
- Error handling where applicable
- Best practices for the specified language/framework

If no specific language is mentioned, assume Python unless the context suggests otherwise.`

const explainScaffold = `Explain the following code or programming concept in a clear, detailed manner. Break down complex parts and provide context.

Request: %s

Please include:
- Step-by-step explanation of what the code does
- Key concepts and principles being used
- Any important patterns or best practices demonstrated
- Potential improvements or considerations
- Examples if helpful for clarification

Focus on being educational and thorough in your explanation.`

const askScaffold = `Answer the following coding-related question comprehensively and accurately.

Question: %s

Please provide:
- Clear, direct answer to the question
- Relevant examples or code snippets when applicable
- Additional context or related information that might be helpful
- Best practices or recommendations where appropriate

Be thorough but concise, and focus on practical, actionable information.`

// GenerateTemplate asks for a complete implementation of the request.
func GenerateTemplate(raw string) string {
	return fmt.Sprintf(generateScaffold, raw)
}

// ExplainTemplate asks for a step-by-step explanation of code or a concept.
func ExplainTemplate(raw string) string {
	return fmt.Sprintf(explainScaffold, raw)
}

// AskTemplate asks for a direct answer to a coding question.
func AskTemplate(raw string) string {
	return fmt.Sprintf(askScaffold, raw)
}
