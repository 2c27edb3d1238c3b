package llm

// Response from an LLM.
type Response struct {
	ID         string  `json:"id"`
	Model      string  `json:"model"`
	StopReason string  `json:"stop_reason"`
	Role       Role    `json:"role"`
	Message    Message `json:"message"`
	Usage      Usage   `json:"usage"`
}

// Text returns the complete text of the response message.
func (r *Response) Text() string {
	return r.Message.CompleteText()
}
