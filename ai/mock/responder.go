package mock

import "context"

// MockResponder is a test double for ai.Responder.
// It allows custom behavior injection via function fields.
type MockResponder struct {
	// RespondFunc is called by Respond if set.
	// If nil, the prompt is echoed back unchanged.
	RespondFunc func(ctx context.Context, prompt string) (string, error)

	callCount int
	prompts   []string
}

// NewMockResponder creates a mock responder that echoes prompts back.
// Note: Returns concrete type to allow test assertions via GetMockResponder().
func NewMockResponder() *MockResponder {
	return &MockResponder{}
}

// Respond records the prompt and returns either the injected behavior's
// answer or the prompt itself.
func (m *MockResponder) Respond(ctx context.Context, prompt string) (string, error) {
	m.callCount++
	m.prompts = append(m.prompts, prompt)

	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, prompt)
	}

	return prompt, nil
}

// CallCount returns the number of times Respond was called.
func (m *MockResponder) CallCount() int {
	return m.callCount
}

// Prompts returns the prompts received so far, in call order.
func (m *MockResponder) Prompts() []string {
	return m.prompts
}

// Reset clears recorded calls and injected behavior.
func (m *MockResponder) Reset() {
	m.callCount = 0
	m.prompts = nil
	m.RespondFunc = nil
}
