// Package mock provides test double implementations of the ai interfaces.
//
// The MockEmbedder allows tests to run without an external embedding service
// and enables controlled, deterministic behavior.
//
// # Usage in Tests
//
//	mockEmbedder := mock.NewMockEmbedder()
//	mockEmbedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
//	    return fixedVectors, nil
//	}
//
//	// Check call counts
//	count := mockEmbedder.CallCount()
//
// # Default Behavior
//
// With no injected functions, MockEmbedder returns deterministic vectors
// derived from a hash of the input text.
package mock
