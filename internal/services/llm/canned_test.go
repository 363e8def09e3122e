// File: internal/services/llm/canned_test.go
package llm

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huaxia-history/go-huaxia/internal/domain"
)

func TestCannedResponder_EchoesLastUserMessage(t *testing.T) {
	var got strings.Builder
	r := &CannedResponder{}
	err := r.StreamReply(context.Background(), []domain.ChatMessage{
		{Role: domain.RoleAssistant, Content: domain.Greeting},
		{Role: domain.RoleUser, Content: "唐朝有哪些皇帝？"},
	}, func(delta string) error {
		got.WriteString(delta)
		return nil
	})
	require.NoError(t, err)
	assert.Contains(t, got.String(), "唐朝有哪些皇帝？")
	assert.True(t, strings.HasPrefix(got.String(), "## "))
}

func TestCannedResponder_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := &CannedResponder{}
	err := r.StreamReply(ctx, []domain.ChatMessage{{Role: domain.RoleUser, Content: "q"}}, func(string) error {
		t.Fatal("should not deliver deltas after cancellation")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}
