package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upgoma/upg-portal/internal/app/models"
	"github.com/upgoma/upg-portal/internal/pkg/apperrors"
)

type fakeCompleter struct {
	err   error
	empty bool
}

func (f *fakeCompleter) Complete(ctx context.Context, history []models.ChatMessage, message string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.empty {
		return "", nil
	}
	return fmt.Sprintf("réponse à %q", message), nil
}

func TestChatSessions(t *testing.T) {
	t.Run("new session opens with the greeting", func(t *testing.T) {
		svc := NewChatService(&fakeCompleter{}, zerolog.Nop())
		id, transcript := svc.CreateSession()
		assert.NotEmpty(t, id)
		require.Len(t, transcript, 1)
		assert.Equal(t, models.ChatRoleAssistant, transcript[0].Role)
		assert.Equal(t, Greeting, transcript[0].Text)
	})

	t.Run("unknown session is reported", func(t *testing.T) {
		svc := NewChatService(&fakeCompleter{}, zerolog.Nop())
		_, err := svc.Transcript("missing")
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

		_, err = svc.Send(context.Background(), "missing", "bonjour")
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})
}

func TestChatSend(t *testing.T) {
	ctx := context.Background()

	t.Run("each send lands a user and assistant pair", func(t *testing.T) {
		svc := NewChatService(&fakeCompleter{}, zerolog.Nop())
		id, _ := svc.CreateSession()

		reply, err := svc.Send(ctx, id, "quels sont les frais ?")
		require.NoError(t, err)
		assert.Equal(t, models.ChatRoleAssistant, reply.Role)
		assert.Equal(t, `réponse à "quels sont les frais ?"`, reply.Text)

		transcript, err := svc.Transcript(id)
		require.NoError(t, err)
		require.Len(t, transcript, 3)
		assert.Equal(t, models.ChatRoleUser, transcript[1].Role)
		assert.Equal(t, "quels sont les frais ?", transcript[1].Text)
	})

	t.Run("generation failure yields the apology", func(t *testing.T) {
		svc := NewChatService(&fakeCompleter{err: errors.New("quota")}, zerolog.Nop())
		id, _ := svc.CreateSession()

		reply, err := svc.Send(ctx, id, "bonjour")
		require.NoError(t, err)
		assert.Equal(t, ApologyMessage, reply.Text)
	})

	t.Run("empty reply yields the apology", func(t *testing.T) {
		svc := NewChatService(&fakeCompleter{empty: true}, zerolog.Nop())
		id, _ := svc.CreateSession()

		reply, err := svc.Send(ctx, id, "bonjour")
		require.NoError(t, err)
		assert.Equal(t, ApologyMessage, reply.Text)
	})

	t.Run("missing completer yields the apology", func(t *testing.T) {
		svc := NewChatService(nil, zerolog.Nop())
		id, _ := svc.CreateSession()

		reply, err := svc.Send(ctx, id, "bonjour")
		require.NoError(t, err)
		assert.Equal(t, ApologyMessage, reply.Text)
	})

	t.Run("overlapping sends both land in the transcript", func(t *testing.T) {
		svc := NewChatService(&fakeCompleter{}, zerolog.Nop())
		id, _ := svc.CreateSession()

		var wg sync.WaitGroup
		for i := 0; i < 2; i++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				_, err := svc.Send(ctx, id, fmt.Sprintf("message %d", n))
				assert.NoError(t, err)
			}(i)
		}
		wg.Wait()

		transcript, err := svc.Transcript(id)
		require.NoError(t, err)
		// Greeting plus two user/assistant pairs.
		assert.Len(t, transcript, 5)
	})
}
